package views

import (
	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// SubscriptionTotal is the per-cycle cost of sub including its add-ons.
func SubscriptionTotal(sub models.Subscription) decimal.Decimal {
	total := decimal.NewFromFloat(sub.Cost)
	for _, s := range sub.SubServices {
		total = total.Add(decimal.NewFromFloat(s.Cost))
	}
	return total
}

// SubscriptionMonthly normalizes sub to a monthly amount. Any cycle other
// than Monthly counts as yearly.
func SubscriptionMonthly(sub models.Subscription) decimal.Decimal {
	total := SubscriptionTotal(sub)
	if sub.BillingCycle == models.CycleMonthly {
		return total
	}
	return total.Div(twelve)
}

// MonthlyBurn sums the monthly amount of subs regardless of status.
func MonthlyBurn(subs []models.Subscription) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range subs {
		sum = sum.Add(SubscriptionMonthly(s))
	}
	return sum
}

// TotalMonthlyBurn is the monthly burn across every company.
func TotalMonthlyBurn(snap models.Snapshot) decimal.Decimal {
	return MonthlyBurn(snap.Subscriptions)
}

func CompanyBurn(snap models.Snapshot, companyID string) decimal.Decimal {
	return MonthlyBurn(models.OwnedBy(snap.Subscriptions, companyID))
}

// ActiveTools counts active subscriptions plus their active add-ons.
func ActiveTools(subs []models.Subscription) int {
	n := 0
	for _, s := range subs {
		if s.Status == models.SubscriptionActive {
			n++
		}
		for _, ss := range s.SubServices {
			if ss.Status == models.SubscriptionActive {
				n++
			}
		}
	}
	return n
}

// InstitutionBalance sums the balances of the bank's sub-accounts.
func InstitutionBalance(in models.Institution) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range in.Accounts {
		sum = sum.Add(decimal.NewFromFloat(a.Balance))
	}
	return sum
}
