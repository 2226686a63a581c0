package views

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() models.Snapshot {
	return models.Snapshot{
		Companies: []models.Company{
			{ID: "1", Name: "Cifr", Structure: "C-Corp", Description: "Encryption and analytics", Color: "#4f46e5"},
			{ID: "2", Name: "EcoStream", Structure: "LLC", Description: "Water filtration", Color: "#10b981"},
		},
		Accounts: []models.Account{
			{ID: "a1", CompanyID: "1", Platform: "AWS", Email: "a@x.com", TwoFactorAuth: "Authenticator", Notes: []string{"prod infra"}},
			{ID: "a2", CompanyID: "1", Platform: "Slack", Email: "b@x.com", TwoFactorAuth: "SMS", Notes: []string{}},
			{ID: "a3", CompanyID: "2", Platform: "Shopify", Email: "sales@eco.com", TwoFactorAuth: "None", Notes: []string{"storefront"}},
			{ID: "a4", CompanyID: "gone", Platform: "Orphan", Email: "o@x.com", TwoFactorAuth: "None"},
		},
		Subscriptions: []models.Subscription{
			{ID: "s1", CompanyID: "1", Name: "Github", Cost: 49, BillingCycle: "Monthly", PaymentMethod: "Amex 1002", Status: "Active",
				SubServices: []models.SubService{{ID: "x", Cost: 19, Status: "Active"}, {ID: "y", Cost: 5, Status: "Cancelled"}}},
			{ID: "s2", CompanyID: "1", Name: "Domain", Cost: 120, BillingCycle: "Yearly", PaymentMethod: "Visa 4242", Status: "Cancelled",
				SubServices: []models.SubService{{ID: "z", Cost: 24}}},
			{ID: "s3", CompanyID: "2", Name: "Klaviyo", Cost: 120, BillingCycle: "Monthly", PaymentMethod: "PayPal", Status: "Active"},
		},
		FinancialCards: []models.FinancialCard{{ID: "f1", CompanyID: "1"}, {ID: "f2", CompanyID: "1"}},
		Loans:          []models.Loan{{ID: "l1", CompanyID: "1"}},
		Institutions: []models.Institution{{ID: "i1", CompanyID: "1", Accounts: []models.InstitutionAccount{
			{ID: "ia1", Balance: 145000}, {ID: "ia2", Balance: 45000.5},
		}}},
		Documents: []models.Document{{ID: "d1", CompanyID: "2"}},
	}
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestSubscriptionMonthly_YearlyIncludesAddOns(t *testing.T) {
	sub := models.Subscription{Cost: 120, BillingCycle: "Yearly", SubServices: []models.SubService{{Cost: 24, Status: "Paused"}}}
	requireDecimal(t, "12", SubscriptionMonthly(sub))
}

func TestBurn(t *testing.T) {
	snap := sample()

	// 49+19+5 monthly, (120+24)/12 yearly, 120 monthly
	requireDecimal(t, "205", TotalMonthlyBurn(snap))
	requireDecimal(t, "85", CompanyBurn(snap, "1"))
	requireDecimal(t, "120", CompanyBurn(snap, "2"))
	requireDecimal(t, "0", CompanyBurn(snap, "nope"))
}

func TestBurn_DecimalExactness(t *testing.T) {
	subs := []models.Subscription{
		{Cost: 0.1, BillingCycle: "Monthly"},
		{Cost: 0.2, BillingCycle: "Monthly"},
	}
	requireDecimal(t, "0.3", MonthlyBurn(subs))
}

func TestActiveTools(t *testing.T) {
	assert.Equal(t, 3, ActiveTools(sample().Subscriptions))
}

func TestInstitutionBalance(t *testing.T) {
	requireDecimal(t, "190000.5", InstitutionBalance(sample().Institutions[0]))
}

func TestCompanyCounts(t *testing.T) {
	c := CompanyCounts(sample(), "1")
	assert.Equal(t, Counts{
		Accounts:       2,
		Subscriptions:  2,
		Cards:          2,
		Loans:          1,
		Institutions:   1,
		Documents:      0,
		FinancialItems: 5,
	}, c)
}

func TestFilterAccounts(t *testing.T) {
	accs := []models.Account{
		{Platform: "AWS", Email: "a@x.com"},
		{Platform: "Slack", Email: "b@x.com"},
	}

	got := FilterAccounts(accs, "aws")
	require.Len(t, got, 1)
	assert.Equal(t, "AWS", got[0].Platform)

	assert.Equal(t, accs, FilterAccounts(accs, ""))
	assert.Len(t, FilterAccounts(accs, "X.COM"), 2)
}

func TestFilterAccounts_MatchesNotesAndTwoFactor(t *testing.T) {
	accs := sample().Accounts
	got := FilterAccounts(accs, "STOREfront")
	require.Len(t, got, 1)
	assert.Equal(t, "a3", got[0].ID)

	got = FilterAccounts(accs, "sms")
	require.Len(t, got, 1)
	assert.Equal(t, "a2", got[0].ID)
}

func TestFilterCompanies(t *testing.T) {
	cs := sample().Companies
	assert.Len(t, FilterCompanies(cs, "llc"), 1)
	assert.Len(t, FilterCompanies(cs, "water"), 1)
	assert.Empty(t, FilterCompanies(cs, "zzz"))
	assert.Equal(t, cs, FilterCompanies(cs, ""))
}

func TestFilterSubscriptions_ByPaymentMethod(t *testing.T) {
	got := FilterSubscriptions(sample().Subscriptions, "visa")
	require.Len(t, got, 1)
	assert.Equal(t, "s2", got[0].ID)
}

func TestCompanyView(t *testing.T) {
	d, ok := CompanyView(sample(), "1", "slack")
	require.True(t, ok)
	assert.Equal(t, "Cifr", d.Company.Name)
	require.Len(t, d.Accounts, 1)
	assert.Equal(t, "a2", d.Accounts[0].ID)
	assert.Empty(t, d.Subscriptions)
	assert.Len(t, d.Cards, 2, "financial lists are not filtered")

	_, ok = CompanyView(sample(), "nope", "")
	assert.False(t, ok)
}

func TestGlobalSearch(t *testing.T) {
	res := GlobalSearch(sample(), "s")

	names := func(hits []AccountHit) []string {
		out := []string{}
		for _, h := range hits {
			out = append(out, h.Platform)
		}
		return out
	}

	assert.Len(t, res.Companies, 1, "EcoStream")
	assert.Equal(t, []string{"AWS", "Slack", "Shopify"}, names(res.Accounts))
	assert.Equal(t, "Cifr", res.Accounts[0].CompanyName)
	assert.Equal(t, "#4f46e5", res.Accounts[0].CompanyColor)
	assert.True(t, res.HasResults())
}

func TestGlobalSearch_OrphanHitHasNoOwner(t *testing.T) {
	res := GlobalSearch(sample(), "orphan")
	require.Len(t, res.Accounts, 1)
	assert.Empty(t, res.Accounts[0].CompanyName)
}

func TestGlobalSearch_EmptyQuery(t *testing.T) {
	res := GlobalSearch(sample(), "")
	assert.False(t, res.HasResults())
	assert.NotNil(t, res.Accounts)
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }

	assert.Equal(t, "Never", TimeAgo(0, now))
	assert.Equal(t, "Just now", TimeAgo(at(59*time.Minute), now))
	assert.Equal(t, "3h ago", TimeAgo(at(3*time.Hour+10*time.Minute), now))
	assert.Equal(t, "23h ago", TimeAgo(at(23*time.Hour+59*time.Minute), now))
	assert.Equal(t, "2d ago", TimeAgo(at(50*time.Hour), now))
	assert.Equal(t, "Just now", TimeAgo(at(-3*time.Hour), now))
	assert.Equal(t, "Just now", TimeAgo(at(-72*time.Hour), now))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,200.00", MoneyFloat(1200, "USD"))
	assert.Equal(t, "$15.99", MoneyFloat(15.99, "usd"))
	assert.Equal(t, "$0.30", Money(decimal.RequireFromString("0.295"), "USD"))
	assert.Equal(t, "$12.00", MoneyFloat(12, "not-a-code"))
	assert.Equal(t, "$1,205", WholeMoney(decimal.RequireFromString("1204.6"), "USD"))
}
