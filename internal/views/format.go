package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// TimeAgo renders a millisecond timestamp relative to now. Timestamps ahead
// of now read as "Just now".
func TimeAgo(ts int64, now time.Time) string {
	if ts == 0 {
		return "Never"
	}
	diff := max(now.Sub(time.UnixMilli(ts)), 0)
	days := int(diff / (24 * time.Hour))
	if days == 0 {
		hours := int(diff / time.Hour)
		if hours == 0 {
			return "Just now"
		}
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", days)
}

func currency(code string) (string, *money.Currency) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if cur := money.GetCurrency(code); cur != nil {
		return code, cur
	}
	return money.USD, money.GetCurrency(money.USD)
}

// Money formats amount in currency, rounded to the currency's minor unit.
// Unknown currency codes fall back to USD.
func Money(amount decimal.Decimal, code string) string {
	code, cur := currency(code)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}

// MoneyFloat is Money for a plain float amount.
func MoneyFloat(amount float64, code string) string {
	return Money(decimal.NewFromFloat(amount), code)
}

// WholeMoney formats amount rounded to whole units, without a fraction.
func WholeMoney(amount decimal.Decimal, code string) string {
	_, cur := currency(code)
	f := cur.Formatter()
	f.Fraction = 0
	return f.Format(amount.Round(0).IntPart())
}
