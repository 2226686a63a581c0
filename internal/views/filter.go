package views

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}

// filter keeps the items matching the lowercased query. An empty query
// returns items unchanged.
func filter[T any](items []T, query string, match func(T, string) bool) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// FilterCompanies matches name, structure and description.
func FilterCompanies(items []models.Company, query string) []models.Company {
	return filter(items, query, func(c models.Company, q string) bool {
		return contains(c.Name, q) || contains(c.Structure, q) || contains(c.Description, q)
	})
}

// FilterAccounts matches platform, email, 2FA method and any note.
func FilterAccounts(items []models.Account, query string) []models.Account {
	return filter(items, query, func(a models.Account, q string) bool {
		return contains(a.Platform, q) || contains(a.Email, q) || contains(a.TwoFactorAuth, q) ||
			slices.ContainsFunc(a.Notes, func(n string) bool { return contains(n, q) })
	})
}

// FilterSubscriptions matches name and payment method.
func FilterSubscriptions(items []models.Subscription, query string) []models.Subscription {
	return filter(items, query, func(s models.Subscription, q string) bool {
		return contains(s.Name, q) || contains(s.PaymentMethod, q)
	})
}
