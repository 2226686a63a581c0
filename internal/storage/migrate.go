package storage

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

// document is a decoded blob before it is bound to models.Snapshot.
type document map[string]any

type migration struct {
	name  string
	apply func(doc document, now time.Time)
}

// migrationSteps run in order on every load. Each step must be a no-op on data
// already in the current shape.
var migrationSteps = []migration{
	{"backfill-collections", backfillCollections},
	{"company-structure", migrateCompanies},
	{"account-pricing-model", migratePricingModel},
	{"account-two-factor", migrateTwoFactor},
	{"account-notes-list", migrateNotes},
	{"account-subscription-link", linkSubscriptions},
}

var collectionKeys = []string{
	"companies", "accounts", "subscriptions", "financialCards", "loans", "institutions", "documents",
}

func migrate(doc document, now time.Time) {
	for _, m := range migrationSteps {
		m.apply(doc, now)
	}
}

// records returns the object elements of doc[key]. Non-object elements are
// skipped.
func records(doc document, key string) []map[string]any {
	list, _ := doc[key].([]any)
	out := make([]map[string]any, 0, len(list))
	for _, v := range list {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// truthy mirrors the loose "is set" test the stored data was written with.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case float64:
		return x != 0
	case bool:
		return x
	default:
		return true
	}
}

func firstString(vals ...any) string {
	for _, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func backfillCollections(doc document, _ time.Time) {
	for _, k := range collectionKeys {
		if v, ok := doc[k]; !ok || v == nil {
			doc[k] = []any{}
		}
	}
}

func migrateCompanies(doc document, now time.Time) {
	ms := float64(now.UnixMilli())
	for _, c := range records(doc, "companies") {
		c["structure"] = firstString(c["structure"], c["industry"], models.DefaultStructure)
		delete(c, "industry")
		if !truthy(c["lastModified"]) {
			c["lastModified"] = ms
		}
		if !truthy(c["lastViewed"]) {
			c["lastViewed"] = ms
		}
	}
}

func migratePricingModel(doc document, _ time.Time) {
	for _, a := range records(doc, "accounts") {
		if truthy(a["pricingModel"]) {
			continue
		}
		pm := models.DefaultPricing
		if cat, ok := a["category"].(string); ok && cat != "" {
			pm = strings.ToLower(cat)
		}
		a["pricingModel"] = pm
		delete(a, "category")
	}
}

func migrateTwoFactor(doc document, _ time.Time) {
	for _, a := range records(doc, "accounts") {
		raw, _ := a["twoFactorAuth"].(string)
		recovery, _ := a["recoveryMethod"].(string)

		method, moved := models.CanonicalTwoFactor(raw, recovery)
		a["twoFactorAuth"] = method
		if moved != recovery && !truthy(a["recoveryMethod"]) {
			a["recoveryMethod"] = moved
		}
	}
}

func migrateNotes(doc document, _ time.Time) {
	for _, a := range records(doc, "accounts") {
		switch n := a["notes"].(type) {
		case []any:
			// current shape
		case string:
			if n == "" {
				a["notes"] = []any{}
			} else {
				a["notes"] = []any{n}
			}
		default:
			a["notes"] = []any{}
		}
	}
}

// linkSubscriptions stores the subscription id on accounts that predate the
// link. Only an unambiguous namesake is linked; the rest keep name matching.
func linkSubscriptions(doc document, _ time.Time) {
	type key struct{ company, name string }

	subs := map[key][]string{}
	taken := map[string]bool{}
	for _, a := range records(doc, "accounts") {
		if id, ok := a["linkedSubscriptionId"].(string); ok && id != "" {
			taken[id] = true
		}
	}
	for _, s := range records(doc, "subscriptions") {
		id, _ := s["id"].(string)
		if id == "" || taken[id] {
			continue
		}
		k := key{firstString(s["companyId"]), firstString(s["name"])}
		subs[k] = append(subs[k], id)
	}

	claims := map[key]int{}
	for _, a := range records(doc, "accounts") {
		if !truthy(a["linkedSubscriptionId"]) {
			claims[key{firstString(a["companyId"]), firstString(a["platform"])}]++
		}
	}

	for _, a := range records(doc, "accounts") {
		if truthy(a["linkedSubscriptionId"]) {
			continue
		}
		k := key{firstString(a["companyId"]), firstString(a["platform"])}
		if ids := subs[k]; len(ids) == 1 && claims[k] == 1 {
			a["linkedSubscriptionId"] = ids[0]
		}
	}
}
