package views

import (
	"strings"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

// Owner identifies the company a search hit belongs to. Both fields are
// empty when the company no longer exists.
type Owner struct {
	CompanyName  string `json:"companyName,omitempty"`
	CompanyColor string `json:"companyColor,omitempty"`
}

type AccountHit struct {
	models.Account
	Owner
}

type SubscriptionHit struct {
	models.Subscription
	Owner
}

// SearchResults holds cross-company matches.
type SearchResults struct {
	Companies     []models.Company  `json:"companies"`
	Accounts      []AccountHit      `json:"accounts"`
	Subscriptions []SubscriptionHit `json:"subscriptions"`
}

func (r SearchResults) HasResults() bool {
	return len(r.Companies) > 0 || len(r.Accounts) > 0 || len(r.Subscriptions) > 0
}

// GlobalSearch matches companies by name, accounts by platform, email or 2FA
// method, and subscriptions by name. An empty query matches nothing.
func GlobalSearch(snap models.Snapshot, query string) SearchResults {
	res := SearchResults{
		Companies:     []models.Company{},
		Accounts:      []AccountHit{},
		Subscriptions: []SubscriptionHit{},
	}
	if query == "" {
		return res
	}
	q := strings.ToLower(query)

	owners := make(map[string]Owner, len(snap.Companies))
	for _, c := range snap.Companies {
		owners[c.ID] = Owner{CompanyName: c.Name, CompanyColor: c.Color}
		if contains(c.Name, q) {
			res.Companies = append(res.Companies, c)
		}
	}

	for _, a := range snap.Accounts {
		if contains(a.Platform, q) || contains(a.Email, q) || contains(a.TwoFactorAuth, q) {
			res.Accounts = append(res.Accounts, AccountHit{Account: a, Owner: owners[a.CompanyID]})
		}
	}

	for _, s := range snap.Subscriptions {
		if contains(s.Name, q) {
			res.Subscriptions = append(res.Subscriptions, SubscriptionHit{Subscription: s, Owner: owners[s.CompanyID]})
		}
	}
	return res
}
