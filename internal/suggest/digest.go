package suggest

import "github.com/dmitrijs2005/founderstack/internal/models"

// PortfolioDigest is the minified portfolio sent with a question. Secrets
// are left out.
type PortfolioDigest struct {
	Companies     []CompanyDigest      `json:"companies"`
	Accounts      []AccountDigest      `json:"accounts"`
	Subscriptions []SubscriptionDigest `json:"subscriptions"`
}

type CompanyDigest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Structure string `json:"structure"`
}

type AccountDigest struct {
	Company  string  `json:"company"`
	Platform string  `json:"platform"`
	Email    string  `json:"email"`
	Cost     float64 `json:"cost,omitempty"`
	Interval string  `json:"interval,omitempty"`
}

type SubscriptionDigest struct {
	Company string  `json:"company"`
	Name    string  `json:"name"`
	Cost    float64 `json:"cost"`
	Cycle   string  `json:"cycle"`
	Status  string  `json:"status"`
}

// Digest builds the question context from snap, naming owners by company
// name.
func Digest(snap models.Snapshot) PortfolioDigest {
	names := make(map[string]string, len(snap.Companies))
	d := PortfolioDigest{
		Companies:     make([]CompanyDigest, 0, len(snap.Companies)),
		Accounts:      make([]AccountDigest, 0, len(snap.Accounts)),
		Subscriptions: make([]SubscriptionDigest, 0, len(snap.Subscriptions)),
	}
	for _, c := range snap.Companies {
		names[c.ID] = c.Name
		d.Companies = append(d.Companies, CompanyDigest{ID: c.ID, Name: c.Name, Structure: c.Structure})
	}
	for _, a := range snap.Accounts {
		d.Accounts = append(d.Accounts, AccountDigest{
			Company:  names[a.CompanyID],
			Platform: a.Platform,
			Email:    a.Email,
			Cost:     a.SubscriptionCost,
			Interval: a.SubscriptionInterval,
		})
	}
	for _, s := range snap.Subscriptions {
		d.Subscriptions = append(d.Subscriptions, SubscriptionDigest{
			Company: names[s.CompanyID],
			Name:    s.Name,
			Cost:    s.Cost,
			Cycle:   s.BillingCycle,
			Status:  s.Status,
		})
	}
	return d
}
