package views

import "github.com/dmitrijs2005/founderstack/internal/models"

// Counts summarizes one company for the dashboard card.
type Counts struct {
	Accounts      int
	Subscriptions int
	Cards         int
	Loans         int
	Institutions  int
	Documents     int

	// FinancialItems weighs each bank twice.
	FinancialItems int
}

func CompanyCounts(snap models.Snapshot, companyID string) Counts {
	c := Counts{
		Accounts:      len(models.OwnedBy(snap.Accounts, companyID)),
		Subscriptions: len(models.OwnedBy(snap.Subscriptions, companyID)),
		Cards:         len(models.OwnedBy(snap.FinancialCards, companyID)),
		Loans:         len(models.OwnedBy(snap.Loans, companyID)),
		Institutions:  len(models.OwnedBy(snap.Institutions, companyID)),
		Documents:     len(models.OwnedBy(snap.Documents, companyID)),
	}
	c.FinancialItems = c.Cards + c.Loans + 2*c.Institutions
	return c
}

// Detail is everything the company detail view lists.
type Detail struct {
	Company       models.Company
	Accounts      []models.Account
	Subscriptions []models.Subscription
	Cards         []models.FinancialCard
	Loans         []models.Loan
	Institutions  []models.Institution
	Documents     []models.Document
}

// CompanyView returns the company's records. Accounts and subscriptions are
// narrowed by query; the other lists are not.
func CompanyView(snap models.Snapshot, companyID, query string) (Detail, bool) {
	company, ok := snap.Company(companyID)
	if !ok {
		return Detail{}, false
	}
	return Detail{
		Company:       company,
		Accounts:      FilterAccounts(models.OwnedBy(snap.Accounts, companyID), query),
		Subscriptions: FilterSubscriptions(models.OwnedBy(snap.Subscriptions, companyID), query),
		Cards:         models.OwnedBy(snap.FinancialCards, companyID),
		Loans:         models.OwnedBy(snap.Loans, companyID),
		Institutions:  models.OwnedBy(snap.Institutions, companyID),
		Documents:     models.OwnedBy(snap.Documents, companyID),
	}, true
}
