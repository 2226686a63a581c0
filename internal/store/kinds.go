package store

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

const dateLayout = "2006-01-02"

// or returns *p unless p is nil or empty.
func or(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func set[V any](dst *V, p *V) {
	if p != nil {
		*dst = *p
	}
}

func today(now time.Time) string { return now.UTC().Format(dateLayout) }

func companies(s *Store) *Repository[models.Company, models.CompanyPatch] {
	return &Repository[models.Company, models.CompanyPatch]{
		kind:      models.KindCompany,
		st:        s,
		ownerless: true,
		list:      func(snap models.Snapshot) []models.Company { return snap.Companies },
		set:       func(snap *models.Snapshot, v []models.Company) { snap.Companies = v },
		build: func(id, _ string, p models.CompanyPatch, now time.Time) models.Company {
			ms := now.UnixMilli()
			return models.Company{
				ID:           id,
				Name:         or(p.Name, "New Company"),
				Structure:    or(p.Structure, models.DefaultStructure),
				Description:  str(p.Description),
				Color:        or(p.Color, models.BrandColors[0]),
				LogoURL:      str(p.LogoURL),
				LastModified: ms,
				LastViewed:   ms,
			}
		},
		merge: func(c models.Company, p models.CompanyPatch) models.Company {
			set(&c.Name, p.Name)
			set(&c.Structure, p.Structure)
			set(&c.Description, p.Description)
			set(&c.Color, p.Color)
			set(&c.LogoURL, p.LogoURL)
			if c.Structure == "" {
				c.Structure = models.DefaultStructure
			}
			return c
		},
		afterDelete: func(next *models.Snapshot, c models.Company) {
			next.Accounts, _ = without(next.Accounts, ownedBy[models.Account](c.ID))
			next.Subscriptions, _ = without(next.Subscriptions, ownedBy[models.Subscription](c.ID))
			next.FinancialCards, _ = without(next.FinancialCards, ownedBy[models.FinancialCard](c.ID))
			next.Loans, _ = without(next.Loans, ownedBy[models.Loan](c.ID))
			next.Institutions, _ = without(next.Institutions, ownedBy[models.Institution](c.ID))
			next.Documents, _ = without(next.Documents, ownedBy[models.Document](c.ID))
		},
	}
}

// shadowOf matches the subscription linked to a. Accounts without a stored
// link match every subscription of their company named after the platform.
func shadowOf(a models.Account) func(models.Subscription) bool {
	if a.LinkedSubscriptionID != "" {
		return func(sub models.Subscription) bool { return sub.ID == a.LinkedSubscriptionID }
	}
	return func(sub models.Subscription) bool {
		return sub.CompanyID == a.CompanyID && sub.Name == a.Platform
	}
}

// canonicalAccount applies the same normalization as loading does, so a
// stored account reads back unchanged.
func canonicalAccount(a models.Account) models.Account {
	a.TwoFactorAuth, a.RecoveryMethod = models.CanonicalTwoFactor(a.TwoFactorAuth, a.RecoveryMethod)
	if a.PricingModel == "" {
		a.PricingModel = models.DefaultPricing
	}
	if a.Notes == nil {
		a.Notes = []string{}
	}
	return a
}

func cycleOf(interval string) string {
	if interval == models.CycleYearly {
		return models.CycleYearly
	}
	return models.CycleMonthly
}

func accounts(s *Store) *Repository[models.Account, models.AccountPatch] {
	return &Repository[models.Account, models.AccountPatch]{
		kind: models.KindAccount,
		st:   s,
		list: func(snap models.Snapshot) []models.Account { return snap.Accounts },
		set:  func(snap *models.Snapshot, v []models.Account) { snap.Accounts = v },
		build: func(id, companyID string, p models.AccountPatch, _ time.Time) models.Account {
			notes := slices.Clone(p.Notes)
			if notes == nil {
				notes = []string{}
			}
			return canonicalAccount(models.Account{
				ID:                   id,
				CompanyID:            companyID,
				Platform:             or(p.Platform, "New Platform"),
				Website:              str(p.Website),
				Email:                or(p.Email, "N/A"),
				TwoFactorAuth:        or(p.TwoFactorAuth, models.TwoFactorNone),
				RecoveryMethod:       str(p.RecoveryMethod),
				Password:             str(p.Password),
				PricingModel:         or(p.PricingModel, models.DefaultPricing),
				Notes:                notes,
				SubscriptionCost:     num(p.SubscriptionCost),
				SubscriptionInterval: or(p.SubscriptionInterval, models.CycleMonthly),
				PaymentMethod:        str(p.PaymentMethod),
				NextBillingDate:      str(p.NextBillingDate),
				Renew:                or(p.Renew, models.RenewAuto),
				Status:               or(p.Status, models.AccountActive),
			})
		},
		merge: func(a models.Account, p models.AccountPatch) models.Account {
			set(&a.Platform, p.Platform)
			set(&a.Website, p.Website)
			set(&a.Email, p.Email)
			set(&a.TwoFactorAuth, p.TwoFactorAuth)
			set(&a.RecoveryMethod, p.RecoveryMethod)
			set(&a.Password, p.Password)
			set(&a.PricingModel, p.PricingModel)
			if p.Notes != nil {
				a.Notes = slices.Clone(p.Notes)
			}
			set(&a.SubscriptionCost, p.SubscriptionCost)
			set(&a.SubscriptionInterval, p.SubscriptionInterval)
			set(&a.PaymentMethod, p.PaymentMethod)
			set(&a.NextBillingDate, p.NextBillingDate)
			set(&a.Renew, p.Renew)
			set(&a.Status, p.Status)
			return canonicalAccount(a)
		},
		afterAdd: func(next *models.Snapshot, a models.Account, now time.Time) {
			status := models.SubscriptionActive
			if a.Status == models.AccountInactive {
				status = models.SubscriptionCancelled
			}
			renewal := a.NextBillingDate
			if renewal == "" {
				renewal = today(now)
			}
			subID := s.newID()
			next.Subscriptions = appended(next.Subscriptions, models.Subscription{
				ID:            subID,
				CompanyID:     a.CompanyID,
				Name:          a.Platform,
				Cost:          a.SubscriptionCost,
				Currency:      models.DefaultCurrency,
				BillingCycle:  cycleOf(a.SubscriptionInterval),
				PaymentMethod: a.PaymentMethod,
				NextRenewal:   renewal,
				Renew:         a.Renew,
				Status:        status,
			})
			// Accounts was just reallocated by Add, the new record is last.
			next.Accounts[len(next.Accounts)-1].LinkedSubscriptionID = subID
		},
		afterUpdate: func(next *models.Snapshot, before models.Account, p models.AccountPatch) {
			next.Subscriptions = mapped(next.Subscriptions, shadowOf(before),
				func(sub models.Subscription) models.Subscription {
					if p.Platform != nil && *p.Platform != "" {
						sub.Name = *p.Platform
					}
					set(&sub.Cost, p.SubscriptionCost)
					if p.SubscriptionInterval != nil {
						sub.BillingCycle = cycleOf(*p.SubscriptionInterval)
					}
					return sub
				})
		},
		afterDelete: func(next *models.Snapshot, a models.Account) {
			next.Subscriptions, _ = without(next.Subscriptions, shadowOf(a))
		},
	}
}

func subscriptions(s *Store) *Repository[models.Subscription, models.SubscriptionPatch] {
	return &Repository[models.Subscription, models.SubscriptionPatch]{
		kind: models.KindSubscription,
		st:   s,
		list: func(snap models.Snapshot) []models.Subscription { return snap.Subscriptions },
		set:  func(snap *models.Snapshot, v []models.Subscription) { snap.Subscriptions = v },
		build: func(id, companyID string, p models.SubscriptionPatch, now time.Time) models.Subscription {
			return models.Subscription{
				ID:            id,
				CompanyID:     companyID,
				Name:          or(p.Name, "New Tech Stack"),
				Cost:          num(p.Cost),
				Currency:      or(p.Currency, models.DefaultCurrency),
				BillingCycle:  or(p.BillingCycle, models.CycleMonthly),
				PaymentMethod: str(p.PaymentMethod),
				NextRenewal:   or(p.NextRenewal, today(now)),
				Renew:         or(p.Renew, models.RenewAuto),
				Status:        or(p.Status, models.SubscriptionActive),
				SubServices:   slices.Clone(p.SubServices),
				Email:         str(p.Email),
				EmailPurpose:  str(p.EmailPurpose),
			}
		},
		merge: func(sub models.Subscription, p models.SubscriptionPatch) models.Subscription {
			set(&sub.Name, p.Name)
			set(&sub.Cost, p.Cost)
			set(&sub.Currency, p.Currency)
			set(&sub.BillingCycle, p.BillingCycle)
			set(&sub.PaymentMethod, p.PaymentMethod)
			set(&sub.NextRenewal, p.NextRenewal)
			set(&sub.Renew, p.Renew)
			set(&sub.Status, p.Status)
			if p.SubServices != nil {
				sub.SubServices = slices.Clone(p.SubServices)
			}
			set(&sub.Email, p.Email)
			set(&sub.EmailPurpose, p.EmailPurpose)
			return sub
		},
	}
}

func cards(s *Store) *Repository[models.FinancialCard, models.CardPatch] {
	return &Repository[models.FinancialCard, models.CardPatch]{
		kind: models.KindCard,
		st:   s,
		list: func(snap models.Snapshot) []models.FinancialCard { return snap.FinancialCards },
		set:  func(snap *models.Snapshot, v []models.FinancialCard) { snap.FinancialCards = v },
		build: func(id, companyID string, p models.CardPatch, _ time.Time) models.FinancialCard {
			return models.FinancialCard{
				ID:         id,
				CompanyID:  companyID,
				Name:       or(p.Name, "New Card"),
				CardHolder: str(p.CardHolder),
				Last4:      or(p.Last4, "0000"),
				Expiry:     or(p.Expiry, "12/99"),
				Network:    or(p.Network, "Visa"),
				Type:       or(p.Type, "Credit"),
				Status:     or(p.Status, models.CardActive),
				Limit:      num(p.Limit),
			}
		},
		merge: func(c models.FinancialCard, p models.CardPatch) models.FinancialCard {
			set(&c.Name, p.Name)
			set(&c.CardHolder, p.CardHolder)
			set(&c.Last4, p.Last4)
			set(&c.Expiry, p.Expiry)
			set(&c.Network, p.Network)
			set(&c.Type, p.Type)
			set(&c.Status, p.Status)
			set(&c.Limit, p.Limit)
			return c
		},
	}
}

func loans(s *Store) *Repository[models.Loan, models.LoanPatch] {
	return &Repository[models.Loan, models.LoanPatch]{
		kind: models.KindLoan,
		st:   s,
		list: func(snap models.Snapshot) []models.Loan { return snap.Loans },
		set:  func(snap *models.Snapshot, v []models.Loan) { snap.Loans = v },
		build: func(id, companyID string, p models.LoanPatch, now time.Time) models.Loan {
			return models.Loan{
				ID:               id,
				CompanyID:        companyID,
				Lender:           or(p.Lender, "Bank"),
				Name:             or(p.Name, "New Loan"),
				PrincipalAmount:  num(p.PrincipalAmount),
				RemainingBalance: num(p.RemainingBalance),
				InterestRate:     num(p.InterestRate),
				Term:             or(p.Term, "Unknown"),
				MonthlyPayment:   num(p.MonthlyPayment),
				StartDate:        or(p.StartDate, today(now)),
				Status:           or(p.Status, models.LoanActive),
			}
		},
		merge: func(l models.Loan, p models.LoanPatch) models.Loan {
			set(&l.Lender, p.Lender)
			set(&l.Name, p.Name)
			set(&l.PrincipalAmount, p.PrincipalAmount)
			set(&l.RemainingBalance, p.RemainingBalance)
			set(&l.InterestRate, p.InterestRate)
			set(&l.Term, p.Term)
			set(&l.MonthlyPayment, p.MonthlyPayment)
			set(&l.StartDate, p.StartDate)
			set(&l.Status, p.Status)
			return l
		},
	}
}

func institutions(s *Store) *Repository[models.Institution, models.InstitutionPatch] {
	return &Repository[models.Institution, models.InstitutionPatch]{
		kind: models.KindInstitution,
		st:   s,
		list: func(snap models.Snapshot) []models.Institution { return snap.Institutions },
		set:  func(snap *models.Snapshot, v []models.Institution) { snap.Institutions = v },
		build: func(id, companyID string, p models.InstitutionPatch, _ time.Time) models.Institution {
			accs := slices.Clone(p.Accounts)
			if accs == nil {
				accs = []models.InstitutionAccount{}
			}
			return models.Institution{
				ID:        id,
				CompanyID: companyID,
				Name:      or(p.Name, "New Bank"),
				LoginURL:  str(p.LoginURL),
				Email:     str(p.Email),
				Username:  str(p.Username),
				Password:  str(p.Password),
				Accounts:  accs,
			}
		},
		merge: func(in models.Institution, p models.InstitutionPatch) models.Institution {
			set(&in.Name, p.Name)
			set(&in.LoginURL, p.LoginURL)
			set(&in.Email, p.Email)
			set(&in.Username, p.Username)
			set(&in.Password, p.Password)
			if p.Accounts != nil {
				in.Accounts = slices.Clone(p.Accounts)
			}
			return in
		},
	}
}

func documents(s *Store) *Repository[models.Document, models.DocumentPatch] {
	return &Repository[models.Document, models.DocumentPatch]{
		kind: models.KindDocument,
		st:   s,
		list: func(snap models.Snapshot) []models.Document { return snap.Documents },
		set:  func(snap *models.Snapshot, v []models.Document) { snap.Documents = v },
		build: func(id, companyID string, p models.DocumentPatch, now time.Time) models.Document {
			return models.Document{
				ID:         id,
				CompanyID:  companyID,
				Name:       or(p.Name, "New Document"),
				Type:       or(p.Type, "Other"),
				URL:        str(p.URL),
				UploadDate: or(p.UploadDate, today(now)),
				Notes:      str(p.Notes),
			}
		},
		merge: func(d models.Document, p models.DocumentPatch) models.Document {
			set(&d.Name, p.Name)
			set(&d.Type, p.Type)
			set(&d.URL, p.URL)
			set(&d.UploadDate, p.UploadDate)
			set(&d.Notes, p.Notes)
			return d
		},
	}
}
