// Package models defines the portfolio records persisted by FounderStack and
// the partial-update patches the store merges into them.
package models

// Record is implemented by every entity kept in a Snapshot collection.
type Record interface {
	// RecordID returns the identifier, unique within its collection.
	RecordID() string
	// OwnerID returns the id of the owning company. A company owns itself.
	OwnerID() string
}

// Company is the root aggregate; every other record references one by id.
type Company struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Structure    string `json:"structure"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	LogoURL      string `json:"logoUrl,omitempty"`
	LastModified int64  `json:"lastModified"`
	LastViewed   int64  `json:"lastViewed"`
}

func (c Company) RecordID() string { return c.ID }
func (c Company) OwnerID() string  { return c.ID }

// Account is a platform login held by a company.
type Account struct {
	ID                   string   `json:"id"`
	CompanyID            string   `json:"companyId"`
	Platform             string   `json:"platform"`
	Website              string   `json:"website,omitempty"`
	Email                string   `json:"email"`
	TwoFactorAuth        string   `json:"twoFactorAuth"`
	RecoveryMethod       string   `json:"recoveryMethod,omitempty"`
	Password             string   `json:"password,omitempty"`
	PricingModel         string   `json:"pricingModel"`
	Notes                []string `json:"notes"`
	SubscriptionCost     float64  `json:"subscriptionCost,omitempty"`
	SubscriptionInterval string   `json:"subscriptionInterval,omitempty"`
	PaymentMethod        string   `json:"paymentMethod,omitempty"`
	NextBillingDate      string   `json:"nextBillingDate,omitempty"`
	Renew                string   `json:"renew,omitempty"`
	Status               string   `json:"status,omitempty"`

	// LinkedSubscriptionID names the subscription created with the account.
	// Empty on records that predate the link; those match by platform name.
	LinkedSubscriptionID string `json:"linkedSubscriptionId,omitempty"`
}

func (a Account) RecordID() string { return a.ID }
func (a Account) OwnerID() string  { return a.CompanyID }

// SubService is a billable add-on of a subscription.
type SubService struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Cost   float64 `json:"cost"`
	Status string  `json:"status"`
}

// Subscription is a recurring cost of a company.
type Subscription struct {
	ID            string       `json:"id"`
	CompanyID     string       `json:"companyId"`
	Name          string       `json:"name"`
	Cost          float64      `json:"cost"`
	Currency      string       `json:"currency"`
	BillingCycle  string       `json:"billingCycle"`
	PaymentMethod string       `json:"paymentMethod,omitempty"`
	NextRenewal   string       `json:"nextRenewal"`
	Renew         string       `json:"renew,omitempty"`
	Status        string       `json:"status"`
	SubServices   []SubService `json:"subServices"`
	Email         string       `json:"email,omitempty"`
	EmailPurpose  string       `json:"emailPurpose,omitempty"`
}

func (s Subscription) RecordID() string { return s.ID }
func (s Subscription) OwnerID() string  { return s.CompanyID }

// FinancialCard is a company credit or debit card.
type FinancialCard struct {
	ID         string  `json:"id"`
	CompanyID  string  `json:"companyId"`
	Name       string  `json:"name"`
	CardHolder string  `json:"cardHolder"`
	Last4      string  `json:"last4"`
	Expiry     string  `json:"expiry"`
	Network    string  `json:"network"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Limit      float64 `json:"limit,omitempty"`
}

func (f FinancialCard) RecordID() string { return f.ID }
func (f FinancialCard) OwnerID() string  { return f.CompanyID }

// Loan is a debt instrument of a company.
type Loan struct {
	ID               string  `json:"id"`
	CompanyID        string  `json:"companyId"`
	Lender           string  `json:"lender"`
	Name             string  `json:"name"`
	PrincipalAmount  float64 `json:"principalAmount"`
	RemainingBalance float64 `json:"remainingBalance"`
	InterestRate     float64 `json:"interestRate"`
	Term             string  `json:"term"`
	MonthlyPayment   float64 `json:"monthlyPayment"`
	StartDate        string  `json:"startDate"`
	Status           string  `json:"status"`
}

func (l Loan) RecordID() string { return l.ID }
func (l Loan) OwnerID() string  { return l.CompanyID }

// InstitutionAccount is a sub-account held at a bank.
type InstitutionAccount struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Last4   string  `json:"last4"`
	Balance float64 `json:"balance"`
}

// Institution is a bank with its login and embedded sub-accounts.
type Institution struct {
	ID        string               `json:"id"`
	CompanyID string               `json:"companyId"`
	Name      string               `json:"name"`
	LoginURL  string               `json:"loginUrl,omitempty"`
	Email     string               `json:"email,omitempty"`
	Username  string               `json:"username,omitempty"`
	Password  string               `json:"password,omitempty"`
	Accounts  []InstitutionAccount `json:"accounts"`
}

func (i Institution) RecordID() string { return i.ID }
func (i Institution) OwnerID() string  { return i.CompanyID }

// Document is a company document: an external link or an embedded data URL.
type Document struct {
	ID         string `json:"id"`
	CompanyID  string `json:"companyId"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	UploadDate string `json:"uploadDate"`
	Notes      string `json:"notes,omitempty"`
}

func (d Document) RecordID() string { return d.ID }
func (d Document) OwnerID() string  { return d.CompanyID }
