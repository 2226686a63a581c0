package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Patches carry a partial update: a nil field keeps the prior value.
// When creating a record, a nil or empty field falls back to the kind's default.

type CompanyPatch struct {
	Name        *string `json:"name,omitempty"`
	Structure   *string `json:"structure,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`
}

type AccountPatch struct {
	Platform             *string  `json:"platform,omitempty"`
	Website              *string  `json:"website,omitempty"`
	Email                *string  `json:"email,omitempty"`
	TwoFactorAuth        *string  `json:"twoFactorAuth,omitempty"`
	RecoveryMethod       *string  `json:"recoveryMethod,omitempty"`
	Password             *string  `json:"password,omitempty"`
	PricingModel         *string  `json:"pricingModel,omitempty"`
	Notes                []string `json:"notes,omitempty"`
	SubscriptionCost     *float64 `json:"subscriptionCost,omitempty"`
	SubscriptionInterval *string  `json:"subscriptionInterval,omitempty"`
	PaymentMethod        *string  `json:"paymentMethod,omitempty"`
	NextBillingDate      *string  `json:"nextBillingDate,omitempty"`
	Renew                *string  `json:"renew,omitempty"`
	Status               *string  `json:"status,omitempty"`
}

type SubscriptionPatch struct {
	Name          *string      `json:"name,omitempty"`
	Cost          *float64     `json:"cost,omitempty"`
	Currency      *string      `json:"currency,omitempty"`
	BillingCycle  *string      `json:"billingCycle,omitempty"`
	PaymentMethod *string      `json:"paymentMethod,omitempty"`
	NextRenewal   *string      `json:"nextRenewal,omitempty"`
	Renew         *string      `json:"renew,omitempty"`
	Status        *string      `json:"status,omitempty"`
	SubServices   []SubService `json:"subServices,omitempty"`
	Email         *string      `json:"email,omitempty"`
	EmailPurpose  *string      `json:"emailPurpose,omitempty"`
}

type CardPatch struct {
	Name       *string  `json:"name,omitempty"`
	CardHolder *string  `json:"cardHolder,omitempty"`
	Last4      *string  `json:"last4,omitempty"`
	Expiry     *string  `json:"expiry,omitempty"`
	Network    *string  `json:"network,omitempty"`
	Type       *string  `json:"type,omitempty"`
	Status     *string  `json:"status,omitempty"`
	Limit      *float64 `json:"limit,omitempty"`
}

type LoanPatch struct {
	Lender           *string  `json:"lender,omitempty"`
	Name             *string  `json:"name,omitempty"`
	PrincipalAmount  *float64 `json:"principalAmount,omitempty"`
	RemainingBalance *float64 `json:"remainingBalance,omitempty"`
	InterestRate     *float64 `json:"interestRate,omitempty"`
	Term             *string  `json:"term,omitempty"`
	MonthlyPayment   *float64 `json:"monthlyPayment,omitempty"`
	StartDate        *string  `json:"startDate,omitempty"`
	Status           *string  `json:"status,omitempty"`
}

type InstitutionPatch struct {
	Name     *string              `json:"name,omitempty"`
	LoginURL *string              `json:"loginUrl,omitempty"`
	Email    *string              `json:"email,omitempty"`
	Username *string              `json:"username,omitempty"`
	Password *string              `json:"password,omitempty"`
	Accounts []InstitutionAccount `json:"accounts,omitempty"`
}

type DocumentPatch struct {
	Name       *string `json:"name,omitempty"`
	Type       *string `json:"type,omitempty"`
	URL        *string `json:"url,omitempty"`
	UploadDate *string `json:"uploadDate,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// DecodePatch builds the patch type matching kind from loosely typed fields.
// Unknown field names are rejected.
func DecodePatch(kind Kind, fields map[string]json.RawMessage) (any, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}

	var target any
	switch kind {
	case KindCompany:
		target = &CompanyPatch{}
	case KindAccount:
		target = &AccountPatch{}
	case KindSubscription:
		target = &SubscriptionPatch{}
	case KindCard:
		target = &CardPatch{}
	case KindLoan:
		target = &LoanPatch{}
	case KindInstitution:
		target = &InstitutionPatch{}
	case KindDocument:
		target = &DocumentPatch{}
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, fmt.Errorf("decode %s fields: %w", kind, err)
	}

	switch p := target.(type) {
	case *CompanyPatch:
		return *p, nil
	case *AccountPatch:
		return *p, nil
	case *SubscriptionPatch:
		return *p, nil
	case *CardPatch:
		return *p, nil
	case *LoanPatch:
		return *p, nil
	case *InstitutionPatch:
		return *p, nil
	default:
		return *target.(*DocumentPatch), nil
	}
}

// Ptr returns a pointer to v; handy for building patches.
func Ptr[T any](v T) *T { return &v }
