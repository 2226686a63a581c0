package models

import (
	"fmt"
	"strings"
)

// Kind names one of the seven snapshot collections.
type Kind string

const (
	KindCompany      Kind = "company"
	KindAccount      Kind = "account"
	KindSubscription Kind = "subscription"
	KindCard         Kind = "card"
	KindLoan         Kind = "loan"
	KindInstitution  Kind = "institution"
	KindDocument     Kind = "document"
)

// Kinds lists every kind in snapshot order.
var Kinds = []Kind{KindCompany, KindAccount, KindSubscription, KindCard, KindLoan, KindInstitution, KindDocument}

var kindAliases = map[string]Kind{
	"company": KindCompany, "companies": KindCompany, "entity": KindCompany,
	"account": KindAccount, "accounts": KindAccount, "login": KindAccount,
	"subscription": KindSubscription, "subscriptions": KindSubscription, "sub": KindSubscription,
	"card": KindCard, "cards": KindCard,
	"loan": KindLoan, "loans": KindLoan,
	"institution": KindInstitution, "institutions": KindInstitution, "bank": KindInstitution,
	"document": KindDocument, "documents": KindDocument, "doc": KindDocument,
}

// ParseKind resolves a kind from its name or a common alias.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown kind %q", s)
	}
	return k, nil
}
