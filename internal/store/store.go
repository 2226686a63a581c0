package store

import (
	"time"

	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/google/uuid"
)

// Clock returns the current time.
type Clock func() time.Time

// IDGenerator returns a fresh, never reused identifier.
type IDGenerator func() string

// Store builds snapshot transitions. It holds no snapshot itself and is safe
// for concurrent use.
type Store struct {
	now   Clock
	newID IDGenerator

	Companies     *Repository[models.Company, models.CompanyPatch]
	Accounts      *Repository[models.Account, models.AccountPatch]
	Subscriptions *Repository[models.Subscription, models.SubscriptionPatch]
	Cards         *Repository[models.FinancialCard, models.CardPatch]
	Loans         *Repository[models.Loan, models.LoanPatch]
	Institutions  *Repository[models.Institution, models.InstitutionPatch]
	Documents     *Repository[models.Document, models.DocumentPatch]

	byKind map[models.Kind]dispatcher
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(s *Store) { s.now = c }
}

// WithIDs overrides the id generator.
func WithIDs(g IDGenerator) Option {
	return func(s *Store) { s.newID = g }
}

// New returns a Store using time.Now and random UUIDs unless overridden.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}

	s.Companies = companies(s)
	s.Accounts = accounts(s)
	s.Subscriptions = subscriptions(s)
	s.Cards = cards(s)
	s.Loans = loans(s)
	s.Institutions = institutions(s)
	s.Documents = documents(s)

	s.byKind = map[models.Kind]dispatcher{
		models.KindCompany:      s.Companies,
		models.KindAccount:      s.Accounts,
		models.KindSubscription: s.Subscriptions,
		models.KindCard:         s.Cards,
		models.KindLoan:         s.Loans,
		models.KindInstitution:  s.Institutions,
		models.KindDocument:     s.Documents,
	}
	return s
}

// AddCompany appends a new company. No selected company is required.
func (s *Store) AddCompany(snap models.Snapshot, p models.CompanyPatch) (models.Snapshot, error) {
	return s.Companies.Add(snap, models.Session{}, p)
}

// DeleteCompany removes the company and every record it owns.
func (s *Store) DeleteCompany(snap models.Snapshot, companyID string) (models.Snapshot, error) {
	return s.Companies.Delete(snap, companyID)
}

// MarkViewed records that the user navigated into the company's detail view.
// Only lastViewed changes.
func (s *Store) MarkViewed(snap models.Snapshot, companyID string) (models.Snapshot, error) {
	i := indexOf(snap.Companies, companyID)
	if i < 0 {
		return snap, notFound(models.KindCompany, companyID)
	}
	c := snap.Companies[i]
	c.LastViewed = s.now().UnixMilli()

	next := snap
	next.Companies = replaced(snap.Companies, i, c)
	return next, nil
}

// touch refreshes the owning company's lastModified. It never moves the
// timestamp backwards.
func (s *Store) touch(next *models.Snapshot, companyID string, now time.Time) {
	i := indexOf(next.Companies, companyID)
	if i < 0 {
		return
	}
	c := next.Companies[i]
	c.LastModified = max(c.LastModified, now.UnixMilli())
	next.Companies = replaced(next.Companies, i, c)
}
