package models

// Snapshot is the full value of all seven collections at one instant.
//
// Snapshots are treated as immutable: the store never writes into a slice it
// has already handed out, so a snapshot stays valid after later mutations.
// Callers must not modify the slices either.
type Snapshot struct {
	Companies      []Company       `json:"companies"`
	Accounts       []Account       `json:"accounts"`
	Subscriptions  []Subscription  `json:"subscriptions"`
	FinancialCards []FinancialCard `json:"financialCards"`
	Loans          []Loan          `json:"loans"`
	Institutions   []Institution   `json:"institutions"`
	Documents      []Document      `json:"documents"`
}

// Company returns the company with the given id.
func (s Snapshot) Company(id string) (Company, bool) {
	for _, c := range s.Companies {
		if c.ID == id {
			return c, true
		}
	}
	return Company{}, false
}

// HasCompany reports whether a company with the given id exists.
func (s Snapshot) HasCompany(id string) bool {
	_, ok := s.Company(id)
	return ok
}

// Normalized returns s with every nil collection replaced by an empty one.
func (s Snapshot) Normalized() Snapshot {
	if s.Companies == nil {
		s.Companies = []Company{}
	}
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if s.Subscriptions == nil {
		s.Subscriptions = []Subscription{}
	}
	if s.FinancialCards == nil {
		s.FinancialCards = []FinancialCard{}
	}
	if s.Loans == nil {
		s.Loans = []Loan{}
	}
	if s.Institutions == nil {
		s.Institutions = []Institution{}
	}
	if s.Documents == nil {
		s.Documents = []Document{}
	}
	return s
}

// OwnedBy returns the records of items that belong to companyID, in order.
func OwnedBy[T Record](items []T, companyID string) []T {
	out := make([]T, 0)
	for _, it := range items {
		if it.OwnerID() == companyID {
			out = append(out, it)
		}
	}
	return out
}
