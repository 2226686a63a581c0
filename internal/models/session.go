package models

// View is the top-level screen of the view layer.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewCompany   View = "company"
)

// Tab is the active section of the company detail view.
type Tab string

const (
	TabAccounts      Tab = "accounts"
	TabSubscriptions Tab = "subscriptions"
	TabFinancial     Tab = "financial"
	TabDocs          Tab = "docs"
	TabInsights      Tab = "insights"
)

// Tabs lists the company detail tabs in display order.
var Tabs = []Tab{TabAccounts, TabSubscriptions, TabFinancial, TabDocs, TabInsights}

// Session is the explicit UI context passed into intent handlers in place
// of ambient "selected company" state.
type Session struct {
	SelectedCompanyID string
	ActiveView        View
	ActiveTab         Tab
}

// DefaultSession is the state of a first run: dashboard, accounts tab.
func DefaultSession() Session {
	return Session{ActiveView: ViewDashboard, ActiveTab: TabAccounts}
}

// Open returns the session navigated into the company detail view.
func (s Session) Open(companyID string) Session {
	s.SelectedCompanyID = companyID
	s.ActiveView = ViewCompany
	s.ActiveTab = TabAccounts
	return s
}

// Close returns the session navigated back to the dashboard.
func (s Session) Close() Session {
	s.SelectedCompanyID = ""
	s.ActiveView = ViewDashboard
	return s
}

// ParseTab resolves a tab name; the legacy "stack" tab maps to accounts.
func ParseTab(s string) (Tab, bool) {
	if s == "stack" {
		return TabAccounts, true
	}
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}
