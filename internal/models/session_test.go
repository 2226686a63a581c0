package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Navigation(t *testing.T) {
	s := DefaultSession()
	assert.Equal(t, ViewDashboard, s.ActiveView)

	s.ActiveTab = TabDocs
	s = s.Open("c1")
	assert.Equal(t, "c1", s.SelectedCompanyID)
	assert.Equal(t, ViewCompany, s.ActiveView)
	assert.Equal(t, TabAccounts, s.ActiveTab)

	s = s.Close()
	assert.Empty(t, s.SelectedCompanyID)
	assert.Equal(t, ViewDashboard, s.ActiveView)
}

func TestParseTab(t *testing.T) {
	tab, ok := ParseTab("stack")
	assert.True(t, ok)
	assert.Equal(t, TabAccounts, tab)

	tab, ok = ParseTab("insights")
	assert.True(t, ok)
	assert.Equal(t, TabInsights, tab)

	_, ok = ParseTab("nope")
	assert.False(t, ok)
}
