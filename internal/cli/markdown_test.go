package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/dmitrijs2005/founderstack/internal/storage"
	"github.com/dmitrijs2005/founderstack/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardMarkdown(t *testing.T) {
	snap := storage.Seed(fixedNow())

	md := DashboardMarkdown(snap, "", fixedNow())
	assert.True(t, strings.HasPrefix(md, "# Portfolio"))
	assert.Contains(t, md, "Total monthly burn: **$208.99**")
	assert.Contains(t, md, "| 1 | Cifr | C-Corp | 2 | 2 | 5 | 2 | $88.99 | 1d ago | 1h ago |")
	assert.Contains(t, md, "| 3 | Vortex Agency | S-Corp |")

	md = DashboardMarkdown(snap, "nothing like this", fixedNow())
	assert.Contains(t, md, "No companies match.")
}

func TestDetailMarkdownTabs(t *testing.T) {
	snap := storage.Seed(fixedNow())
	d, ok := views.CompanyView(snap, "1", "")
	require.True(t, ok)

	tests := []struct {
		tab  models.Tab
		want []string
	}{
		{models.TabAccounts, []string{"## Accounts (2)", "| a1 | AWS | billing@cifr.io |"}},
		{models.TabSubscriptions, []string{"## Subscriptions (2)", "| s1 | Github Enterprise | $73.00 | Monthly | $73.00 |"}},
		{models.TabFinancial, []string{"## Cards (2)", "Amex ••1002", "## Loans (1)", "$320,000 of $500,000", "### Mercury Bank (i1), balance $190,000.00"}},
		{models.TabDocs, []string{"## Documents (2)", "| d1 | Articles of Incorporation | Formation |"}},
		{models.TabInsights, []string{"## Insights", "- Monthly burn: $88.99", "- Active tools: 4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			md := DetailMarkdown(d, tt.tab)
			assert.True(t, strings.HasPrefix(md, "# Cifr"))
			for _, w := range tt.want {
				assert.Contains(t, md, w)
			}
		})
	}
}

func TestDetailMarkdownEmbeddedDocument(t *testing.T) {
	d := views.Detail{
		Company:   models.Company{ID: "c", Name: "Acme"},
		Documents: []models.Document{{ID: "d", Name: "Logo | final", Type: "Image", URL: "data:image/png;base64,AAAA"}},
	}

	md := DetailMarkdown(d, models.TabDocs)
	assert.Contains(t, md, "(embedded file)")
	assert.Contains(t, md, `Logo \| final`)
	assert.NotContains(t, md, "base64")
}

func TestSearchMarkdown(t *testing.T) {
	snap := storage.Seed(fixedNow())

	md := SearchMarkdown(views.GlobalSearch(snap, "cifr"), "cifr")
	assert.Contains(t, md, `# Results for "cifr"`)
	assert.Contains(t, md, "- Cifr (1)")
	assert.Contains(t, md, "- AWS, billing@cifr.io (a1) in Cifr")

	orphan := views.SearchResults{Accounts: []views.AccountHit{{Account: models.Account{ID: "x", Platform: "Lost"}}}}
	assert.Contains(t, SearchMarkdown(orphan, "lost"), "in an unknown company")
}
