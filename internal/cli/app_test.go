package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/logging"
	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/dmitrijs2005/founderstack/internal/storage"
	"github.com/dmitrijs2005/founderstack/internal/store"
	"github.com/dmitrijs2005/founderstack/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func fixedNow() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

type generatorFunc func(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error)

func (f generatorFunc) Generate(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	return f(ctx, model, prompt, cfg)
}

func reply(text string) suggest.Generator {
	return generatorFunc(func(context.Context, string, string, *genai.GenerateContentConfig) (string, error) {
		return text, nil
	})
}

type harness struct {
	app    *App
	out    *bytes.Buffer
	slot   *storage.MemorySlot
	writer *storage.Writer
}

// newHarness builds an App on a memory slot. input feeds confirmations.
func newHarness(t *testing.T, input string, gen suggest.Generator) *harness {
	t.Helper()

	slot := storage.NewMemorySlot()
	adapter := storage.NewAdapter(slot, logging.Nop(), storage.WithNow(fixedNow))
	w := storage.NewWriter(adapter)
	t.Cleanup(func() { _ = w.Close(context.Background()) })

	n := 0
	st := store.New(
		store.WithClock(fixedNow),
		store.WithIDs(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)

	out := &bytes.Buffer{}
	app := NewApp(context.Background(), Deps{
		Store:    st,
		Adapter:  adapter,
		Sessions: storage.NewSessionStore(slot),
		Writer:   w,
		Suggest:  suggest.New(gen, logging.Nop(), suggest.WithPicker(func(int) int { return 0 })),
		Log:      logging.Nop(),
	}, WithIO(strings.NewReader(input), out), WithClock(fixedNow))

	return &harness{app: app, out: out, slot: slot, writer: w}
}

func (h *harness) exec(t *testing.T, lines ...string) string {
	t.Helper()
	h.out.Reset()
	for _, l := range lines {
		require.True(t, h.app.Exec(context.Background(), l))
	}
	return h.out.String()
}

func TestNewApp_SeedsOnFirstRun(t *testing.T) {
	h := newHarness(t, "", nil)

	snap := h.app.Snapshot()
	assert.Len(t, snap.Companies, 3)
	assert.Equal(t, models.DefaultSession(), h.app.Session())
}

func TestNewApp_DropsSessionForMissingCompany(t *testing.T) {
	slot := storage.NewMemorySlot()
	sessions := storage.NewSessionStore(slot)
	require.NoError(t, sessions.Save(context.Background(), models.DefaultSession().Open("99")))

	adapter := storage.NewAdapter(slot, logging.Nop(), storage.WithNow(fixedNow))
	w := storage.NewWriter(adapter)
	t.Cleanup(func() { _ = w.Close(context.Background()) })

	app := NewApp(context.Background(), Deps{
		Store: store.New(), Adapter: adapter, Sessions: sessions, Writer: w,
		Suggest: suggest.New(nil, logging.Nop()), Log: logging.Nop(),
	}, WithIO(strings.NewReader(""), &bytes.Buffer{}))

	assert.Equal(t, models.ViewDashboard, app.Session().ActiveView)
	assert.Empty(t, app.Session().SelectedCompanyID)
}

func TestExec_OpenAndTabs(t *testing.T) {
	h := newHarness(t, "", nil)

	out := h.exec(t, "open cifr")
	assert.Contains(t, out, "# Cifr")
	assert.Contains(t, out, "Accounts (2)")

	sess := h.app.Session()
	assert.Equal(t, models.ViewCompany, sess.ActiveView)
	assert.Equal(t, "1", sess.SelectedCompanyID)

	c, _ := h.app.Snapshot().Company("1")
	assert.Equal(t, fixedNow().UnixMilli(), c.LastViewed)

	out = h.exec(t, "tab subscriptions")
	assert.Contains(t, out, "Github Enterprise")
	assert.Equal(t, models.TabSubscriptions, h.app.Session().ActiveTab)

	out = h.exec(t, "tab stack")
	assert.Contains(t, out, "Accounts (2)")

	out = h.exec(t, "tab nope")
	assert.Contains(t, out, `Error: unknown tab "nope"`)

	out = h.exec(t, "close")
	assert.Contains(t, out, "# Portfolio")
	assert.Equal(t, models.ViewDashboard, h.app.Session().ActiveView)
}

func TestExec_OpenResolvesCompanies(t *testing.T) {
	h := newHarness(t, "", nil)

	h.exec(t, "open 2")
	assert.Equal(t, "2", h.app.Session().SelectedCompanyID)

	h.exec(t, "open vortex agency")
	assert.Equal(t, "3", h.app.Session().SelectedCompanyID)

	out := h.exec(t, "open nothing")
	assert.Contains(t, out, "not found")
	assert.Equal(t, "3", h.app.Session().SelectedCompanyID)
}

func TestExec_AddRequiresOpenCompany(t *testing.T) {
	h := newHarness(t, "", nil)
	before := h.app.Snapshot()

	out := h.exec(t, "add account platform=Notion")

	assert.Contains(t, out, "no company selected")
	assert.Len(t, h.app.Snapshot().Accounts, len(before.Accounts))
}

func TestExec_AccountLifecycle(t *testing.T) {
	h := newHarness(t, "", nil)
	h.exec(t, "open 1")

	out := h.exec(t, `add account platform=Notion email="ops@cifr.io" subscriptionCost=8 notes=["team wiki"]`)
	assert.Contains(t, out, "Added account id-1.")

	snap := h.app.Snapshot()
	acc := snap.Accounts[len(snap.Accounts)-1]
	assert.Equal(t, "Notion", acc.Platform)
	assert.Equal(t, "ops@cifr.io", acc.Email)
	assert.Equal(t, []string{"team wiki"}, acc.Notes)

	sub := snap.Subscriptions[len(snap.Subscriptions)-1]
	assert.Equal(t, "Notion", sub.Name)
	assert.Equal(t, 8.0, sub.Cost)

	out = h.exec(t, "set account id-1 subscriptionCost=10")
	assert.Contains(t, out, "Updated account id-1.")
	snap = h.app.Snapshot()
	assert.Equal(t, 10.0, snap.Subscriptions[len(snap.Subscriptions)-1].Cost)

	out = h.exec(t, "set account id-1 bogus=1")
	assert.Contains(t, out, "Error:")

	h.exec(t, "rm account id-1")
	for _, s := range h.app.Snapshot().Subscriptions {
		assert.NotEqual(t, "Notion", s.Name)
	}
}

func TestExec_UsageErrors(t *testing.T) {
	h := newHarness(t, "", nil)

	tests := []struct {
		line string
		want string
	}{
		{"open", "usage: open"},
		{"add", "usage: add"},
		{"add gadget", `unknown kind "gadget"`},
		{`add company name="unterminated`, "unterminated quote"},
		{"set company 1", "usage: set"},
		{"rm company", "usage: rm"},
		{"search", "usage: search"},
		{"query", "usage: query"},
		{"ask", "usage: ask"},
		{"purpose", "usage: purpose"},
		{"parse", "usage: parse"},
		{"password", "usage: password"},
		{"drop", "no company selected"},
		{"insights", "no company selected"},
		{"frobnicate", "Unknown command: frobnicate"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out := h.exec(t, tt.line)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestExec_AddCompanyFromDashboard(t *testing.T) {
	h := newHarness(t, "", nil)

	out := h.exec(t, `add company name="Acme Labs" structure=LLC`)
	assert.Contains(t, out, "Added company id-1.")

	c, ok := h.app.Snapshot().Company("id-1")
	require.True(t, ok)
	assert.Equal(t, "Acme Labs", c.Name)
}

func TestExec_DropAsksFirst(t *testing.T) {
	h := newHarness(t, "n\ny\n", nil)
	h.exec(t, "open 2")

	out := h.exec(t, "drop")
	assert.Contains(t, out, "Delete EcoStream and everything it owns?")
	assert.Contains(t, out, "Cancelled.")
	assert.True(t, h.app.Snapshot().HasCompany("2"))

	h.exec(t, "drop")
	snap := h.app.Snapshot()
	assert.False(t, snap.HasCompany("2"))
	assert.Empty(t, models.OwnedBy(snap.Accounts, "2"))
	assert.Empty(t, models.OwnedBy(snap.Subscriptions, "2"))
	assert.Empty(t, models.OwnedBy(snap.Documents, "2"))
	assert.Equal(t, models.ViewDashboard, h.app.Session().ActiveView)
}

func TestExec_BurnSearchQuery(t *testing.T) {
	h := newHarness(t, "", nil)

	out := h.exec(t, "burn")
	assert.Contains(t, out, "| Cifr | $88.99 |")
	assert.Contains(t, out, "**$208.99**")

	out = h.exec(t, "search zoom")
	assert.Contains(t, out, "## Subscriptions")
	assert.Contains(t, out, "Zoom, $15.99 (s2) in Cifr")

	out = h.exec(t, "search qqq")
	assert.Contains(t, out, "Nothing found.")

	out = h.exec(t, "query $.companies[*].name")
	assert.Contains(t, out, `"Cifr"`)
	assert.Contains(t, out, `"Vortex Agency"`)
}

func TestExec_FilterDashboard(t *testing.T) {
	h := newHarness(t, "", nil)

	out := h.exec(t, "filter eco")
	assert.Contains(t, out, "EcoStream")
	assert.NotContains(t, out, "Vortex Agency")

	out = h.exec(t, "filter")
	assert.Contains(t, out, "Vortex Agency")
}

func TestExec_QuoteFallsBackWithoutKey(t *testing.T) {
	h := newHarness(t, "", nil)

	h.exec(t, "quote")
	h.out.Reset()
	h.app.Wait()

	assert.Contains(t, h.out.String(), "> The best way to predict the future is to create it. - Peter Drucker")
}

func TestExec_PurposeStoresSuggestion(t *testing.T) {
	h := newHarness(t, "", reply("Billing and admin notifications."))

	h.exec(t, "purpose s2")
	h.app.Wait()

	sub, ok := h.app.Store.Subscriptions.Get(h.app.Snapshot(), "s2")
	require.True(t, ok)
	assert.Equal(t, "Billing and admin notifications.", sub.EmailPurpose)
	assert.Contains(t, h.out.String(), "Email purpose for Zoom: Billing and admin notifications.")
}

func TestExec_PurposeWithoutSuggestionKeepsData(t *testing.T) {
	h := newHarness(t, "", nil)

	h.exec(t, "purpose s2")
	h.app.Wait()

	sub, _ := h.app.Store.Subscriptions.Get(h.app.Snapshot(), "s2")
	assert.Equal(t, "Primary login for CEO host access.", sub.EmailPurpose)
	assert.Contains(t, h.out.String(), "No email purpose suggestion for Zoom.")

	out := h.exec(t, "purpose nope")
	assert.Contains(t, out, "not found")
}

func TestExec_ParseSuggestsCommand(t *testing.T) {
	h := newHarness(t, "", reply(`{"platform":"Notion","email":"a@b.co","notes":"team wiki","pricingModel":"Free"}`))

	h.exec(t, "parse notion login a@b.co, free plan")
	h.app.Wait()

	assert.Contains(t, h.out.String(), `add account email="a@b.co" notes=["team wiki"] platform="Notion" pricingModel="free"`)
}

func TestExec_AskAndInsightsRenderAnswers(t *testing.T) {
	h := newHarness(t, "", reply("Total burn is $208.99."))

	h.exec(t, "ask what do I spend?")
	h.exec(t, "open 1", "insights")
	h.app.Wait()

	out := h.out.String()
	assert.Contains(t, out, "Total burn is $208.99.")
	assert.Contains(t, out, "## Suggestions for Cifr")
}

func TestExec_Password(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	h := newHarness(t, "", nil)

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	out := h.exec(t, "password a1")
	assert.Contains(t, out, "Password updated for AWS.")
	acc, _ := h.app.Store.Accounts.Get(h.app.Snapshot(), "a1")
	assert.Equal(t, "s3cret", acc.Password)

	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	out = h.exec(t, "password a2")
	assert.Contains(t, out, "Error: no tty")

	out = h.exec(t, "password zz")
	assert.Contains(t, out, "not found")
}

func TestExec_Reset(t *testing.T) {
	h := newHarness(t, "y\n", nil)
	h.exec(t, "open 1", `add company name="Temp"`)
	require.Len(t, h.app.Snapshot().Companies, 4)

	out := h.exec(t, "reset")

	assert.Contains(t, out, "Data reset.")
	assert.Len(t, h.app.Snapshot().Companies, 3)
	assert.Equal(t, models.DefaultSession(), h.app.Session())
}

func TestExec_ExitStopsLoop(t *testing.T) {
	h := newHarness(t, "", nil)
	assert.False(t, h.app.Exec(context.Background(), "exit"))
	assert.False(t, h.app.Exec(context.Background(), "  quit "))
}

func TestRun_PersistsThroughWriter(t *testing.T) {
	h := newHarness(t, "open 1\nadd subscription name=Figma cost=15\nexit\n", nil)

	h.app.Run(context.Background())
	require.NoError(t, h.writer.Close(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Welcome to FounderStack")
	assert.Contains(t, out, "fs (Cifr/accounts")
	assert.Contains(t, out, "Bye!")

	reloaded := storage.NewAdapter(h.slot, logging.Nop()).Load(context.Background())
	var names []string
	for _, s := range reloaded.Subscriptions {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Figma")

	sess, err := storage.NewSessionStore(h.slot).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", sess.SelectedCompanyID)
}

func TestStatus(t *testing.T) {
	h := newHarness(t, "", nil)
	h.app.now = time.Now // the writer stamps saves with the wall clock
	assert.Equal(t, "", h.app.status())

	h.exec(t, "open 1", "add document name=NDA")
	require.NoError(t, h.writer.Close(context.Background()))

	assert.Equal(t, "(Cifr/accounts, saved just now) ", h.app.status())
}
