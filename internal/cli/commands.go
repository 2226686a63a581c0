package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/founderstack/internal/common"
	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/dmitrijs2005/founderstack/internal/store"
	"github.com/dmitrijs2005/founderstack/internal/views"
)

func usage(s string) error {
	return fmt.Errorf("usage: %s", s)
}

// show redraws the current view.
func (a *App) show(ctx context.Context) {
	if a.sess.ActiveView == models.ViewCompany {
		if d, ok := views.CompanyView(a.snap, a.sess.SelectedCompanyID, a.query); ok {
			a.markdown(DetailMarkdown(d, a.sess.ActiveTab))
			return
		}
		a.setSession(ctx, a.sess.Close())
	}
	a.markdown(DashboardMarkdown(a.snap, a.query, a.now()))
}

// selected returns the open company.
func (a *App) selected() (models.Company, error) {
	if a.sess.ActiveView != models.ViewCompany {
		return models.Company{}, common.ErrNoCompanySelected
	}
	c, ok := a.snap.Company(a.sess.SelectedCompanyID)
	if !ok {
		return models.Company{}, common.ErrNoCompanySelected
	}
	return c, nil
}

// resolveCompany finds a company by id, exact name or unique name prefix,
// ignoring case for names.
func (a *App) resolveCompany(ref string) (models.Company, error) {
	if c, ok := a.snap.Company(ref); ok {
		return c, nil
	}

	var matches []models.Company
	for _, c := range a.snap.Companies {
		if strings.EqualFold(c.Name, ref) {
			return c, nil
		}
		if strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(ref)) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Company{}, fmt.Errorf("company %q: %w", ref, common.ErrorNotFound)
	default:
		return models.Company{}, fmt.Errorf("%q matches %d companies", ref, len(matches))
	}
}

func (a *App) open(ctx context.Context, ref string) error {
	if ref == "" {
		return usage("open <company id or name>")
	}
	c, err := a.resolveCompany(ref)
	if err != nil {
		return err
	}
	if err := a.apply(store.Intent{Kind: models.KindCompany, Op: store.OpView, ID: c.ID}); err != nil {
		return err
	}
	a.query = ""
	a.setSession(ctx, a.sess.Open(c.ID))
	a.show(ctx)
	return nil
}

func (a *App) closeCompany(ctx context.Context) {
	a.query = ""
	a.setSession(ctx, a.sess.Close())
	a.show(ctx)
}

func (a *App) tab(ctx context.Context, name string) error {
	if _, err := a.selected(); err != nil {
		return err
	}
	t, ok := models.ParseTab(strings.ToLower(name))
	if !ok {
		return fmt.Errorf("unknown tab %q", name)
	}
	s := a.sess
	s.ActiveTab = t
	a.setSession(ctx, s)
	a.show(ctx)
	return nil
}

func (a *App) add(args string) error {
	tokens, err := splitArgs(args)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return usage("add <kind> [field=value ...]")
	}
	kind, err := models.ParseKind(tokens[0])
	if err != nil {
		return err
	}
	patch, err := decodePatch(kind, tokens[1:])
	if err != nil {
		return err
	}
	if err := a.apply(store.Intent{Kind: kind, Op: store.OpAdd, Patch: patch}); err != nil {
		return fmt.Errorf("add %s: %w", kind, err)
	}
	a.printf("Added %s %s.\n", kind, lastID(a.snap, kind))
	return nil
}

func (a *App) set(args string) error {
	tokens, err := splitArgs(args)
	if err != nil {
		return err
	}
	if len(tokens) < 3 {
		return usage("set <kind> <id> field=value ...")
	}
	kind, err := models.ParseKind(tokens[0])
	if err != nil {
		return err
	}
	patch, err := decodePatch(kind, tokens[2:])
	if err != nil {
		return err
	}
	if err := a.apply(store.Intent{Kind: kind, Op: store.OpUpdate, ID: tokens[1], Patch: patch}); err != nil {
		return err
	}
	a.printf("Updated %s %s.\n", kind, tokens[1])
	return nil
}

func (a *App) remove(ctx context.Context, args string) error {
	tokens := strings.Fields(args)
	if len(tokens) != 2 {
		return usage("rm <kind> <id>")
	}
	kind, err := models.ParseKind(tokens[0])
	if err != nil {
		return err
	}
	id := tokens[1]

	if kind == models.KindCompany {
		c, ok := a.snap.Company(id)
		if !ok {
			return fmt.Errorf("company %q: %w", id, common.ErrorNotFound)
		}
		if !a.confirm(fmt.Sprintf("Delete %s and everything it owns?", c.Name)) {
			a.println("Cancelled.")
			return nil
		}
	}

	if err := a.apply(store.Intent{Kind: kind, Op: store.OpDelete, ID: id}); err != nil {
		return err
	}
	a.printf("Deleted %s %s.\n", kind, id)

	if kind == models.KindCompany && id == a.sess.SelectedCompanyID {
		a.closeCompany(ctx)
	}
	return nil
}

func (a *App) drop(ctx context.Context) error {
	c, err := a.selected()
	if err != nil {
		return err
	}
	return a.remove(ctx, string(models.KindCompany)+" "+c.ID)
}

func (a *App) search(q string) error {
	if q == "" {
		return usage("search <text>")
	}
	a.markdown(SearchMarkdown(views.GlobalSearch(a.snap, q), q))
	return nil
}

func (a *App) jsonQuery(path string) error {
	if path == "" {
		return usage("query <jsonpath>")
	}
	v, err := Query(a.snap, path)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	a.println(string(out))
	return nil
}

func (a *App) quote(ctx context.Context) {
	a.println("Fetching a quote...")
	a.background(ctx, func(ctx context.Context) func() {
		text := a.Suggest.Quote(ctx)
		return func() { a.markdown("> " + text) }
	})
}

func (a *App) insights(ctx context.Context) error {
	c, err := a.selected()
	if err != nil {
		return err
	}
	subs := models.OwnedBy(a.snap.Subscriptions, c.ID)

	a.printf("Analyzing %d subscriptions of %s...\n", len(subs), c.Name)
	a.background(ctx, func(ctx context.Context) func() {
		text := a.Suggest.AnalyzeSubscriptions(ctx, subs)
		return func() { a.markdown("## Suggestions for " + c.Name + "\n\n" + text) }
	})
	return nil
}

func (a *App) ask(ctx context.Context, question string) error {
	if question == "" {
		return usage("ask <question>")
	}
	snap := a.snap

	a.println("Thinking...")
	a.background(ctx, func(ctx context.Context) func() {
		text := a.Suggest.AskPortfolio(ctx, snap, question)
		return func() { a.markdown(text) }
	})
	return nil
}

// purpose asks for the typical use of a subscription's account email and
// stores it on the subscription when the answer arrives.
func (a *App) purpose(ctx context.Context, id string) error {
	if id == "" {
		return usage("purpose <subscription id>")
	}
	sub, ok := a.Store.Subscriptions.Get(a.snap, id)
	if !ok {
		return fmt.Errorf("subscription %q: %w", id, common.ErrorNotFound)
	}

	a.printf("Looking up the email purpose for %s...\n", sub.Name)
	a.background(ctx, func(ctx context.Context) func() {
		text := a.Suggest.EmailPurpose(ctx, sub.Name)
		return func() {
			if text == "" {
				a.printf("No email purpose suggestion for %s.\n", sub.Name)
				return
			}
			err := a.apply(store.Intent{
				Kind:  models.KindSubscription,
				Op:    store.OpUpdate,
				ID:    id,
				Patch: models.SubscriptionPatch{EmailPurpose: &text},
			})
			if err != nil {
				a.println("Error:", err)
				return
			}
			a.printf("Email purpose for %s: %s\n", sub.Name, text)
		}
	})
	return nil
}

// parse turns free text into an add-account command line the user can
// review and run.
func (a *App) parse(ctx context.Context, text string) error {
	if text == "" {
		return usage("parse <text>")
	}

	a.println("Parsing...")
	a.background(ctx, func(ctx context.Context) func() {
		p := a.Suggest.ParseAccount(ctx, text)
		return func() {
			if p == nil {
				a.println("Could not parse account details.")
				return
			}
			line, err := formatFields(*p)
			if err != nil {
				a.println("Error:", err)
				return
			}
			a.printf("Suggested command:\n  add account %s\n", line)
		}
	})
	return nil
}

func (a *App) password(id string) error {
	if id == "" {
		return usage("password <account id>")
	}
	acc, ok := a.Store.Accounts.Get(a.snap, id)
	if !ok {
		return fmt.Errorf("account %q: %w", id, common.ErrorNotFound)
	}

	pw, err := GetPassword(a.out, fmt.Sprintf("New password for %s: ", acc.Platform))
	if err != nil {
		return err
	}
	defer wipe(pw)

	s := string(pw)
	if err := a.apply(store.Intent{
		Kind:  models.KindAccount,
		Op:    store.OpUpdate,
		ID:    id,
		Patch: models.AccountPatch{Password: &s},
	}); err != nil {
		return err
	}
	a.printf("Password updated for %s.\n", acc.Platform)
	return nil
}

// reset replaces everything with the sample portfolio.
func (a *App) reset(ctx context.Context) {
	if !a.confirm("Replace all data with the sample portfolio?") {
		a.println("Cancelled.")
		return
	}

	a.snap = a.Adapter.Clear(ctx)
	a.Writer.Submit(a.snap)
	if err := a.Sessions.Clear(ctx); err != nil {
		a.Log.Warn(ctx, "could not clear session", "error", err)
	}
	a.sess = models.DefaultSession()
	a.query = ""

	a.println("Data reset.")
	a.show(ctx)
}

func lastID(snap models.Snapshot, kind models.Kind) string {
	switch kind {
	case models.KindCompany:
		return last(snap.Companies)
	case models.KindAccount:
		return last(snap.Accounts)
	case models.KindSubscription:
		return last(snap.Subscriptions)
	case models.KindCard:
		return last(snap.FinancialCards)
	case models.KindLoan:
		return last(snap.Loans)
	case models.KindInstitution:
		return last(snap.Institutions)
	default:
		return last(snap.Documents)
	}
}

func last[T models.Record](items []T) string {
	if len(items) == 0 {
		return ""
	}
	return items[len(items)-1].RecordID()
}
