package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/logging"
	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/dmitrijs2005/founderstack/internal/storage"
	"github.com/dmitrijs2005/founderstack/internal/store"
	"github.com/dmitrijs2005/founderstack/internal/suggest"
	"github.com/dmitrijs2005/founderstack/internal/views"
)

// Deps are the collaborators an App drives.
type Deps struct {
	Store    *store.Store
	Adapter  *storage.Adapter
	Sessions *storage.SessionStore
	Writer   *storage.Writer
	Suggest  *suggest.Client
	Log      logging.Logger
}

// App is the terminal view layer. It is not safe for concurrent use; only
// background suggestion calls run off the REPL goroutine.
type App struct {
	Deps

	out     io.Writer
	scanner *bufio.Scanner
	render  func(string) string
	now     func() time.Time

	snap  models.Snapshot
	sess  models.Session
	query string

	mu       sync.Mutex
	ready    []func()
	inflight sync.WaitGroup
}

type Option func(*App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.scanner = bufio.NewScanner(in)
		a.out = out
	}
}

// WithRenderer sets the markdown renderer used for views and suggestions.
func WithRenderer(fn func(string) string) Option {
	return func(a *App) { a.render = fn }
}

// WithClock overrides the clock used for "saved 2m ago" style labels.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func plain(md string) string { return md }

// NewApp loads the persisted snapshot and session. A session pointing at a
// company that no longer exists falls back to the dashboard.
func NewApp(ctx context.Context, d Deps, opts ...Option) *App {
	a := &App{
		Deps:    d,
		out:     os.Stdout,
		scanner: bufio.NewScanner(os.Stdin),
		render:  plain,
		now:     time.Now,
	}
	for _, o := range opts {
		o(a)
	}

	a.snap = d.Adapter.Load(ctx)

	sess, err := d.Sessions.Load(ctx)
	if err != nil {
		d.Log.Warn(ctx, "could not restore session", "error", err)
		sess = models.DefaultSession()
	}
	if sess.SelectedCompanyID != "" && !a.snap.HasCompany(sess.SelectedCompanyID) {
		sess = sess.Close()
	}
	a.sess = sess
	return a
}

// Snapshot returns the current snapshot.
func (a *App) Snapshot() models.Snapshot { return a.snap }

// Session returns the current navigation state.
func (a *App) Session() models.Session { return a.sess }

// apply runs the intent and, on success, replaces the snapshot and queues
// it for saving. On error nothing changes.
func (a *App) apply(in store.Intent) error {
	next, err := a.Store.Apply(a.snap, a.sess, in)
	if err != nil {
		return err
	}
	a.snap = next
	a.Writer.Submit(next)
	return nil
}

func (a *App) setSession(ctx context.Context, s models.Session) {
	a.sess = s
	if err := a.Sessions.Save(ctx, s); err != nil {
		a.Log.Warn(ctx, "could not save session", "error", err)
	}
}

// status is the prompt decoration: open company and tab, then the save
// indicator.
func (a *App) status() string {
	var parts []string
	if a.sess.ActiveView == models.ViewCompany {
		if c, ok := a.snap.Company(a.sess.SelectedCompanyID); ok {
			parts = append(parts, c.Name+"/"+string(a.sess.ActiveTab))
		}
	}

	st := a.Writer.Status()
	switch {
	case st.Saving:
		parts = append(parts, "saving")
	case st.Failed:
		parts = append(parts, "save failed, type 'save' to retry")
	case !st.LastSavedAt.IsZero():
		parts = append(parts, "saved "+strings.ToLower(views.TimeAgo(st.LastSavedAt.UnixMilli(), a.now())))
	}

	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ") "
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) markdown(md string) {
	fmt.Fprintln(a.out, a.render(md))
}

// confirm asks a yes/no question on the REPL input.
func (a *App) confirm(question string) bool {
	a.printf("%s [y/N] ", question)
	if !a.scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(a.scanner.Text())) {
	case "y", "yes":
		return true
	}
	return false
}
