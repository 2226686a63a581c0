package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/buildinfo"
	"github.com/dmitrijs2005/founderstack/internal/cli"
	"github.com/dmitrijs2005/founderstack/internal/config"
	"github.com/dmitrijs2005/founderstack/internal/filex"
	"github.com/dmitrijs2005/founderstack/internal/logging"
	"github.com/dmitrijs2005/founderstack/internal/storage"
	"github.com/dmitrijs2005/founderstack/internal/store"
	"github.com/dmitrijs2005/founderstack/internal/views"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// env is shared by all subcommands.
type env struct {
	cfg *config.Config
	log logging.Logger
}

func (e *env) open(ctx context.Context) (*cli.Backend, bool) {
	b, err := cli.OpenBackend(ctx, e.cfg, e.log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return nil, false
	}
	return b, true
}

func commands(e *env) []subcommands.Command {
	return []subcommands.Command{
		&replCmd{env: e},
		&burnCmd{env: e},
		&searchCmd{env: e},
		&exportCmd{env: e},
		&resetCmd{env: e},
	}
}

func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// replCmd runs the interactive shell.
type replCmd struct {
	env   *env
	width int
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start the interactive shell (default)" }
func (*replCmd) Usage() string {
	return `founderstack repl [-width <columns>]

  Opens the dashboard and reads commands until 'exit'. Type 'help' inside
  the shell for the list of commands.
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "width", 100, "word wrap width of rendered output")
}

func (c *replCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, ok := c.env.open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer b.Close()

	log := c.env.log
	w := storage.NewWriter(b.Adapter,
		storage.WithDebounce(c.env.cfg.SaveDebounce),
		storage.WithOnResult(func(r storage.Result) {
			log.Debug(ctx, "snapshot saved", "ok", r.OK, "at", r.At)
		}),
	)

	app := cli.NewApp(ctx, cli.Deps{
		Store:    store.New(),
		Adapter:  b.Adapter,
		Sessions: b.Sessions,
		Writer:   w,
		Suggest:  cli.NewSuggestClient(ctx, c.env.cfg, log),
		Log:      log,
	}, cli.WithRenderer(cli.NewMarkdownRenderer(os.Stdout, c.width)))

	app.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := w.Close(closeCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: last save did not finish: %v\n", err)
		return subcommands.ExitFailure
	}
	if w.Status().Failed {
		fmt.Fprintln(os.Stderr, "Warning: the last save failed, see the log for details")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// burnCmd prints the monthly burn per company.
type burnCmd struct {
	env    *env
	asJSON bool
}

func (*burnCmd) Name() string     { return "burn" }
func (*burnCmd) Synopsis() string { return "print monthly burn per company" }
func (*burnCmd) Usage() string {
	return `founderstack burn [-json]

  Sums every subscription with its add-ons, counting yearly plans at 1/12.
`
}

func (c *burnCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "print JSON instead of a table")
}

type companyBurn struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Monthly decimal.Decimal `json:"monthly"`
}

func (c *burnCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, ok := c.env.open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer b.Close()

	snap := b.Adapter.Load(ctx)
	if !c.asJSON {
		fmt.Print(cli.NewMarkdownRenderer(os.Stdout, 100)(cli.BurnMarkdown(snap)))
		return subcommands.ExitSuccess
	}

	rows := make([]companyBurn, 0, len(snap.Companies))
	for _, co := range snap.Companies {
		rows = append(rows, companyBurn{ID: co.ID, Name: co.Name, Monthly: views.CompanyBurn(snap, co.ID)})
	}
	return printJSON(struct {
		Total     decimal.Decimal `json:"total"`
		Companies []companyBurn   `json:"companies"`
	}{views.TotalMonthlyBurn(snap), rows})
}

// searchCmd runs a global search.
type searchCmd struct {
	env    *env
	asJSON bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search companies, accounts and subscriptions" }
func (*searchCmd) Usage() string {
	return `founderstack search [-json] <text>

  Matches company names, account platforms, emails and 2FA methods, and
  subscription names, ignoring case.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "print JSON instead of a list")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q := strings.TrimSpace(strings.Join(f.Args(), " "))
	if q == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	b, ok := c.env.open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer b.Close()

	res := views.GlobalSearch(b.Adapter.Load(ctx), q)
	if c.asJSON {
		return printJSON(res)
	}
	fmt.Print(cli.NewMarkdownRenderer(os.Stdout, 100)(cli.SearchMarkdown(res, q)))
	return subcommands.ExitSuccess
}

// exportCmd writes the stored portfolio as JSON.
type exportCmd struct {
	env   *env
	out   string
	query string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio as JSON" }
func (*exportCmd) Usage() string {
	return `founderstack export [-o <file>] [-q <jsonpath>]

  Writes all collections, or the part selected by a JSONPath expression,
  to stdout or a file. Files are replaced atomically.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "output file (default stdout)")
	f.StringVar(&c.query, "q", "", "JSONPath expression, e.g. $.subscriptions[*].name")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, ok := c.env.open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer b.Close()

	snap := b.Adapter.Load(ctx)
	var v any = snap
	if c.query != "" {
		res, err := cli.Query(snap, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		v = res
	}

	if c.out == "" {
		return printJSON(v)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := filex.WriteAtomic(c.out, append(data, '\n'), 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// resetCmd deletes stored data and navigation state.
type resetCmd struct {
	env *env
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all data; the sample portfolio returns on next start" }
func (*resetCmd) Usage() string {
	return `founderstack reset -yes
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "confirm the reset")
}

func (c *resetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Refusing to delete data without -yes.")
		return subcommands.ExitUsageError
	}

	b, ok := c.env.open(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer b.Close()

	b.Adapter.Clear(ctx)
	if err := b.Sessions.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing session: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Data deleted.")
	return subcommands.ExitSuccess
}

type versionCmd struct{}

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "print build information" }
func (*versionCmd) Usage() string          { return "founderstack version\n" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}
func (*versionCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	buildinfo.PrintBuildData(os.Stdout)
	return subcommands.ExitSuccess
}
