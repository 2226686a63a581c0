package cli

import (
	"context"
	"strings"
)

const helpText = `Available commands:
  dashboard, open <company>, close, tab <name>, show, filter [text]
  add <kind> [field=value ...], set <kind> <id> field=value ..., rm <kind> <id>, drop
  burn, search <text>, query <jsonpath>
  quote, insights, ask <question>, purpose <subscription id>, parse <text>
  password <account id>, save, reset, exit
Kinds: company, account, subscription, card, loan, institution, document`

// Run reads commands until EOF or "exit". Results of background suggestion
// calls are printed before each prompt.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to FounderStack (type 'help' for commands)")
	a.show(ctx)

	for {
		a.drain()
		a.printf("fs %s> ", a.status())
		if !a.scanner.Scan() {
			a.println()
			return
		}
		if !a.Exec(ctx, a.scanner.Text()) {
			return
		}
	}
}

// Exec runs a single command line. It reports false when the user asked to
// leave.
func (a *App) Exec(ctx context.Context, line string) bool {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	var err error
	switch cmd {
	case "":
	case "help", "?":
		a.println(helpText)
	case "dashboard", "home":
		a.closeCompany(ctx)
	case "open":
		err = a.open(ctx, rest)
	case "close", "back":
		a.closeCompany(ctx)
	case "tab":
		err = a.tab(ctx, rest)
	case "show", "ls":
		a.show(ctx)
	case "filter":
		a.query = rest
		a.show(ctx)
	case "add":
		err = a.add(rest)
	case "set":
		err = a.set(rest)
	case "rm", "delete":
		err = a.remove(ctx, rest)
	case "drop":
		err = a.drop(ctx)
	case "burn":
		a.markdown(BurnMarkdown(a.snap))
	case "search":
		err = a.search(rest)
	case "query":
		err = a.jsonQuery(rest)
	case "quote":
		a.quote(ctx)
	case "insights":
		err = a.insights(ctx)
	case "ask":
		err = a.ask(ctx, rest)
	case "purpose":
		err = a.purpose(ctx, rest)
	case "parse":
		err = a.parse(ctx, rest)
	case "password":
		err = a.password(rest)
	case "save":
		a.Writer.Submit(a.snap)
		a.println("Saving.")
	case "reset":
		a.reset(ctx)
	case "exit", "quit":
		a.println("Bye!")
		return false
	default:
		a.println("Unknown command:", cmd)
	}

	if err != nil {
		a.println("Error:", err)
	}
	return true
}
