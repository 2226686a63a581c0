// Package cli implements the interactive terminal front end of FounderStack.
//
// An App owns the current snapshot and session. Each command turns into a
// store intent; the resulting snapshot replaces the old one and is handed to
// the background storage.Writer, so the prompt never waits on disk.
// Suggestion requests run on their own goroutines and their answers are
// printed before the next prompt.
//
// Commands
//
//	help                          show available commands
//	dashboard                     list companies with burn and counts
//	open <company>                open a company by id or name
//	close                         return to the dashboard
//	tab <name>                    accounts, subscriptions, financial, docs, insights
//	show                          redraw the current view
//	filter [text]                 narrow the current view; no text clears it
//	add <kind> [field=value ...]  create a record in the open company
//	set <kind> <id> field=value   update a record
//	rm <kind> <id>                delete a record
//	drop                          delete the open company and everything it owns
//	burn                          monthly burn per company
//	search <text>                 search across all companies
//	query <jsonpath>              evaluate a JSONPath expression on the data
//	quote | insights | ask <q>    suggestions
//	purpose <subscription id>     suggest and store an email purpose
//	parse <text>                  turn free text into an add-account command
//	password <account id>         set an account password (hidden input)
//	save                          retry the last save
//	reset                         restore the sample portfolio
//	exit | quit                   leave the program
//
// Field values are JSON literals when they parse as JSON and plain strings
// otherwise, so cost=12.5 is a number and name="Acme Labs" may contain spaces.
package cli
