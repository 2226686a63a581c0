// Package flagx splits a shared command line between independent parsers.
//
// The configuration layer and the subcommand dispatcher both read os.Args.
// flagx lets each of them see only the flags it owns.
package flagx

import (
	"flag"
	"strings"
)

// ConfigFlags name the JSON config file flag in both spellings.
var ConfigFlags = []string{"-c", "-config"}

// partition walks args and sorts every token into owned (a known flag and
// its value) or rest. A known flag takes the next token as its value unless
// that token starts with "-"; "-flag=value" is a single token.
func partition(args []string, known []string) (owned, rest []string) {
	set := make(map[string]struct{}, len(known))
	for _, f := range known {
		set[f] = struct{}{}
	}

	owned = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, hit := set[name]; hit {
				owned = append(owned, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, hit := set[arg]; !hit {
			rest = append(rest, arg)
			continue
		}
		owned = append(owned, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			owned = append(owned, args[i+1])
			i++
		}
	}
	return owned, rest
}

// FilterArgs returns the tokens of args that belong to the allowed flags,
// values included, in their original order.
func FilterArgs(args []string, allowed []string) []string {
	owned, _ := partition(args, allowed)
	return owned
}

// StripArgs is the complement of FilterArgs: it drops the given flags and
// their values and returns everything else.
func StripArgs(args []string, drop []string) []string {
	_, rest := partition(args, drop)
	return rest
}

// ConfigPath returns the value of -c / -config in args, or "" if neither is
// present. When both appear, the last one wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFlags))

	return path
}
