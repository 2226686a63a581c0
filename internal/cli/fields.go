package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// splitArgs splits s on whitespace outside double quotes and outside JSON
// brackets. Quotes are kept in the token so JSON values survive intact; a
// backslash escapes the next rune inside quotes.
func splitArgs(s string) ([]string, error) {
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
		escaped bool
		started bool
		depth   int
	)

	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case inQuote && r == '\\':
			cur.WriteRune(r)
			escaped = true
		case r == '"':
			cur.WriteRune(r)
			inQuote = !inQuote
			started = true
		case !inQuote && (r == '[' || r == '{'):
			cur.WriteRune(r)
			depth++
			started = true
		case !inQuote && (r == ']' || r == '}'):
			cur.WriteRune(r)
			if depth > 0 {
				depth--
			}
			started = true
		case !inQuote && depth == 0 && unicode.IsSpace(r):
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if inQuote {
		return nil, errUnterminatedQuote
	}
	if started {
		out = append(out, cur.String())
	}
	return out, nil
}

// parseFields turns field=value tokens into raw JSON values. A value that is
// valid JSON is used as is; anything else becomes a JSON string.
func parseFields(tokens []string) (map[string]json.RawMessage, error) {
	fields := make(map[string]json.RawMessage, len(tokens))
	for _, tok := range tokens {
		name, value, ok := strings.Cut(tok, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected field=value, got %q", tok)
		}
		if json.Valid([]byte(value)) {
			fields[name] = json.RawMessage(value)
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		fields[name] = raw
	}
	return fields, nil
}

// decodePatch parses field tokens into the patch type of kind.
func decodePatch(kind models.Kind, tokens []string) (any, error) {
	fields, err := parseFields(tokens)
	if err != nil {
		return nil, err
	}
	return models.DecodePatch(kind, fields)
}

// formatFields is the inverse of parseFields for a patch: it renders every
// set field as name=<json>, sorted by name.
func formatFields(patch any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(patch); err != nil {
		return "", err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &fields); err != nil {
		return "", err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+string(fields[name]))
	}
	return strings.Join(parts, " "), nil
}
