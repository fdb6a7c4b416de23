package bind

import "strings"

// DefaultDelimiter separates tokens in binding attribute lists.
const DefaultDelimiter = ","

// Tokens splits a delimited attribute value into trimmed tokens.
// Order and duplicates are preserved. An empty delimiter falls back to
// DefaultDelimiter. Empty tokens (e.g. from a trailing delimiter) are
// kept so that positional pairing stays honest; the validator rejects
// them as unresolvable names.
func Tokens(raw, delim string) []string {
	if delim == "" {
		delim = DefaultDelimiter
	}
	parts := strings.Split(raw, delim)
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}
