package querylang

import (
	"regexp"
	"strings"
)

// Preview returns the query text that would result from accepting the
// suggestion at the current cursor position.
func (e *Engine) Preview(s Suggestion, current string, cursor int) string {
	if strings.TrimSpace(current) == "" {
		return s.Value
	}

	ctx := AnalyzeContext(current, cursor)
	switch ctx.Type {
	case ContextFilterKeyPartial:
		insert := s.Value
		// A value suggestion landing on a bare word means the unique-prefix
		// shortcut fired: the key token was never typed out, so splice it in
		// together with the value.
		if _, ok := e.catalog.Lookup(s.Category); ok {
			insert = s.Category + ":" + s.Value
		}
		return current[:ctx.Start] + insert + current[ctx.End:]
	case ContextFilterValue:
		return current[:ctx.Start] + s.Value + current[ctx.End:]
	default:
		if strings.HasSuffix(current, ":") || endsInSpace(current) {
			return current + s.Value
		}
		return current + " " + s.Value
	}
}

// danglingKeyPattern matches a query whose last token is "key:" with no
// value after it.
var danglingKeyPattern = regexp.MustCompile(`(?:^|\s)\w+:$`)

// ValidateQuery reports whether a query is structurally complete and safe to
// submit: no dangling "key:" and no unterminated quoted span. The empty
// query is valid.
func ValidateQuery(query string) bool {
	if strings.Count(query, `"`)%2 != 0 {
		return false
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return true
	}
	return !danglingKeyPattern.MatchString(trimmed)
}
