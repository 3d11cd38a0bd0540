package querylang

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var bareWordPattern = regexp.MustCompile(`^\w+$`)

// AnalyzeContext classifies what sits immediately before the cursor. It is
// re-derived from scratch on every call; no parse state survives between
// keystrokes. Cursor is a byte offset and is clamped into range.
func AnalyzeContext(input string, cursor int) QueryContext {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(input) {
		cursor = len(input)
	}
	before := input[:cursor]

	if strings.TrimSpace(before) == "" || endsInSpace(before) {
		return QueryContext{Type: ContextInitial, Start: cursor, End: cursor}
	}

	tokenStart := strings.LastIndexFunc(before, unicode.IsSpace) + 1
	token := before[tokenStart:]

	if i := strings.Index(token, ":"); i >= 0 {
		key, partial := token[:i], token[i+1:]
		switch {
		case partial == "":
			// A bare "key:" is treated as a boundary; the suggestion layer
			// special-cases it to open the value list.
			return QueryContext{Type: ContextInitial, Start: cursor, End: cursor}
		case isCompleteValue(key, partial):
			// The value is already a legal token; the user is ready for the
			// next one even though the cursor still touches this value.
			return QueryContext{Type: ContextInitial, Start: cursor, End: cursor}
		default:
			valueStart := tokenStart + i + 1
			return QueryContext{
				Type:         ContextFilterValue,
				FilterKey:    key,
				PartialInput: partial,
				Start:        valueStart,
				End:          cursor,
			}
		}
	}

	if bareWordPattern.MatchString(token) {
		return QueryContext{
			Type:         ContextFilterKeyPartial,
			PartialInput: token,
			Start:        tokenStart,
			End:          cursor,
		}
	}

	return QueryContext{Type: ContextTextSearch, Start: tokenStart, End: cursor}
}

func endsInSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

// isCompleteValue reports whether a typed value already equals a legal token
// for its field: an exact catalog option value, or, for the dynamic fields,
// a fully quoted non-empty string.
func isCompleteValue(key, value string) bool {
	if key == FieldWorkflow || key == FieldFolder {
		return len(value) >= 3 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)
	}
	def, ok := DefaultCatalog().Lookup(key)
	if !ok {
		return false
	}
	for _, opt := range def.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
