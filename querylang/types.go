// Package querylang implements the search query language for execution logs:
// a tolerant parser that turns free-form text mixing field:value filters and
// plain keywords into a structured filter set, and a cursor-driven
// autocomplete engine (context classification, suggestions, previews, and
// structural validation).
//
// Every function in this package degrades instead of failing: unknown fields,
// malformed operators, and bad numeric values are reclassified as free text or
// answered with empty results. Callers gate submission with ValidateQuery.
package querylang

// Operator is a comparison operator attached to a filter value.
type Operator string

const (
	OpEquals    Operator = "="
	OpNotEquals Operator = "!="
	OpGreater   Operator = ">"
	OpLess      Operator = "<"
	OpGreaterEq Operator = ">="
	OpLessEq    Operator = "<="
)

// operatorOrder lists operators longest-first so that prefix extraction never
// mistakes ">=" for ">".
var operatorOrder = []Operator{OpGreaterEq, OpLessEq, OpNotEquals, OpGreater, OpLess, OpEquals}

// ParsedFilter is a single recognized field:value predicate. Value holds a
// string for text fields and a float64 for numeric fields (cost, duration);
// duration is always canonicalized to milliseconds.
type ParsedFilter struct {
	Field         string   `json:"field"`
	Operator      Operator `json:"operator"`
	Value         any      `json:"value"`
	OriginalValue string   `json:"originalValue"`
}

// ParsedQuery is the result of parsing raw query text. TextSearch is the
// whitespace-normalized join of every span that was not consumed as a valid
// filter; it is empty only when every token was recognized.
type ParsedQuery struct {
	Filters    []ParsedFilter `json:"filters"`
	TextSearch string         `json:"textSearch"`
}

// ContextType classifies what the user is typing at the cursor.
type ContextType string

const (
	// ContextInitial means the cursor sits at a token boundary: empty input,
	// trailing whitespace, or immediately after a completed filter value.
	ContextInitial ContextType = "initial"
	// ContextFilterKeyPartial means an unterminated bare word with no colon yet.
	ContextFilterKeyPartial ContextType = "filter-key-partial"
	// ContextFilterValue means the cursor is inside the value of key:partial.
	ContextFilterValue ContextType = "filter-value-context"
	// ContextTextSearch means plain free text; no completions apply.
	ContextTextSearch ContextType = "text-search"
)

// QueryContext describes the syntactic role of the text immediately before
// the cursor. Start and End are byte offsets of the span a completion would
// replace, half-open [Start, End).
type QueryContext struct {
	Type         ContextType `json:"type"`
	FilterKey    string      `json:"filterKey,omitempty"`
	PartialInput string      `json:"partialInput,omitempty"`
	Start        int         `json:"startPosition"`
	End          int         `json:"endPosition"`
}

// Suggestion is a single completion candidate. Category names the filter
// field a value suggestion belongs to, or "filter" for key suggestions.
type Suggestion struct {
	ID          string `json:"id"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

// GroupType distinguishes key completion lists from value completion lists.
type GroupType string

const (
	GroupFilterKeys   GroupType = "filter-keys"
	GroupFilterValues GroupType = "filter-values"
)

// SuggestionGroup is a ranked completion list. FilterKey is set for
// filter-values groups and names the field the values belong to.
type SuggestionGroup struct {
	Type        GroupType    `json:"type"`
	FilterKey   string       `json:"filterKey,omitempty"`
	Suggestions []Suggestion `json:"suggestions"`
}
