package querylang

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// filterPattern matches one field:value span. The value is an optional
// comparison operator followed by either a quoted span or a run of
// non-whitespace characters. Operator alternatives are ordered longest-first
// and the quoted alternative precedes the bare run so each wins the overlap.
var filterPattern = regexp.MustCompile(`(\w+):((?:>=|<=|!=|>|<|=)?(?:"[^"]*"|\S+))`)

// ParseQuery scans raw query text into filters plus a free-text remainder.
// Spans that look like filters but fail validation (unknown field, bad
// number) are pushed back into the free text wholesale; the parser never
// fails on any input.
func ParseQuery(query string) ParsedQuery {
	filters := make([]ParsedFilter, 0)
	var text []string

	last := 0
	for _, m := range filterPattern.FindAllStringSubmatchIndex(query, -1) {
		start, end := m[0], m[1]
		field := query[m[2]:m[3]]
		rawValue := query[m[4]:m[5]]

		if between := query[last:start]; strings.TrimSpace(between) != "" {
			text = append(text, strings.Fields(between)...)
		}
		last = end

		if f := ParseFilter(field, rawValue); f != nil {
			filters = append(filters, *f)
		} else {
			// Reclassify the entire matched span as free text.
			text = append(text, query[start:end])
		}
	}
	if rest := query[last:]; strings.TrimSpace(rest) != "" {
		text = append(text, strings.Fields(rest)...)
	}

	return ParsedQuery{Filters: filters, TextSearch: strings.Join(text, " ")}
}

// ParseFilter validates one field/value pair. It returns nil for unknown
// fields and for numeric fields whose value does not coerce; the caller
// treats nil as "this was free text after all".
func ParseFilter(field, valueWithOperator string) *ParsedFilter {
	if !isKnownField(field) {
		return nil
	}

	op := OpEquals
	value := valueWithOperator
	for _, candidate := range operatorOrder {
		if strings.HasPrefix(value, string(candidate)) {
			op = candidate
			value = value[len(string(candidate)):]
			break
		}
	}

	// Strip surrounding double quotes only when both are present.
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}

	if numericFields[field] {
		n, ok := coerceNumeric(field, value)
		if !ok {
			return nil
		}
		return &ParsedFilter{Field: field, Operator: op, Value: n, OriginalValue: valueWithOperator}
	}

	return &ParsedFilter{Field: field, Operator: op, Value: value, OriginalValue: valueWithOperator}
}

// coerceNumeric parses a numeric filter value. Duration accepts an optional
// unit suffix: "ms" keeps the value as-is, "s" multiplies by 1000 so every
// duration is expressed in milliseconds.
func coerceNumeric(field, value string) (float64, bool) {
	scale := 1.0
	if field == "duration" {
		switch {
		case strings.HasSuffix(value, "ms"):
			value = strings.TrimSuffix(value, "ms")
		case strings.HasSuffix(value, "s"):
			value = strings.TrimSuffix(value, "s")
			scale = 1000
		}
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n * scale, true
}

// formatNumber renders a coerced numeric value without a trailing ".0" so
// synthetic param keys stay stable ("cost_>_0.01", "duration_>_5000").
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// valueString renders a filter value for the flat API param map.
func valueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return formatNumber(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
