package querylang

import (
	"fmt"
	"strings"
	"time"
)

// isoMillis matches the wire format the execution API expects for date
// bounds: RFC 3339 with millisecond precision in the host's local zone.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// QueryToAPIParams flattens a parsed query into the string map consumed by
// the execution-log API. The mapping is a fixed per-field rule table; fields
// this subsystem cannot interpret (cost/duration with comparison operators)
// are forwarded as synthetic flag keys for the executor to resolve.
func QueryToAPIParams(q ParsedQuery) map[string]string {
	return queryToAPIParamsAt(q, time.Now())
}

func queryToAPIParamsAt(q ParsedQuery, now time.Time) map[string]string {
	params := make(map[string]string)
	var triggers []string
	var searchParts []string

	for _, f := range q.Filters {
		switch f.Field {
		case "level", "status":
			params["level"] = valueString(f.Value)
		case "trigger":
			// Multiple trigger filters accumulate into one comma-joined param.
			triggers = append(triggers, valueString(f.Value))
		case FieldWorkflow:
			params["workflowName"] = valueString(f.Value)
		case FieldFolder:
			params["folderName"] = valueString(f.Value)
		case FieldWorkflowID, FieldExecutionID:
			params[f.Field] = valueString(f.Value)
		case FieldExecution:
			// Execution references search the text index rather than
			// becoming a structured id filter.
			searchParts = append(searchParts, valueString(f.Value))
		case "date":
			applyDateBounds(params, valueString(f.Value), now)
		case "cost", "duration":
			key := fmt.Sprintf("%s_%s_%s", f.Field, f.Operator, valueString(f.Value))
			params[key] = "true"
		}
	}

	if len(triggers) > 0 {
		params["triggers"] = strings.Join(triggers, ",")
	}
	if q.TextSearch != "" {
		searchParts = append(searchParts, q.TextSearch)
	}
	if len(searchParts) > 0 {
		params["search"] = strings.Join(searchParts, " ")
	}

	return params
}

// applyDateBounds resolves the date keywords to ISO bounds. "today" sets
// only the lower bound (the upper bound is implicitly now); "yesterday"
// spans the prior day's midnight to 23:59:59.999.
func applyDateBounds(params map[string]string, value string, now time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch value {
	case "today":
		params["startDate"] = midnight.Format(isoMillis)
	case "yesterday":
		params["startDate"] = midnight.AddDate(0, 0, -1).Format(isoMillis)
		params["endDate"] = midnight.Add(-time.Millisecond).Format(isoMillis)
	}
}
