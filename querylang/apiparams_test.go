package querylang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A fixed reference time keeps the date-bound assertions deterministic.
var refNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestQueryToAPIParams_FieldTable(t *testing.T) {
	tests := []struct {
		name  string
		query ParsedQuery
		want  map[string]string
	}{
		{
			name: "level maps to level",
			query: ParsedQuery{Filters: []ParsedFilter{
				{Field: "level", Operator: OpEquals, Value: "error"},
			}},
			want: map[string]string{"level": "error"},
		},
		{
			name: "status maps to level too",
			query: ParsedQuery{Filters: []ParsedFilter{
				{Field: "status", Operator: OpEquals, Value: "success"},
			}},
			want: map[string]string{"level": "success"},
		},
		{
			name: "multiple triggers accumulate comma-joined",
			query: ParsedQuery{Filters: []ParsedFilter{
				{Field: "trigger", Operator: OpEquals, Value: "api"},
				{Field: "trigger", Operator: OpEquals, Value: "webhook"},
			}},
			want: map[string]string{"triggers": "api,webhook"},
		},
		{
			name: "workflow and folder names",
			query: ParsedQuery{Filters: []ParsedFilter{
				{Field: "workflow", Operator: OpEquals, Value: "Daily Sync"},
				{Field: "folder", Operator: OpEquals, Value: "Production"},
			}},
			want: map[string]string{"workflowName": "Daily Sync", "folderName": "Production"},
		},
		{
			name: "id fields pass through",
			query: ParsedQuery{Filters: []ParsedFilter{
				{Field: "workflowId", Operator: OpEquals, Value: "wf-123"},
				{Field: "executionId", Operator: OpEquals, Value: "ex-456"},
			}},
			want: map[string]string{"workflowId": "wf-123", "executionId": "ex-456"},
		},
		{
			name: "execution folds into search",
			query: ParsedQuery{Filters: []ParsedFilter{
				{Field: "execution", Operator: OpEquals, Value: "ex-789"},
			}},
			want: map[string]string{"search": "ex-789"},
		},
		{
			name: "execution filter and text search share the search param",
			query: ParsedQuery{
				Filters: []ParsedFilter{
					{Field: "execution", Operator: OpEquals, Value: "ex-789"},
				},
				TextSearch: "timeout",
			},
			want: map[string]string{"search": "ex-789 timeout"},
		},
		{
			name:  "text search alone",
			query: ParsedQuery{TextSearch: "refund issue"},
			want:  map[string]string{"search": "refund issue"},
		},
		{
			name: "cost comparison becomes a synthetic flag",
			query: ParsedQuery{Filters: []ParsedFilter{
				{Field: "cost", Operator: OpGreater, Value: 0.01},
			}},
			want: map[string]string{"cost_>_0.01": "true"},
		},
		{
			name: "duration flag uses canonical milliseconds",
			query: ParsedQuery{Filters: []ParsedFilter{
				{Field: "duration", Operator: OpGreaterEq, Value: 5000.0},
			}},
			want: map[string]string{"duration_>=_5000": "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queryToAPIParamsAt(tt.query, refNow))
		})
	}
}

func TestQueryToAPIParams_DateBounds(t *testing.T) {
	today := ParsedQuery{Filters: []ParsedFilter{
		{Field: "date", Operator: OpEquals, Value: "today"},
	}}
	params := queryToAPIParamsAt(today, refNow)
	assert.Equal(t, map[string]string{
		"startDate": "2025-03-15T00:00:00.000Z",
	}, params)

	yesterday := ParsedQuery{Filters: []ParsedFilter{
		{Field: "date", Operator: OpEquals, Value: "yesterday"},
	}}
	params = queryToAPIParamsAt(yesterday, refNow)
	assert.Equal(t, map[string]string{
		"startDate": "2025-03-14T00:00:00.000Z",
		"endDate":   "2025-03-14T23:59:59.999Z",
	}, params)
}

func TestQueryToAPIParams_EndToEnd(t *testing.T) {
	parsed := ParseQuery(`level:error trigger:api workflow:"Daily Sync" payment failed`)
	params := queryToAPIParamsAt(parsed, refNow)
	assert.Equal(t, map[string]string{
		"level":        "error",
		"triggers":     "api",
		"workflowName": "Daily Sync",
		"search":       "payment failed",
	}, params)
}
