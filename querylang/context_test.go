package querylang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeContext(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		want   QueryContext
	}{
		{
			name:  "empty input",
			input: "", cursor: 0,
			want: QueryContext{Type: ContextInitial},
		},
		{
			name:  "trailing whitespace",
			input: "level:error ", cursor: 12,
			want: QueryContext{Type: ContextInitial, Start: 12, End: 12},
		},
		{
			name:  "bare word is a key partial",
			input: "lev", cursor: 3,
			want: QueryContext{Type: ContextFilterKeyPartial, PartialInput: "lev", Start: 0, End: 3},
		},
		{
			name:  "key partial after a completed filter",
			input: "level:error tri", cursor: 15,
			want: QueryContext{Type: ContextFilterKeyPartial, PartialInput: "tri", Start: 12, End: 15},
		},
		{
			name:  "typing a value",
			input: "level:err", cursor: 9,
			want: QueryContext{Type: ContextFilterValue, FilterKey: "level", PartialInput: "err", Start: 6, End: 9},
		},
		{
			name:  "cursor mid-value ignores text after it",
			input: "level:error", cursor: 9,
			want: QueryContext{Type: ContextFilterValue, FilterKey: "level", PartialInput: "err", Start: 6, End: 9},
		},
		{
			name:  "complete catalog value folds to initial",
			input: "level:error", cursor: 11,
			want: QueryContext{Type: ContextInitial, Start: 11, End: 11},
		},
		{
			name:  "complete quoted workflow folds to initial",
			input: `workflow:"Sync"`, cursor: 15,
			want: QueryContext{Type: ContextInitial, Start: 15, End: 15},
		},
		{
			name:  "bare colon key folds to initial",
			input: "level:", cursor: 6,
			want: QueryContext{Type: ContextInitial, Start: 6, End: 6},
		},
		{
			name:  "unquoted partial workflow value",
			input: `workflow:"My`, cursor: 12,
			want: QueryContext{Type: ContextFilterValue, FilterKey: "workflow", PartialInput: `"My`, Start: 9, End: 12},
		},
		{
			name:  "non-word token is free text",
			input: "fix-me!", cursor: 7,
			want: QueryContext{Type: ContextTextSearch, Start: 0, End: 7},
		},
		{
			name:  "cursor clamped beyond input length",
			input: "lev", cursor: 99,
			want: QueryContext{Type: ContextFilterKeyPartial, PartialInput: "lev", Start: 0, End: 3},
		},
		{
			name:  "negative cursor clamped to start",
			input: "level:error", cursor: -4,
			want: QueryContext{Type: ContextInitial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeContext(tt.input, tt.cursor))
		})
	}
}

func TestIsCompleteValue(t *testing.T) {
	assert.True(t, isCompleteValue("level", "error"))
	assert.False(t, isCompleteValue("level", "err"))
	assert.True(t, isCompleteValue("workflow", `"a"`))
	assert.False(t, isCompleteValue("workflow", `""`))
	assert.False(t, isCompleteValue("workflow", `"open`))
	assert.False(t, isCompleteValue("nosuchfield", "anything"))
}
