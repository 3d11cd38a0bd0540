package querylang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every enumerated option value must survive a round trip through the
// parser: the suggestion layer offers these strings verbatim, so the parser
// has to accept each one.
func TestCatalog_OptionValuesParse(t *testing.T) {
	for _, def := range DefaultCatalog().Fields() {
		for _, opt := range def.Options {
			t.Run(def.Key+"/"+opt.Value, func(t *testing.T) {
				result := ParseQuery(def.Key + ":" + opt.Value)
				require.Len(t, result.Filters, 1)
				assert.Empty(t, result.TextSearch)

				f := result.Filters[0]
				assert.Equal(t, def.Key, f.Field)
				assert.Equal(t, opt.Value, f.OriginalValue)
				if !strings.HasPrefix(opt.Value, ">") && !strings.HasPrefix(opt.Value, "<") {
					assert.Equal(t, OpEquals, f.Operator)
				}
				if numericFields[def.Key] {
					assert.IsType(t, float64(0), f.Value)
				} else {
					assert.IsType(t, "", f.Value)
				}
			})
		}
	}
}

func TestCatalog_Lookup(t *testing.T) {
	def, ok := DefaultCatalog().Lookup("level")
	require.True(t, ok)
	assert.Equal(t, "Level", def.Label)

	_, ok = DefaultCatalog().Lookup("nosuchfield")
	assert.False(t, ok)
}

func TestIsKnownField(t *testing.T) {
	for _, field := range []string{"level", "status", "trigger", "date", "cost", "duration",
		"workflow", "folder", "workflowId", "executionId", "execution"} {
		assert.True(t, isKnownField(field), field)
	}
	assert.False(t, isKnownField("severity"))
	assert.False(t, isKnownField(""))
}
