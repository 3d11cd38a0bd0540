package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunValidateCommand(t *testing.T) {
	assert.NoError(t, runValidateCommand(ValidateCmd, []string{"level:error"}))
	assert.NoError(t, runValidateCommand(ValidateCmd, nil))

	assert.Error(t, runValidateCommand(ValidateCmd, []string{"level:"}))
	assert.Error(t, runValidateCommand(ValidateCmd, []string{`workflow:"abc`}))
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "", joinArgs(nil))
	assert.Equal(t, "level:error payment", joinArgs([]string{"level:error", "payment"}))
}
