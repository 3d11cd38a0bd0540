package domains

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	runlenstest "github.com/runlens/runlens/internal/testing"
)

func TestProvider_WorkflowNames(t *testing.T) {
	db := runlenstest.CreateTestDB(t)
	_, err := db.Exec(`
		INSERT INTO workflows (id, name, updated_at) VALUES
			('wf-1', 'Daily Sync', '2025-01-01 10:00:00'),
			('wf-2', 'Invoice Import', '2025-03-01 10:00:00'),
			('wf-3', 'Daily Sync', '2025-02-01 10:00:00')
	`)
	require.NoError(t, err)

	p := NewProvider(db, nil)
	names, err := p.WorkflowNames(context.Background())
	require.NoError(t, err)

	// Distinct, most recently updated first.
	assert.Equal(t, []string{"Invoice Import", "Daily Sync"}, names)
}

func TestProvider_FolderNames(t *testing.T) {
	db := runlenstest.CreateTestDB(t)
	_, err := db.Exec(`
		INSERT INTO folders (id, name) VALUES
			('f-1', 'Sandbox'),
			('f-2', 'Production')
	`)
	require.NoError(t, err)

	p := NewProvider(db, nil)
	names, err := p.FolderNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Production", "Sandbox"}, names)
}

func TestProvider_EmptyTables(t *testing.T) {
	db := runlenstest.CreateTestDB(t)
	p := NewProvider(db, nil)

	names, err := p.WorkflowNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = p.FolderNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
