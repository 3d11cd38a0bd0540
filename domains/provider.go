// Package domains supplies the dynamic suggestion domains: the workflow and
// folder names known to the execution database. The query engine itself
// never touches storage; this package reads the lists and hands them over.
package domains

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Provider reads workflow and folder names from the execution database.
type Provider struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// Open opens the execution database read-side with the standard pragmas and
// wraps it in a Provider.
func Open(path string, log *zap.SugaredLogger) (*Provider, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}

	// WAL keeps reads from blocking the writer that owns this database.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to enable WAL mode")
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to set busy timeout")
	}

	if log != nil {
		log.Debugw("Domain database opened", "path", path)
	}
	return NewProvider(db, log), nil
}

// NewProvider wraps an already-open database handle.
func NewProvider(db *sql.DB, log *zap.SugaredLogger) *Provider {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Provider{db: db, log: log}
}

// WorkflowNames returns distinct workflow names, most recently updated
// first, so the suggestion cap favors what the user touched last.
func (p *Provider) WorkflowNames(ctx context.Context) ([]string, error) {
	return p.queryNames(ctx, `SELECT name FROM workflows GROUP BY name ORDER BY MAX(updated_at) DESC, name ASC`)
}

// FolderNames returns distinct folder names in alphabetical order.
func (p *Provider) FolderNames(ctx context.Context) ([]string, error) {
	return p.queryNames(ctx, `SELECT DISTINCT name FROM folders ORDER BY name ASC`)
}

func (p *Provider) queryNames(ctx context.Context, query string) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query names")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan name")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate names")
	}
	return names, nil
}

// Close releases the database handle.
func (p *Provider) Close() error {
	return p.db.Close()
}
