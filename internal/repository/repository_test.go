package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skyops/airline-backoffice/internal/database"
)

// newTestDB opens a throwaway SQLite file under t.TempDir with the full
// schema applied and no seed data.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Init(context.Background(), db))
	return db
}
