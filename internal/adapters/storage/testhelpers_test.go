package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, sealer *TokenSealer) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"), sealer)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}
