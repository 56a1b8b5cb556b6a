package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mleone/ironwill/internal/db"
	"github.com/mleone/ironwill/internal/models"
)

// NewTestDB opens an in-memory SQLite database with all migrations applied.
// The single-connection pool keeps the in-memory database alive for the
// whole test.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open("file::memory:")
	require.NoError(t, err)
	return database
}

// NewTestProfile inserts a profile row and returns its id.
func NewTestProfile(t *testing.T, database *db.DB, username string) int64 {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `INSERT INTO profiles (username) VALUES (?)`, username)
	require.NoError(t, err)

	var id int64
	err = database.QueryRowContext(context.Background(), `SELECT id FROM profiles WHERE username = ?`, username).Scan(&id)
	require.NoError(t, err)
	return id
}

// Entry builds a daily entry with sensible defaults for tests.
func Entry(profileID int64, date string) models.DailyEntry {
	return models.DailyEntry{
		ProfileID: profileID,
		Date:      date,
		WeedClean: true,
		Mood:      5,
	}
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
