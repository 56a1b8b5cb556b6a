package repository

import (
	"context"

	"github.com/mleone/ironwill/internal/models"
)

// EntryRepository handles daily-entry data access. Entries are keyed by
// (profile, date) and upserted, never versioned.
type EntryRepository interface {
	Get(ctx context.Context, profileID int64, date string) (*models.DailyEntry, error)
	List(ctx context.Context, filter models.EntryFilter) ([]models.DailyEntry, error)
	Count(ctx context.Context, filter models.EntryFilter) (int, error)
	Upsert(ctx context.Context, entry models.DailyEntry) (*models.DailyEntry, error)
	Delete(ctx context.Context, profileID int64, date string) error
}

// CompoundRepository handles the compound-progress point log and its
// frozen year archives.
type CompoundRepository interface {
	Point(ctx context.Context, profileID int64, date string) (*models.CompoundPoint, error)
	LatestPoint(ctx context.Context, profileID int64) (*models.CompoundPoint, error)
	PointsForYear(ctx context.Context, profileID int64, year int) ([]models.CompoundPoint, error)
	UpsertPoint(ctx context.Context, point models.CompoundPoint) error
	// InsertArchive stores the snapshot and clears the archived year's
	// points from the active set in one transaction.
	InsertArchive(ctx context.Context, archive models.CompoundArchive) (int64, error)
	Archive(ctx context.Context, profileID int64, year int) (*models.CompoundArchive, error)
	ArchivedYears(ctx context.Context, profileID int64) ([]int, error)
}

// AnchorRepository handles the per-habit anchored-streak state.
type AnchorRepository interface {
	// Get returns nil when no anchor has been stored for the habit yet.
	Get(ctx context.Context, profileID int64, habit string) (*models.Anchor, error)
	SetStartDate(ctx context.Context, profileID int64, habit, startDate string) error
	SetBestStreak(ctx context.Context, profileID int64, habit string, best int) error
}

// ProfileRepository handles profile data access.
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, username string) (*models.Profile, error)
	Delete(ctx context.Context, id int64) error
}

// BookRepository handles the book library.
type BookRepository interface {
	Get(ctx context.Context, id, profileID int64) (*models.Book, error)
	List(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	Insert(ctx context.Context, book models.Book) (int64, error)
	Update(ctx context.Context, book models.Book) error
	Delete(ctx context.Context, id, profileID int64) error
}
