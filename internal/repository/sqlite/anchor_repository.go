package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
)

type anchorRepository struct {
	db *sql.DB
}

// NewAnchorRepository creates a new AnchorRepository implementation
func NewAnchorRepository(db *sql.DB) repository.AnchorRepository {
	return &anchorRepository{db: db}
}

func (r *anchorRepository) Get(ctx context.Context, profileID int64, habit string) (*models.Anchor, error) {
	log := logger.FromContext(ctx).WithPrefix("anchor_repo")

	var a models.Anchor
	err := r.db.QueryRowContext(ctx, `
SELECT profile_id, habit, start_date, best_streak, updated_at
FROM anchors
WHERE profile_id = ? AND habit = ?
`, profileID, habit).Scan(&a.ProfileID, &a.Habit, &a.StartDate, &a.BestStreak, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no anchor stored: habit=%s", habit)
			return nil, nil
		}
		log.Error("failed to get anchor: %v", err)
		return nil, err
	}
	return &a, nil
}

func (r *anchorRepository) SetStartDate(ctx context.Context, profileID int64, habit, startDate string) error {
	log := logger.FromContext(ctx).WithPrefix("anchor_repo")
	log.Debug("setting anchor: habit=%s, start_date=%s", habit, startDate)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO anchors (profile_id, habit, start_date)
VALUES (?, ?, ?)
ON CONFLICT (profile_id, habit) DO UPDATE SET
    start_date = excluded.start_date,
    updated_at = CURRENT_TIMESTAMP
`, profileID, habit, startDate)
	if err != nil {
		log.Error("failed to set anchor: %v", err)
	}
	return err
}

func (r *anchorRepository) SetBestStreak(ctx context.Context, profileID int64, habit string, best int) error {
	log := logger.FromContext(ctx).WithPrefix("anchor_repo")
	log.Debug("updating best streak: habit=%s, best=%d", habit, best)

	// The row may not exist yet when the high-water mark moves on the very
	// first read, so this is an upsert with an empty start date sentinel.
	_, err := r.db.ExecContext(ctx, `
INSERT INTO anchors (profile_id, habit, start_date, best_streak)
VALUES (?, ?, '', ?)
ON CONFLICT (profile_id, habit) DO UPDATE SET
    best_streak = excluded.best_streak,
    updated_at = CURRENT_TIMESTAMP
`, profileID, habit, best)
	if err != nil {
		log.Error("failed to update best streak: %v", err)
	}
	return err
}
