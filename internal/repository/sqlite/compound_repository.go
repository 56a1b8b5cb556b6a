package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mleone/ironwill/internal/db"
	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
)

type compoundRepository struct {
	db *db.DB
}

// NewCompoundRepository creates a new CompoundRepository implementation.
// It takes the wrapped DB because archiving needs the transaction helper.
func NewCompoundRepository(database *db.DB) repository.CompoundRepository {
	return &compoundRepository{db: database}
}

func (r *compoundRepository) Point(ctx context.Context, profileID int64, date string) (*models.CompoundPoint, error) {
	log := logger.FromContext(ctx).WithPrefix("compound_repo")

	var p models.CompoundPoint
	err := r.db.QueryRowContext(ctx, `
SELECT profile_id, date, daily_xp, multiplier, compound_score, updated_at
FROM compound_points
WHERE profile_id = ? AND date = ?
`, profileID, date).Scan(&p.ProfileID, &p.Date, &p.DailyXP, &p.Multiplier, &p.CompoundScore, &p.UpdatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error("failed to get compound point: %v", err)
		}
		return nil, err
	}
	return &p, nil
}

func (r *compoundRepository) LatestPoint(ctx context.Context, profileID int64) (*models.CompoundPoint, error) {
	log := logger.FromContext(ctx).WithPrefix("compound_repo")

	var p models.CompoundPoint
	err := r.db.QueryRowContext(ctx, `
SELECT profile_id, date, daily_xp, multiplier, compound_score, updated_at
FROM compound_points
WHERE profile_id = ?
ORDER BY date DESC
LIMIT 1
`, profileID).Scan(&p.ProfileID, &p.Date, &p.DailyXP, &p.Multiplier, &p.CompoundScore, &p.UpdatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error("failed to get latest compound point: %v", err)
		}
		return nil, err
	}
	return &p, nil
}

func (r *compoundRepository) PointsForYear(ctx context.Context, profileID int64, year int) ([]models.CompoundPoint, error) {
	log := logger.FromContext(ctx).WithPrefix("compound_repo")
	log.Debug("fetching compound points: profile_id=%d, year=%d", profileID, year)

	rows, err := r.db.QueryContext(ctx, `
SELECT profile_id, date, daily_xp, multiplier, compound_score, updated_at
FROM compound_points
WHERE profile_id = ? AND date LIKE ?
ORDER BY date ASC
`, profileID, fmt.Sprintf("%04d-%%", year))
	if err != nil {
		log.Error("failed to query compound points: %v", err)
		return nil, err
	}
	defer rows.Close()

	var points []models.CompoundPoint
	for rows.Next() {
		var p models.CompoundPoint
		if err := rows.Scan(&p.ProfileID, &p.Date, &p.DailyXP, &p.Multiplier, &p.CompoundScore, &p.UpdatedAt); err != nil {
			log.Error("failed to scan compound point row: %v", err)
			return nil, err
		}
		points = append(points, p)
	}
	log.Debug("found %d compound points", len(points))
	return points, rows.Err()
}

func (r *compoundRepository) UpsertPoint(ctx context.Context, point models.CompoundPoint) error {
	log := logger.FromContext(ctx).WithPrefix("compound_repo")
	log.Debug("upserting compound point: profile_id=%d, date=%s, score=%f", point.ProfileID, point.Date, point.CompoundScore)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO compound_points (profile_id, date, daily_xp, multiplier, compound_score)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (profile_id, date) DO UPDATE SET
    daily_xp = excluded.daily_xp,
    multiplier = excluded.multiplier,
    compound_score = excluded.compound_score,
    updated_at = CURRENT_TIMESTAMP
`, point.ProfileID, point.Date, point.DailyXP, point.Multiplier, point.CompoundScore)
	if err != nil {
		log.Error("failed to upsert compound point: %v", err)
	}
	return err
}

func (r *compoundRepository) InsertArchive(ctx context.Context, archive models.CompoundArchive) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("compound_repo")
	log.Debug("archiving year: profile_id=%d, year=%d, days=%d", archive.ProfileID, archive.Year, archive.DaysTracked)

	pointsJSON, err := json.Marshal(archive.Points)
	if err != nil {
		return 0, fmt.Errorf("marshal archive points: %w", err)
	}

	var id int64
	err = db.Tx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO compound_archives (profile_id, year, final_score, days_tracked, points)
VALUES (?, ?, ?, ?, ?)
`, archive.ProfileID, archive.Year, archive.FinalScore, archive.DaysTracked, string(pointsJSON))
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
DELETE FROM compound_points WHERE profile_id = ? AND date LIKE ?
`, archive.ProfileID, fmt.Sprintf("%04d-%%", archive.Year))
		return err
	})
	if err != nil {
		log.Error("failed to insert archive: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *compoundRepository) Archive(ctx context.Context, profileID int64, year int) (*models.CompoundArchive, error) {
	log := logger.FromContext(ctx).WithPrefix("compound_repo")

	var a models.CompoundArchive
	var pointsJSON string
	err := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, year, final_score, days_tracked, points, archived_at
FROM compound_archives
WHERE profile_id = ? AND year = ?
`, profileID, year).Scan(&a.ID, &a.ProfileID, &a.Year, &a.FinalScore, &a.DaysTracked, &pointsJSON, &a.ArchivedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error("failed to get archive: %v", err)
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(pointsJSON), &a.Points); err != nil {
		log.Error("corrupt archive points for year %d: %v", year, err)
		return nil, fmt.Errorf("unmarshal archive points: %w", err)
	}
	return &a, nil
}

func (r *compoundRepository) ArchivedYears(ctx context.Context, profileID int64) ([]int, error) {
	log := logger.FromContext(ctx).WithPrefix("compound_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT year FROM compound_archives WHERE profile_id = ? ORDER BY year DESC
`, profileID)
	if err != nil {
		log.Error("failed to list archived years: %v", err)
		return nil, err
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}
