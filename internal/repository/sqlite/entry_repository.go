package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
)

const entryColumns = `id, profile_id, date, weed_clean, sleep_hours, sleep_quality, energy_mood,
       meditation_minutes, reading_pages, journaling, mobility_minutes, trading_pnl,
       training_type, training_distance, training_unit, training_notes, created_at, updated_at`

type entryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new EntryRepository implementation
func NewEntryRepository(db *sql.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

func scanEntry(row interface{ Scan(...any) error }) (*models.DailyEntry, error) {
	var e models.DailyEntry
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Date, &e.WeedClean, &e.SleepHours, &e.SleepQuality, &e.Mood,
		&e.Habits.MeditationMinutes, &e.Habits.ReadingPages, &e.Habits.Journaling,
		&e.Habits.MobilityMinutes, &e.TradingPnL,
		&e.Training.Type, &e.Training.Distance, &e.Training.DistanceUnit, &e.Training.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepository) Get(ctx context.Context, profileID int64, date string) (*models.DailyEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")
	log.Debug("getting entry: profile_id=%d, date=%s", profileID, date)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, `
SELECT `+entryColumns+`
FROM daily_entries
WHERE profile_id = ? AND date = ?
`, profileID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("entry not found: date=%s", date)
		} else {
			log.Error("failed to get entry: %v", err)
		}
		return nil, err
	}
	return entry, nil
}

func (r *entryRepository) List(ctx context.Context, filter models.EntryFilter) ([]models.DailyEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")
	log.Debug("listing entries: profile_id=%d, from=%s, to=%s", filter.ProfileID, filter.From, filter.To)

	query := entryFilterQuery(sqlBuilder.Select(
		"id", "profile_id", "date", "weed_clean", "sleep_hours", "sleep_quality", "energy_mood",
		"meditation_minutes", "reading_pages", "journaling", "mobility_minutes", "trading_pnl",
		"training_type", "training_distance", "training_unit", "training_notes", "created_at", "updated_at",
	).From("daily_entries"), filter).OrderBy("date ASC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.DailyEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Error("failed to scan entry row: %v", err)
			return nil, err
		}
		entries = append(entries, *entry)
	}
	log.Debug("found %d entries", len(entries))
	return entries, rows.Err()
}

func (r *entryRepository) Count(ctx context.Context, filter models.EntryFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")

	sqlStr, args, err := entryFilterQuery(sqlBuilder.Select("COUNT(*)").From("daily_entries"), filter).ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count entries: %v", err)
		return 0, err
	}
	return count, nil
}

func entryFilterQuery(query squirrel.SelectBuilder, filter models.EntryFilter) squirrel.SelectBuilder {
	if filter.ProfileID != 0 {
		query = query.Where(squirrel.Eq{"profile_id": filter.ProfileID})
	}
	if filter.From != "" {
		query = query.Where(squirrel.GtOrEq{"date": filter.From})
	}
	if filter.To != "" {
		query = query.Where(squirrel.LtOrEq{"date": filter.To})
	}
	return query
}

func (r *entryRepository) Upsert(ctx context.Context, entry models.DailyEntry) (*models.DailyEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")
	log.Debug("upserting entry: profile_id=%d, date=%s", entry.ProfileID, entry.Date)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO daily_entries (
    profile_id, date, weed_clean, sleep_hours, sleep_quality, energy_mood,
    meditation_minutes, reading_pages, journaling, mobility_minutes, trading_pnl,
    training_type, training_distance, training_unit, training_notes
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (profile_id, date) DO UPDATE SET
    weed_clean = excluded.weed_clean,
    sleep_hours = excluded.sleep_hours,
    sleep_quality = excluded.sleep_quality,
    energy_mood = excluded.energy_mood,
    meditation_minutes = excluded.meditation_minutes,
    reading_pages = excluded.reading_pages,
    journaling = excluded.journaling,
    mobility_minutes = excluded.mobility_minutes,
    trading_pnl = excluded.trading_pnl,
    training_type = excluded.training_type,
    training_distance = excluded.training_distance,
    training_unit = excluded.training_unit,
    training_notes = excluded.training_notes,
    updated_at = CURRENT_TIMESTAMP
`,
		entry.ProfileID, entry.Date, entry.WeedClean, entry.SleepHours, entry.SleepQuality, entry.Mood,
		entry.Habits.MeditationMinutes, entry.Habits.ReadingPages, entry.Habits.Journaling,
		entry.Habits.MobilityMinutes, entry.TradingPnL,
		entry.Training.Type, entry.Training.Distance, entry.Training.DistanceUnit, entry.Training.Notes,
	)
	if err != nil {
		log.Error("failed to upsert entry: %v", err)
		return nil, err
	}

	return r.Get(ctx, entry.ProfileID, entry.Date)
}

func (r *entryRepository) Delete(ctx context.Context, profileID int64, date string) error {
	log := logger.FromContext(ctx).WithPrefix("entry_repo")
	log.Debug("deleting entry: profile_id=%d, date=%s", profileID, date)

	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_entries WHERE profile_id = ? AND date = ?`, profileID, date)
	if err != nil {
		log.Error("failed to delete entry: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
