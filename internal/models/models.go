package models

import "time"

// DateLayout is the canonical calendar-date format used for storage keys
// and URL parameters.
const DateLayout = "2006-01-02"

// FormatDate renders t as a YYYY-MM-DD key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD key into a midnight UTC time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Habits holds the raw daily values for the four XP-scored habits.
type Habits struct {
	MeditationMinutes int  `json:"meditation_minutes"`
	ReadingPages      int  `json:"reading_pages"`
	Journaling        bool `json:"journaling"`
	MobilityMinutes   int  `json:"mobility_minutes"`
}

// Training holds the day's workout entry. Distance is stored in the unit
// the user entered; stats convert to miles.
type Training struct {
	Type         string  `json:"type"` // swim, bike, run, strength, rest
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distance_unit"` // miles or meters
	Notes        string  `json:"notes"`
}

// DailyEntry is one tracked day, upserted by (profile, date).
// WeedClean defaults to true: a day with no entry, or an entry that never
// touched the toggle, counts as clean.
type DailyEntry struct {
	ID           int64     `json:"id"`
	ProfileID    int64     `json:"profile_id"`
	Date         string    `json:"date"`
	WeedClean    bool      `json:"weed_clean"`
	SleepHours   float64   `json:"sleep_hours"`
	SleepQuality int       `json:"sleep_quality"`
	Mood         int       `json:"mood"`
	Habits       Habits    `json:"habits"`
	TradingPnL   float64   `json:"trading_pnl"`
	Training     Training  `json:"training"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EntryFilter struct {
	ProfileID int64
	From      string // inclusive YYYY-MM-DD, optional
	To        string // inclusive YYYY-MM-DD, optional
	Limit     int
	Offset    int
}

// StreakResult is derived, never stored.
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// HabitStats summarizes one habit across the full entry history.
type HabitStats struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
	TotalXP int `json:"total_xp"`
}

// CompoundPoint is one day of the compound-progress log.
type CompoundPoint struct {
	ProfileID     int64     `json:"-"`
	Date          string    `json:"date"`
	DailyXP       int       `json:"daily_xp"`
	Multiplier    float64   `json:"multiplier"`
	CompoundScore float64   `json:"compound_score"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CompoundArchive is a frozen snapshot of one year's compound series.
type CompoundArchive struct {
	ID          int64           `json:"id"`
	ProfileID   int64           `json:"-"`
	Year        int             `json:"year"`
	FinalScore  float64         `json:"final_score"`
	DaysTracked int             `json:"days_tracked"`
	Points      []CompoundPoint `json:"points"`
	ArchivedAt  time.Time       `json:"archived_at"`
}

// CurvePoint is one sample of a fixed-rate reference curve.
type CurvePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Anchor is the mutable start date an anchored streak is measured from,
// one row per (profile, habit).
type Anchor struct {
	ProfileID  int64     `json:"-"`
	Habit      string    `json:"habit"`
	StartDate  string    `json:"start_date"`
	BestStreak int       `json:"best_streak"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Book statuses.
const (
	BookStatusActive    = "active"
	BookStatusCompleted = "completed"
	BookStatusAbandoned = "abandoned"
)

type Book struct {
	ID            int64      `json:"id"`
	ProfileID     int64      `json:"-"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	TotalPages    int        `json:"total_pages"`
	PagesRead     int        `json:"pages_read"`
	Status        string     `json:"status"`
	StartedDate   time.Time  `json:"started_date"`
	CompletedDate *time.Time `json:"completed_date"`
}

type BookFilter struct {
	ProfileID     int64
	Status        string // optional
	CompletedYear int    // optional, only meaningful with status=completed
}
