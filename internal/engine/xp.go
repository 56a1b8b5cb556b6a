package engine

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mleone/ironwill/internal/models"
)

// Tracked habit names. DailyXP sums exactly these four; trading, sleep and
// mood are recorded but never scored.
const (
	HabitMeditation = "meditation"
	HabitReading    = "reading"
	HabitJournaling = "journaling"
	HabitMobility   = "mobility"
)

//go:embed tiers.yaml
var defaultTiersYAML []byte

// Tier awards XP when the day's value reaches Min.
type Tier struct {
	Min int `yaml:"min" json:"min"`
	XP  int `yaml:"xp" json:"xp"`
}

// TierTable maps habit names to their ascending tier lists.
type TierTable struct {
	MaxDailyXP int               `yaml:"max_daily_xp" json:"max_daily_xp"`
	Habits     map[string][]Tier `yaml:"habits" json:"habits"`
}

// LoadTiers reads a tier table from YAML and normalizes tier order.
func LoadTiers(r io.Reader) (TierTable, error) {
	var t TierTable
	data, err := io.ReadAll(r)
	if err != nil {
		return t, fmt.Errorf("read tiers: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tiers: %w", err)
	}
	if t.MaxDailyXP <= 0 {
		return t, fmt.Errorf("invalid tiers: max_daily_xp must be positive, got %d", t.MaxDailyXP)
	}
	for habit, tiers := range t.Habits {
		sort.Slice(tiers, func(i, j int) bool { return tiers[i].Min < tiers[j].Min })
		t.Habits[habit] = tiers
	}
	return t, nil
}

// LoadTiersFile reads a tier table from disk.
func LoadTiersFile(path string) (TierTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return TierTable{}, fmt.Errorf("open tiers file: %w", err)
	}
	defer f.Close()
	return LoadTiers(f)
}

// DefaultTiers returns the embedded tier table. The embedded document is
// validated by tests, so a parse failure here is a programming error.
func DefaultTiers() TierTable {
	var t TierTable
	if err := yaml.Unmarshal(defaultTiersYAML, &t); err != nil {
		panic(fmt.Sprintf("embedded tiers.yaml is invalid: %v", err))
	}
	return t
}

// HabitXP returns the award of the highest tier whose minimum the value
// meets. Unknown habits, zero and negative values award 0; there is no error
// path.
func (t TierTable) HabitXP(habit string, value int) int {
	if value <= 0 {
		return 0
	}
	xp := 0
	for _, tier := range t.Habits[habit] {
		if value >= tier.Min {
			xp = tier.XP
		}
	}
	return xp
}

// DailyXP sums the per-habit awards for the four tracked habits.
// Journaling is boolean and maps to 1/0 before lookup.
func (t TierTable) DailyXP(h models.Habits) int {
	journaling := 0
	if h.Journaling {
		journaling = 1
	}
	return t.HabitXP(HabitMeditation, h.MeditationMinutes) +
		t.HabitXP(HabitReading, h.ReadingPages) +
		t.HabitXP(HabitJournaling, journaling) +
		t.HabitXP(HabitMobility, h.MobilityMinutes)
}

// MaxHabitXP returns the top award for a habit, used for progress bars.
func (t TierTable) MaxHabitXP(habit string) int {
	tiers := t.Habits[habit]
	if len(tiers) == 0 {
		return 0
	}
	return tiers[len(tiers)-1].XP
}

// HabitValue extracts the scoreable value of one habit from an entry.
func HabitValue(h models.Habits, habit string) int {
	switch habit {
	case HabitMeditation:
		return h.MeditationMinutes
	case HabitReading:
		return h.ReadingPages
	case HabitJournaling:
		if h.Journaling {
			return 1
		}
		return 0
	case HabitMobility:
		return h.MobilityMinutes
	default:
		return 0
	}
}
