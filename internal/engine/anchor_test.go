package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mleone/ironwill/internal/engine"
)

func TestAnchoredStreak_ZeroOnFalse(t *testing.T) {
	today := day("2026-02-10")
	anchors := []time.Time{
		day("2025-12-09"),
		day("2026-02-10"),
		day("2026-02-11"),
	}
	for _, anchor := range anchors {
		assert.Equal(t, 0, engine.AnchoredStreak(anchor, today, false))
	}
}

func TestAnchoredStreak_InclusiveDayCount(t *testing.T) {
	today := day("2026-02-10")

	assert.Equal(t, 1, engine.AnchoredStreak(day("2026-02-10"), today, true), "anchor today is day 1")
	assert.Equal(t, 10, engine.AnchoredStreak(day("2026-02-01"), today, true))
	assert.Equal(t, 64, engine.AnchoredStreak(day("2025-12-09"), today, true))
}

func TestAnchoredStreak_FutureAnchorIsZero(t *testing.T) {
	today := day("2026-02-10")
	// A broken streak parks the anchor on tomorrow; until then the streak
	// stays at zero even with today's flag on.
	assert.Equal(t, 0, engine.AnchoredStreak(day("2026-02-11"), today, true))
}

func TestBreakAnchor(t *testing.T) {
	assert.Equal(t, day("2026-02-11"), engine.BreakAnchor(day("2026-02-10")))
}

func TestRestoreAnchor(t *testing.T) {
	minStart := day("2026-01-01")

	assert.Equal(t, day("2026-02-10"), engine.RestoreAnchor(day("2026-02-10"), minStart))
	assert.Equal(t, minStart, engine.RestoreAnchor(day("2025-12-20"), minStart), "clamped to the minimum start")
	assert.Equal(t, day("2025-12-20"), engine.RestoreAnchor(day("2025-12-20"), time.Time{}), "no minimum configured")
}

func TestBreakThenRestoreRoundTrip(t *testing.T) {
	today := day("2026-02-10")

	broken := engine.BreakAnchor(today)
	assert.Equal(t, 0, engine.AnchoredStreak(broken, today, true))

	restored := engine.RestoreAnchor(today, day("2026-01-01"))
	assert.Equal(t, 1, engine.AnchoredStreak(restored, today, true))
}
