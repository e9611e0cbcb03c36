package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mseguin/recallbox/internal/domain"
)

func TestNewInitializesUnseenIDs(t *testing.T) {
	snap := domain.NewSnapshot()
	snap.Units["a"] = domain.UnitProgress{ConsecutiveDays: 2, Validated: false}

	s := New([]string{"a", "b"}, snap)

	assert.Equal(t, 2, s.Unit("a").ConsecutiveDays, "persisted state carries over")
	assert.Equal(t, domain.UnitProgress{}, s.Unit("b"), "new card starts fresh")
}

func TestNewKeepsOrphanedUnits(t *testing.T) {
	snap := domain.NewSnapshot()
	snap.Units["gone"] = domain.UnitProgress{CorrectCount: 7}

	s := New([]string{"a"}, snap)

	out := s.Snapshot()
	assert.Equal(t, 7, out.Units["gone"].CorrectCount,
		"progress for a temporarily removed card survives a save cycle")
}

func TestThemeAndPoolCarryOver(t *testing.T) {
	day := domain.Date("2026-08-26")
	snap := domain.NewSnapshot()
	snap.ThemeStats["go"] = domain.ThemeStats{FlameStreak: 4, Attempts: 20, Correct: 18}
	snap.DailyPools[day] = map[string][]string{"go": {"a", "b"}}

	s := New([]string{"a", "b"}, snap)

	assert.Equal(t, 4, s.Theme("go").FlameStreak)
	ids, ok := s.Pool(day, "go")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, ids)

	_, ok = s.Pool(day, "rust")
	assert.False(t, ok)
	_, ok = s.Pool(domain.Date("2026-08-27"), "go")
	assert.False(t, ok)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	day := domain.Date("2026-08-26")
	s := New([]string{"a", "b"}, domain.NewSnapshot())
	s.SetPool(day, "go", []string{"a", "b"})

	snap := s.Snapshot()
	snap.Units["a"] = domain.UnitProgress{ConsecutiveDays: 99}
	snap.DailyPools[day]["go"][0] = "tampered"

	assert.Equal(t, 0, s.Unit("a").ConsecutiveDays)
	ids, _ := s.Pool(day, "go")
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestPoolReturnsCopy(t *testing.T) {
	day := domain.Date("2026-08-26")
	s := New([]string{"a", "b"}, domain.NewSnapshot())
	s.SetPool(day, "go", []string{"a", "b"})

	ids, _ := s.Pool(day, "go")
	ids[0] = "tampered"

	again, _ := s.Pool(day, "go")
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestMutators(t *testing.T) {
	s := New([]string{"a"}, domain.NewSnapshot())

	s.SetUnit("a", domain.UnitProgress{ConsecutiveDays: 1, Validated: false})
	assert.Equal(t, 1, s.Unit("a").ConsecutiveDays)

	s.SetTheme("go", domain.ThemeStats{FlameStreak: 1, Attempts: 3, Correct: 3})
	assert.Equal(t, 1, s.Theme("go").FlameStreak)
}
