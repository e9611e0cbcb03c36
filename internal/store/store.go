// Package store holds the in-memory progress state: per-card learning
// progress, per-theme aggregates, and the per-day pool cache. The store
// exclusively owns all mutable state; cards are read-only input. It is
// persisted whole as a snapshot through a SnapshotRepository.
package store

import (
	"context"

	"github.com/mseguin/recallbox/internal/domain"
)

// SnapshotRepository abstracts the persistence backend. Load reports
// ok=false when no snapshot exists yet, which is not an error: a fresh
// store starts empty.
type SnapshotRepository interface {
	Load(ctx context.Context) (domain.Snapshot, bool, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}

// Store is the single owner of mutable study state. It is not safe for
// concurrent use; the tool is single-user and every mutation happens in
// direct response to one user action.
type Store struct {
	units  map[string]domain.UnitProgress
	themes map[string]domain.ThemeStats
	pools  map[domain.Date]map[string][]string
}

// New builds a store for the given card IDs, carrying over any state
// from a persisted snapshot. Card IDs absent from the snapshot get
// fresh zero-value progress; theme stats and daily pools are carried
// over unchanged. Snapshot entries for IDs no longer in the repository
// are kept too, so temporarily removing a card file loses nothing.
func New(cardIDs []string, snap domain.Snapshot) *Store {
	s := &Store{
		units:  make(map[string]domain.UnitProgress, len(cardIDs)),
		themes: make(map[string]domain.ThemeStats),
		pools:  make(map[domain.Date]map[string][]string),
	}
	for id, u := range snap.Units {
		s.units[id] = u
	}
	for _, id := range cardIDs {
		if _, ok := s.units[id]; !ok {
			s.units[id] = domain.UnitProgress{}
		}
	}
	for theme, ts := range snap.ThemeStats {
		s.themes[theme] = ts
	}
	for day, byTheme := range snap.DailyPools {
		pools := make(map[string][]string, len(byTheme))
		for theme, ids := range byTheme {
			pools[theme] = append([]string(nil), ids...)
		}
		s.pools[day] = pools
	}
	return s
}

// Unit returns the progress for a card ID, zero-value if unknown.
func (s *Store) Unit(id string) domain.UnitProgress {
	return s.units[id]
}

// SetUnit records updated progress for a card ID. This is the only way
// unit state changes; nothing is ever recomputed from history.
func (s *Store) SetUnit(id string, u domain.UnitProgress) {
	s.units[id] = u
}

// Theme returns the aggregate stats for a theme, zero-value if the
// theme has never completed a session.
func (s *Store) Theme(name string) domain.ThemeStats {
	return s.themes[name]
}

// SetTheme records updated aggregate stats for a theme.
func (s *Store) SetTheme(name string, ts domain.ThemeStats) {
	s.themes[name] = ts
}

// Pool returns the cached pool for a day and theme, if one was already
// selected.
func (s *Store) Pool(day domain.Date, theme string) ([]string, bool) {
	byTheme, ok := s.pools[day]
	if !ok {
		return nil, false
	}
	ids, ok := byTheme[theme]
	if !ok {
		return nil, false
	}
	return append([]string(nil), ids...), true
}

// SetPool caches the selected pool for a day and theme. Once cached the
// pool never changes for that day, even if cards or config do.
func (s *Store) SetPool(day domain.Date, theme string, ids []string) {
	byTheme, ok := s.pools[day]
	if !ok {
		byTheme = make(map[string][]string)
		s.pools[day] = byTheme
	}
	byTheme[theme] = append([]string(nil), ids...)
}

// Snapshot produces a deep copy of the full state for persistence.
func (s *Store) Snapshot() domain.Snapshot {
	snap := domain.NewSnapshot()
	for id, u := range s.units {
		snap.Units[id] = u
	}
	for theme, ts := range s.themes {
		snap.ThemeStats[theme] = ts
	}
	for day, byTheme := range s.pools {
		pools := make(map[string][]string, len(byTheme))
		for theme, ids := range byTheme {
			pools[theme] = append([]string(nil), ids...)
		}
		snap.DailyPools[day] = pools
	}
	return snap
}
