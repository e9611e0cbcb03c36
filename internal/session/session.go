// Package session drives one study session over a daily pool: it
// presents cards, reveals hints, grades answers, updates progress, and
// closes out the theme's session aggregates. Both front ends drive this
// engine and only render what it hands back.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/domain/streak"
	"github.com/mseguin/recallbox/internal/pool"
	"github.com/mseguin/recallbox/internal/store"
)

// Saver persists the store snapshot. Session completion and early quit
// both save immediately so at most the in-progress card is lost.
type Saver interface {
	Save(ctx context.Context, snap domain.Snapshot) error
}

// Result is what grading one answer hands back to the front end.
type Result struct {
	Correct bool
	// Answer is the display form of the accepted answer(s), shown on a
	// wrong grade.
	Answer  string
	Context string
	Link    string
}

// Session is the state machine for one run through a theme's daily
// pool. Per card it moves Presenting -> (hint reveal)* -> Graded ->
// next card; the front end calls Submit once, then Advance.
type Session struct {
	theme  string
	day    domain.Date
	cards  map[string]domain.Card
	store  *store.Store
	streak streak.Service
	saver  Saver
	logger *slog.Logger

	pool     []string
	index    int
	revealed int
	graded   bool
	finished bool
}

// New selects (or re-reads) the day's pool for the theme and starts a
// session at its first card.
func New(
	theme string,
	day domain.Date,
	cards map[string]domain.Card,
	st *store.Store,
	selector *pool.Selector,
	streakSvc streak.Service,
	saver Saver,
	logger *slog.Logger,
) *Session {
	ids := selector.Select(theme, day, cards, st)
	logger.Debug("session started",
		slog.String("theme", theme),
		slog.String("day", string(day)),
		slog.Int("pool_size", len(ids)))
	return &Session{
		theme:  theme,
		day:    day,
		cards:  cards,
		store:  st,
		streak: streakSvc,
		saver:  saver,
		logger: logger.With(slog.String("component", "session")),
		pool:   ids,
	}
}

// Theme returns the theme being studied.
func (s *Session) Theme() string { return s.theme }

// Size returns the pool length.
func (s *Session) Size() int { return len(s.pool) }

// Index returns the zero-based position of the current card.
func (s *Session) Index() int { return s.index }

// Pool returns the ordered card IDs of this session's pool.
func (s *Session) Pool() []string { return append([]string(nil), s.pool...) }

// Finished reports whether every card in the pool has been advanced
// past and the theme aggregates were closed out.
func (s *Session) Finished() bool { return s.finished }

// Current returns the card being presented, or false when the session
// is over or the pool was empty.
func (s *Session) Current() (domain.Card, bool) {
	if s.finished || s.index >= len(s.pool) {
		return domain.Card{}, false
	}
	return s.cards[s.pool[s.index]], true
}

// RevealedHints returns the hints revealed so far for the current card,
// in order.
func (s *Session) RevealedHints() []string {
	card, ok := s.Current()
	if !ok {
		return nil
	}
	return card.Hints[:s.revealed]
}

// RevealHint reveals the next hint for the current card and returns it.
// When no hint remains it reports false; that is informational, not an
// error, and the card stays in the presenting state either way.
func (s *Session) RevealHint() (string, bool) {
	card, ok := s.Current()
	if !ok || s.graded || s.revealed >= len(card.Hints) {
		return "", false
	}
	hint := card.Hints[s.revealed]
	s.revealed++
	return hint, true
}

// Submit grades the answer for the current card, applies the streak
// update to its progress, and moves the card to the graded state. A
// second submission for the same card is rejected.
func (s *Session) Submit(input string) (Result, error) {
	card, ok := s.Current()
	if !ok {
		return Result{}, fmt.Errorf("no card to answer")
	}
	if s.graded {
		return Result{}, fmt.Errorf("card already graded")
	}

	correct := card.Answer.Matches(input)
	updated := s.streak.Apply(s.store.Unit(card.ID), correct, s.day)
	s.store.SetUnit(card.ID, updated)
	s.graded = true

	s.logger.Debug("answer graded",
		slog.String("card_id", card.ID),
		slog.Bool("correct", correct),
		slog.Int("consecutive_days", updated.ConsecutiveDays),
		slog.Bool("validated", updated.Validated))

	return Result{
		Correct: correct,
		Answer:  card.Answer.Display(),
		Context: card.Context,
		Link:    card.Link,
	}, nil
}

// Advance acknowledges the graded card and moves to the next pool
// position. Passing the last card completes the session: the theme
// aggregates are updated and the store is persisted.
func (s *Session) Advance(ctx context.Context) error {
	if s.finished || s.index >= len(s.pool) {
		return nil
	}
	if !s.graded {
		return fmt.Errorf("current card not graded yet")
	}
	s.index++
	s.revealed = 0
	s.graded = false
	if s.index >= len(s.pool) {
		return s.finish(ctx)
	}
	return nil
}

// Quit ends the session early, persisting immediately. Unshown cards
// stay in the cached pool and can be picked up in a new session the
// same day; theme aggregates are not touched.
func (s *Session) Quit(ctx context.Context) error {
	s.finished = true
	if err := s.saver.Save(ctx, s.store.Snapshot()); err != nil {
		return fmt.Errorf("saving on quit: %w", err)
	}
	return nil
}

// finish closes out the session: correctness is re-derived per card
// from store state (answered today with a live streak), not from a
// running tally, so a card answered wrong and never re-attempted breaks
// the fully-correct condition.
func (s *Session) finish(ctx context.Context) error {
	s.finished = true

	correctAll := true
	correctCount := 0
	for _, id := range s.pool {
		if s.store.Unit(id).AnsweredToday(s.day) {
			correctCount++
		} else {
			correctAll = false
		}
	}

	ts := s.store.Theme(s.theme)
	ts.Attempts += len(s.pool)
	ts.Correct += correctCount
	if correctAll {
		ts.FlameStreak++
	} else {
		ts.FlameStreak = 0
	}
	s.store.SetTheme(s.theme, ts)

	s.logger.Info("session complete",
		slog.String("theme", s.theme),
		slog.Int("pool_size", len(s.pool)),
		slog.Int("correct", correctCount),
		slog.Int("flame_streak", ts.FlameStreak))

	if err := s.saver.Save(ctx, s.store.Snapshot()); err != nil {
		return fmt.Errorf("saving on completion: %w", err)
	}
	return nil
}
