// Package streak implements the consecutive-day validation rule: the
// arithmetic that updates a card's learning state after each graded
// answer and decides when a card counts as mastered.
//
// The rule is a fixed counter, deliberately not an adaptive interval
// scheduler: a correct answer on the day after the previous correct
// answer extends the streak, a correct answer after a gap restarts it
// at one, and a wrong answer zeroes it. Validation is recomputed from
// the streak on every update, so a lapse after validation returns the
// card to the pending bucket.
package streak

import "github.com/mseguin/recallbox/internal/domain"

// Service applies the streak update rule to unit progress.
type Service interface {
	// Apply returns the progress that results from grading an answer
	// on the given day. It never mutates prev.
	Apply(prev domain.UnitProgress, correct bool, today domain.Date) domain.UnitProgress
}

// defaultService is the standard implementation of Service.
type defaultService struct {
	params Params
}

// NewDefaultService creates a streak service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: DefaultParams()}
}

// NewService creates a streak service with the given parameters.
func NewService(params Params) Service {
	return &defaultService{params: params}
}

// Apply implements the update rule invoked once per answer submission:
//
//   - the lifetime counter for the outcome is incremented
//   - correct: the streak extends by one if the card was last answered
//     yesterday, otherwise restarts at one
//   - wrong: the streak resets to zero
//   - validated is recomputed as streak >= ValidStreakDays
//   - the last-answered day becomes today
//
// Yesterday means today minus one calendar day, not the previous
// session: answering correctly on two non-consecutive days restarts
// the streak rather than extending it.
func (s *defaultService) Apply(
	prev domain.UnitProgress,
	correct bool,
	today domain.Date,
) domain.UnitProgress {
	next := prev
	if correct {
		next.CorrectCount++
		if !prev.LastAnswered.IsZero() && prev.LastAnswered == today.Prev() {
			next.ConsecutiveDays = prev.ConsecutiveDays + 1
		} else {
			next.ConsecutiveDays = 1
		}
	} else {
		next.WrongCount++
		next.ConsecutiveDays = 0
	}
	next.Validated = next.ConsecutiveDays >= s.params.ValidStreakDays
	next.LastAnswered = today
	return next
}
