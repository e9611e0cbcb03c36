package domain

// UnitProgress tracks the learning state for a single card. One entry
// exists per card ID for as long as the card is in the repository. The
// JSON field names match the snapshot file format.
type UnitProgress struct {
	// ConsecutiveDays counts consecutive calendar days with a correct
	// answer. A wrong answer resets it to zero; a correct answer after
	// a gap restarts it at one.
	ConsecutiveDays int `json:"consec_days"`

	// LastAnswered is the calendar day this card was last answered,
	// or zero if it has never been answered.
	LastAnswered Date `json:"last_date"`

	// Validated is true while the consecutive-day streak has reached
	// the configured threshold. It is recomputed on every answer, so a
	// broken streak drops the card back to pending.
	Validated bool `json:"validated"`

	// CorrectCount and WrongCount are lifetime answer counters.
	CorrectCount int `json:"correct"`
	WrongCount   int `json:"wrong"`
}

// ThemeStats aggregates session-level results for one theme. The flame
// streak counts consecutive fully-correct sessions, not days.
type ThemeStats struct {
	FlameStreak int `json:"flames"`
	Attempts    int `json:"attempts"`
	Correct     int `json:"correct"`
}

// AnsweredToday reports whether the unit was answered on the given day
// with a live streak. Session completion uses this to re-derive
// per-card correctness from state instead of a running tally, so a card
// answered wrong and not re-attempted counts against the session.
func (u UnitProgress) AnsweredToday(today Date) bool {
	return u.LastAnswered == today && u.ConsecutiveDays > 0
}
