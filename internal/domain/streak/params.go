package streak

import "errors"

// ErrInvalidParams is returned when params fail validation.
var ErrInvalidParams = errors.New("valid streak days must be at least 1")

// Params configures the validation rule.
type Params struct {
	// ValidStreakDays is the consecutive-day correct streak a card
	// must reach to be considered validated (mastered).
	ValidStreakDays int
}

// DefaultParams returns the standard configuration: three consecutive
// correct days validate a card.
func DefaultParams() Params {
	return Params{ValidStreakDays: 3}
}

// Validate checks that the params are usable.
func (p Params) Validate() error {
	if p.ValidStreakDays < 1 {
		return ErrInvalidParams
	}
	return nil
}
