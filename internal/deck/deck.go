// Package deck is the card repository: it turns raw unit records from a
// card source into the stable, content-addressed card map consumed by
// the rest of the core. Parsing card files is not its concern; see the
// yamldir subpackage for the file-based source.
package deck

import (
	"errors"

	"github.com/mseguin/recallbox/internal/domain"
)

// ErrNoCards is returned when loading yields an empty repository. No
// sensible session exists without cards, so callers treat it as fatal.
var ErrNoCards = errors.New("no cards found")

// RawUnit is one card record as delivered by a card source. The source
// is responsible for field presence; Load assumes records are
// well-formed.
type RawUnit struct {
	Question string
	Answer   domain.Answer
	Context  string
	Theme    string
	Hint1    string
	Hint2    string
	Link     string
}

// Load builds the id-keyed card map from raw records. For each record
// the theme defaults to "misc", the question is trimmed, the ID is
// derived from theme plus question, and non-empty hints are collected
// in order. Duplicate IDs (same theme and question) silently overwrite,
// last seen wins: identical identity implies identical content.
func Load(units []RawUnit) (map[string]domain.Card, error) {
	cards := make(map[string]domain.Card, len(units))
	for _, u := range units {
		card := domain.NewCard(u.Theme, u.Question, u.Answer)
		card.Context = u.Context
		card.Link = u.Link
		for _, h := range []string{u.Hint1, u.Hint2} {
			if h != "" {
				card.Hints = append(card.Hints, h)
			}
		}
		cards[card.ID] = card
	}
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	return cards, nil
}

// Themes counts the cards per theme.
func Themes(cards map[string]domain.Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cards {
		counts[c.Theme]++
	}
	return counts
}
