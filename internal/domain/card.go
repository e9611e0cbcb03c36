package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// DefaultTheme is the grouping used for cards that declare no theme.
const DefaultTheme = "misc"

// Card represents a single question/answer study unit. Cards are
// immutable once loaded; all mutable learning state lives in
// UnitProgress, keyed by the card's ID.
type Card struct {
	ID       string   `json:"id"`
	Theme    string   `json:"theme"`
	Question string   `json:"question"`
	Answer   Answer   `json:"answer"`
	Context  string   `json:"context"`
	Hints    []string `json:"hints"`
	Link     string   `json:"link"`
}

// CardID derives the stable identifier for a card from its theme and
// question text. It is a pure function: the same theme and question
// always produce the same ID across runs and source files, so a card
// keeps its progress when it moves between files. Two cards with the
// same theme and question collide intentionally as duplicates.
func CardID(theme, question string) string {
	sum := sha1.Sum([]byte(theme + question))
	return hex.EncodeToString(sum[:])
}

// NewCard builds a Card with its derived ID. The question is trimmed
// before hashing so incidental whitespace in the source file does not
// split a card's identity. An empty theme resolves to DefaultTheme.
func NewCard(theme, question string, answer Answer) Card {
	if theme == "" {
		theme = DefaultTheme
	}
	question = strings.TrimSpace(question)
	return Card{
		ID:       CardID(theme, question),
		Theme:    theme,
		Question: question,
		Answer:   answer,
	}
}
