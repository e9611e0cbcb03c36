package domain

import "strings"

// AnswerKind discriminates the two accepted-answer shapes a card may
// declare in its source file.
type AnswerKind int

const (
	// AnswerSingle means the card has exactly one accepted answer.
	AnswerSingle AnswerKind = iota

	// AnswerMultiple means the card lists several acceptable answers
	// and the user only needs to match one of them.
	AnswerMultiple
)

// Answer holds the accepted answer forms for a card. The scalar-or-list
// shape of the source data is resolved once at load time into this
// tagged variant so grading never has to re-inspect raw data.
type Answer struct {
	Kind  AnswerKind `json:"kind"`
	Forms []string   `json:"forms"`
}

// NewAnswer returns a single-form Answer.
func NewAnswer(form string) Answer {
	return Answer{Kind: AnswerSingle, Forms: []string{form}}
}

// NewAnswerSet returns a multiple-choice Answer accepting any of the
// given forms.
func NewAnswerSet(forms []string) Answer {
	return Answer{Kind: AnswerMultiple, Forms: forms}
}

// Matches grades a free-text answer against the accepted forms. The
// input is trimmed and lowercased. A single accepted form is compared
// trimmed and lowercased; members of an answer set are lowercased but
// otherwise compared as written. No partial credit, no fuzzy matching.
func (a Answer) Matches(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	if a.Kind == AnswerMultiple {
		for _, form := range a.Forms {
			if input == strings.ToLower(form) {
				return true
			}
		}
		return false
	}
	if len(a.Forms) == 0 {
		return false
	}
	return input == strings.ToLower(strings.TrimSpace(a.Forms[0]))
}

// Display renders the accepted answer(s) for showing after a wrong
// grade. Multiple forms are joined so the user sees every alternative.
func (a Answer) Display() string {
	return strings.Join(a.Forms, " / ")
}
