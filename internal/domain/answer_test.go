package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerMatches(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		input  string
		want   bool
	}{
		{
			name:   "single exact",
			answer: NewAnswer("cat"),
			input:  "cat",
			want:   true,
		},
		{
			name:   "single case-insensitive",
			answer: NewAnswer("cat"),
			input:  "Cat",
			want:   true,
		},
		{
			name:   "single trims input and form",
			answer: NewAnswer(" Paris "),
			input:  "  paris",
			want:   true,
		},
		{
			name:   "single mismatch",
			answer: NewAnswer("42"),
			input:  "43",
			want:   false,
		},
		{
			name:   "set matches any member",
			answer: NewAnswerSet([]string{"Paris", "paris "}),
			input:  "  PARIS",
			want:   true,
		},
		{
			name:   "set members are not trimmed",
			answer: NewAnswerSet([]string{"paris "}),
			input:  "paris",
			want:   false,
		},
		{
			name:   "set mismatch",
			answer: NewAnswerSet([]string{"Lyon", "Marseille"}),
			input:  "Paris",
			want:   false,
		},
		{
			name:   "no partial credit",
			answer: NewAnswer("binary search"),
			input:  "binary",
			want:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.answer.Matches(tc.input))
		})
	}
}

func TestAnswerDisplay(t *testing.T) {
	assert.Equal(t, "cat", NewAnswer("cat").Display())
	assert.Equal(t, "cat / feline", NewAnswerSet([]string{"cat", "feline"}).Display())
}
