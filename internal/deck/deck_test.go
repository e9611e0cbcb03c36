package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mseguin/recallbox/internal/domain"
)

func TestLoad(t *testing.T) {
	units := []RawUnit{
		{
			Question: "  What is a goroutine?  ",
			Answer:   domain.NewAnswer("a lightweight thread"),
			Theme:    "go",
			Hint1:    "starts with the go keyword",
			Context:  "Scheduled by the runtime, not the OS.",
			Link:     "https://go.dev/tour/concurrency/1",
		},
		{
			Question: "Capital of France?",
			Answer:   domain.NewAnswerSet([]string{"Paris", "paris"}),
			Hint2:    "city of light",
		},
	}

	cards, err := Load(units)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	first := cards[domain.CardID("go", "What is a goroutine?")]
	assert.Equal(t, "go", first.Theme)
	assert.Equal(t, "What is a goroutine?", first.Question)
	assert.Equal(t, []string{"starts with the go keyword"}, first.Hints)
	assert.Equal(t, "Scheduled by the runtime, not the OS.", first.Context)
	assert.Equal(t, "https://go.dev/tour/concurrency/1", first.Link)

	second := cards[domain.CardID(domain.DefaultTheme, "Capital of France?")]
	assert.Equal(t, domain.DefaultTheme, second.Theme, "missing theme defaults to misc")
	assert.Equal(t, []string{"city of light"}, second.Hints, "empty hint1 is skipped, order kept")
}

func TestLoadHintOrder(t *testing.T) {
	cards, err := Load([]RawUnit{{
		Question: "q",
		Answer:   domain.NewAnswer("a"),
		Hint1:    "first",
		Hint2:    "second",
	}})
	require.NoError(t, err)
	card := cards[domain.CardID(domain.DefaultTheme, "q")]
	assert.Equal(t, []string{"first", "second"}, card.Hints)
}

func TestLoadDuplicateLastWins(t *testing.T) {
	cards, err := Load([]RawUnit{
		{Question: "q", Theme: "go", Answer: domain.NewAnswer("old"), Context: "old"},
		{Question: "q", Theme: "go", Answer: domain.NewAnswer("new"), Context: "new"},
	})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "new", cards[domain.CardID("go", "q")].Context)
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(nil)
	require.ErrorIs(t, err, ErrNoCards)
}

func TestThemes(t *testing.T) {
	cards, err := Load([]RawUnit{
		{Question: "a", Theme: "go", Answer: domain.NewAnswer("x")},
		{Question: "b", Theme: "go", Answer: domain.NewAnswer("x")},
		{Question: "c", Answer: domain.NewAnswer("x")},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"go": 2, domain.DefaultTheme: 1}, Themes(cards))
}
