package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/store"
)

func fixture(t *testing.T) (map[string]domain.Card, *store.Store) {
	t.Helper()
	cards := make(map[string]domain.Card)
	var ids []string
	add := func(theme string, n int) {
		for i := 0; i < n; i++ {
			c := domain.NewCard(theme, fmt.Sprintf("%s %d", theme, i), domain.NewAnswer("a"))
			cards[c.ID] = c
			ids = append(ids, c.ID)
		}
	}
	add("go", 18)
	add("sql", 2)
	return cards, store.New(ids, domain.NewSnapshot())
}

func validate(st *store.Store, cards map[string]domain.Card, theme string, n int) {
	for id, c := range cards {
		if n == 0 {
			return
		}
		if c.Theme == theme {
			st.SetUnit(id, domain.UnitProgress{ConsecutiveDays: 3, Validated: true})
			n--
		}
	}
}

func TestForThemeTruncatesPercent(t *testing.T) {
	cards, st := fixture(t)
	validate(st, cards, "go", 17)

	p := ForTheme("go", cards, st)

	assert.Equal(t, 17, p.Validated)
	assert.Equal(t, 18, p.Total)
	assert.Equal(t, 94, p.Percent, "94.4% truncates, never rounds up")
}

func TestForThemeIncludesFlames(t *testing.T) {
	cards, st := fixture(t)
	st.SetTheme("go", domain.ThemeStats{FlameStreak: 3})

	assert.Equal(t, 3, ForTheme("go", cards, st).FlameStreak)
}

func TestAllThemesSorted(t *testing.T) {
	cards, st := fixture(t)

	lines := AllThemes(cards, st)

	assert.Equal(t, []string{"go", "sql"}, []string{lines[0].Theme, lines[1].Theme})
	assert.Equal(t, 18, lines[0].Total)
	assert.Equal(t, 2, lines[1].Total)
}

func TestForDeck(t *testing.T) {
	cards, st := fixture(t)
	validate(st, cards, "go", 10)

	o := ForDeck(cards, st)

	assert.Equal(t, 10, o.Validated)
	assert.Equal(t, 20, o.Total)
	assert.Equal(t, 50, o.Percent)
}

func TestEmptyDeckPercentIsZero(t *testing.T) {
	st := store.New(nil, domain.NewSnapshot())
	o := ForDeck(nil, st)
	assert.Zero(t, o.Percent)
}
