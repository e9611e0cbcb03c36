// Package stats derives read-only progress figures from the store for
// display. It never mutates anything.
package stats

import (
	"sort"

	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/store"
)

// ThemeProgress is the per-theme display line: validated count over
// total with a truncated percentage, plus the theme's flame streak.
type ThemeProgress struct {
	Theme       string
	Validated   int
	Total       int
	Percent     int
	FlameStreak int
}

// Overall is the whole-deck validated ratio.
type Overall struct {
	Validated int
	Total     int
	Percent   int
}

// ForTheme computes the progress line for one theme.
func ForTheme(theme string, cards map[string]domain.Card, st *store.Store) ThemeProgress {
	p := ThemeProgress{Theme: theme, FlameStreak: st.Theme(theme).FlameStreak}
	for id, c := range cards {
		if c.Theme != theme {
			continue
		}
		p.Total++
		if st.Unit(id).Validated {
			p.Validated++
		}
	}
	p.Percent = percent(p.Validated, p.Total)
	return p
}

// AllThemes computes progress lines for every theme, sorted by name.
func AllThemes(cards map[string]domain.Card, st *store.Store) []ThemeProgress {
	seen := make(map[string]bool)
	var themes []string
	for _, c := range cards {
		if !seen[c.Theme] {
			seen[c.Theme] = true
			themes = append(themes, c.Theme)
		}
	}
	sort.Strings(themes)

	lines := make([]ThemeProgress, 0, len(themes))
	for _, t := range themes {
		lines = append(lines, ForTheme(t, cards, st))
	}
	return lines
}

// ForDeck computes the overall validated ratio across all cards.
func ForDeck(cards map[string]domain.Card, st *store.Store) Overall {
	o := Overall{Total: len(cards)}
	for id := range cards {
		if st.Unit(id).Validated {
			o.Validated++
		}
	}
	o.Percent = percent(o.Validated, o.Total)
	return o
}

// percent truncates toward zero, matching the display convention of
// the progress lines (17/18 shows as 94%, not 95%).
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}
