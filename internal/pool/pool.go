// Package pool implements the deterministic daily pool selection: per
// theme per day it decides which cards are shown and in what order.
//
// Determinism is load-bearing. The generator is seeded by value from
// the day and theme, so repeated calls within one process or across a
// restart produce the same pool before the cache kicks in, and tests
// are reproducible. Once a pool is cached for a day it is returned
// unchanged no matter how the underlying card states move.
package pool

import (
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/store"
)

// Params configures pool sizing.
type Params struct {
	// UnitsPerTheme caps the pool size.
	UnitsPerTheme int

	// ReviewValidated is the maximum number of already-validated cards
	// injected into a pool for review when pending cards leave room.
	ReviewValidated int
}

// DefaultParams returns the standard sizing: ten cards per theme per
// day, up to three of them validated reviews.
func DefaultParams() Params {
	return Params{UnitsPerTheme: 10, ReviewValidated: 3}
}

// Selector selects daily pools.
type Selector struct {
	params Params
}

// NewSelector creates a selector with the given params.
func NewSelector(params Params) *Selector {
	return &Selector{params: params}
}

// Select returns the ordered card IDs for a theme on a day, selecting
// and caching them on first call:
//
//  1. a cached pool for (day, theme) is returned as-is
//  2. the theme's cards split into pending and validated buckets
//  3. up to UnitsPerTheme shuffled pending cards are taken
//  4. remaining slots take up to ReviewValidated shuffled validated cards
//  5. still-remaining slots top up from any unchosen theme cards
//  6. the result is cached under (day, theme)
//
// All sampling draws from one generator seeded from day+theme. A theme
// with fewer cards than UnitsPerTheme yields all of them, never padded
// or repeated.
func (s *Selector) Select(
	theme string,
	day domain.Date,
	cards map[string]domain.Card,
	st *store.Store,
) []string {
	if ids, ok := st.Pool(day, theme); ok {
		return ids
	}

	var pending, validated []string
	for id, c := range cards {
		if c.Theme != theme {
			continue
		}
		if st.Unit(id).Validated {
			validated = append(validated, id)
		} else {
			pending = append(pending, id)
		}
	}
	// Map iteration order is random; sort before shuffling so the
	// seeded generator is the only source of ordering.
	sort.Strings(pending)
	sort.Strings(validated)

	rng := rand.New(rand.NewSource(seed(string(day) + theme)))

	selected := sample(rng, pending, s.params.UnitsPerTheme)

	if len(selected) < s.params.UnitsPerTheme && len(validated) > 0 {
		n := min(s.params.ReviewValidated, s.params.UnitsPerTheme-len(selected))
		selected = append(selected, sample(rng, validated, n)...)
	}

	if len(selected) < s.params.UnitsPerTheme {
		chosen := make(map[string]bool, len(selected))
		for _, id := range selected {
			chosen[id] = true
		}
		var others []string
		for id, c := range cards {
			if c.Theme == theme && !chosen[id] {
				others = append(others, id)
			}
		}
		sort.Strings(others)
		selected = append(selected, sample(rng, others, s.params.UnitsPerTheme-len(selected))...)
	}

	st.SetPool(day, theme, selected)
	return selected
}

// sample shuffles a copy of ids and returns its first n entries.
func sample(rng *rand.Rand, ids []string, n int) []string {
	shuffled := append([]string(nil), ids...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// seed folds the day+theme string into a generator seed. FNV-1a keeps
// the seeding pure: no ambient generator state is touched.
func seed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
