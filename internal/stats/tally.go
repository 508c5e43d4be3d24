package stats

import "github.com/what2do/eventsphere/internal/domain"

type CategoryTally struct {
	Counts map[domain.Category]int
	top    domain.Category
	hasTop bool
}

// Top reports the most frequent category. ok is false for an empty tally.
func (t CategoryTally) Top() (domain.Category, bool) {
	return t.top, t.hasTop
}

// TallyCategories counts events per category. On equal counts the category
// seen first in the input wins.
func TallyCategories(events []domain.Event) CategoryTally {
	t := CategoryTally{Counts: make(map[domain.Category]int)}

	order := make([]domain.Category, 0, len(domain.Categories))
	for _, e := range events {
		if _, seen := t.Counts[e.Category]; !seen {
			order = append(order, e.Category)
		}
		t.Counts[e.Category]++
	}

	best := 0
	for _, c := range order {
		if n := t.Counts[c]; n > best {
			best = n
			t.top = c
			t.hasTop = true
		}
	}

	return t
}
