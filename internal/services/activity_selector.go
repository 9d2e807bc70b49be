package services

import (
	"sort"

	"tripoptimizer/internal/catalog"
	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/domain/models"
)

// Selection is the outcome of one selector run. TotalCost never exceeds the
// allotted budget and Remaining is always non-negative.
type Selection struct {
	Activities []models.Activity `json:"activities"`
	TotalCost  int64             `json:"totalCost"`
	Remaining  int64             `json:"remaining"`
}

// ActivitySelector picks a bounded, category-diverse, budget-constrained
// subset of catalog activities for a destination. Catalog can be overridden
// in tests; it defaults to the static catalog.
type ActivitySelector struct {
	Catalog func(destination string) []catalog.Entry
}

func (s ActivitySelector) catalog() func(string) []catalog.Entry {
	if s.Catalog != nil {
		return s.Catalog
	}
	return catalog.ForDestination
}

// Select filters and ranks catalog candidates and greedily accepts them,
// preferring one pick per not-yet-covered category before filling remaining
// slots by rank. The soft cap is two activities per trip day.
func (s ActivitySelector) Select(destination string, numberOfDays int, activityBudget int64, style models.TravelStyle) (Selection, error) {
	if numberOfDays < 1 {
		return Selection{}, domain.ValidationError{Field: "number_of_days", Msg: "must be at least 1"}
	}
	if activityBudget < 0 {
		return Selection{}, domain.ValidationError{Field: "activity_budget", Msg: "must not be negative"}
	}
	if !style.Valid() {
		return Selection{}, domain.ValidationError{Field: "travel_style", Msg: "must be BUDGET or BALANCED"}
	}

	candidates := s.catalog()(destination)

	// Drop candidates that alone blow the budget.
	affordable := make([]catalog.Entry, 0, len(candidates))
	for _, e := range candidates {
		if e.Price <= activityBudget {
			affordable = append(affordable, e)
		}
	}

	rankEntries(affordable, style)

	softCap := 2 * numberOfDays
	remaining := activityBudget

	picked := make([]models.Activity, 0, softCap)
	seenCategory := map[models.ActivityCategory]bool{}
	taken := make([]bool, len(affordable))

	// First round: one best-ranked pick per category, for diversity.
	for i, e := range affordable {
		if len(picked) >= softCap {
			break
		}
		if seenCategory[e.Category] || e.Price > remaining {
			continue
		}
		picked = append(picked, activityFromEntry(e))
		remaining -= e.Price
		seenCategory[e.Category] = true
		taken[i] = true
	}

	// Fill remaining slots by rank.
	for i, e := range affordable {
		if len(picked) >= softCap {
			break
		}
		if taken[i] || e.Price > remaining {
			continue
		}
		picked = append(picked, activityFromEntry(e))
		remaining -= e.Price
		taken[i] = true
	}

	return Selection{
		Activities: picked,
		TotalCost:  activityBudget - remaining,
		Remaining:  remaining,
	}, nil
}

// rankEntries orders candidates by the style's bias with a name tie-break so
// the selection is deterministic.
func rankEntries(entries []catalog.Entry, style models.TravelStyle) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if style == models.StyleBudget {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		} else {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		}
		return a.Name < b.Name
	})
}

func activityFromEntry(e catalog.Entry) models.Activity {
	return models.Activity{
		Name:            e.Name,
		Category:        e.Category,
		Price:           e.Price,
		DurationMinutes: e.DurationMinutes,
		Rating:          e.Rating,
	}
}
