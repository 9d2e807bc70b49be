package services

import (
	"testing"

	"tripoptimizer/internal/catalog"
	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectParisBalancedExample(t *testing.T) {
	sel := ActivitySelector{}

	got, err := sel.Select("Paris", 7, 30000, models.StyleBalanced)
	require.NoError(t, err)

	require.NotEmpty(t, got.Activities)
	assert.LessOrEqual(t, got.TotalCost, int64(30000))
	assert.Equal(t, int64(30000)-got.TotalCost, got.Remaining)

	cats := map[models.ActivityCategory]bool{}
	var sum int64
	for _, a := range got.Activities {
		cats[a.Category] = true
		sum += a.Price
	}
	assert.Equal(t, sum, got.TotalCost)
	assert.Greater(t, len(cats), 1, "selection should span more than one category")
}

func TestSelectBudgetInvariantAcrossInputs(t *testing.T) {
	sel := ActivitySelector{}
	budgets := []int64{0, 1500, 5000, 30000, 1000000}
	styles := []models.TravelStyle{models.StyleBudget, models.StyleBalanced}

	for _, dest := range []string{"Paris", "Rome", "Tokyo", "Barcelona", "Nowhere"} {
		for _, budget := range budgets {
			for _, style := range styles {
				got, err := sel.Select(dest, 3, budget, style)
				require.NoError(t, err, "%s/%d/%s", dest, budget, style)
				assert.LessOrEqual(t, got.TotalCost, budget)
				assert.GreaterOrEqual(t, got.Remaining, int64(0))
				assert.Equal(t, budget-got.TotalCost, got.Remaining)
			}
		}
	}
}

func TestSelectSoftCapTiedToDays(t *testing.T) {
	sel := ActivitySelector{}

	got, err := sel.Select("Paris", 1, 1000000, models.StyleBalanced)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got.Activities), 2, "one day allows at most two activities")

	week, err := sel.Select("Paris", 7, 1000000, models.StyleBalanced)
	require.NoError(t, err)
	assert.Greater(t, len(week.Activities), len(got.Activities))
}

func TestSelectEmptyCatalogIsNotAnError(t *testing.T) {
	sel := ActivitySelector{}

	got, err := sel.Select("Nowhere", 5, 20000, models.StyleBudget)
	require.NoError(t, err)
	assert.Empty(t, got.Activities)
	assert.Zero(t, got.TotalCost)
	assert.Equal(t, int64(20000), got.Remaining)
}

func TestSelectNonEmptyWheneverACandidateFits(t *testing.T) {
	sel := ActivitySelector{Catalog: func(string) []catalog.Entry {
		return []catalog.Entry{
			{Name: "Pricey", Category: models.CategoryCulture, Price: 90000, Rating: 5},
			{Name: "Cheap", Category: models.CategoryFood, Price: 200, Rating: 3},
		}
	}}

	got, err := sel.Select("x", 2, 500, models.StyleBalanced)
	require.NoError(t, err)
	require.Len(t, got.Activities, 1)
	assert.Equal(t, "Cheap", got.Activities[0].Name)
}

func TestSelectStyleBias(t *testing.T) {
	entries := []catalog.Entry{
		{Name: "Cheap Low", Category: models.CategoryFood, Price: 100, Rating: 2.0},
		{Name: "Costly High", Category: models.CategoryFood, Price: 5000, Rating: 5.0},
	}
	sel := ActivitySelector{Catalog: func(string) []catalog.Entry { return entries }}

	budget, err := sel.Select("x", 1, 5000, models.StyleBudget)
	require.NoError(t, err)
	require.NotEmpty(t, budget.Activities)
	assert.Equal(t, "Cheap Low", budget.Activities[0].Name, "BUDGET prefers lower price")

	balanced, err := sel.Select("x", 1, 5000, models.StyleBalanced)
	require.NoError(t, err)
	require.NotEmpty(t, balanced.Activities)
	assert.Equal(t, "Costly High", balanced.Activities[0].Name, "BALANCED prefers rating")
}

func TestSelectDiversityBeforeRank(t *testing.T) {
	entries := []catalog.Entry{
		{Name: "Food A", Category: models.CategoryFood, Price: 100, Rating: 5.0},
		{Name: "Food B", Category: models.CategoryFood, Price: 110, Rating: 4.9},
		{Name: "Museum", Category: models.CategoryCulture, Price: 120, Rating: 3.0},
	}
	sel := ActivitySelector{Catalog: func(string) []catalog.Entry { return entries }}

	got, err := sel.Select("x", 1, 250, models.StyleBalanced)
	require.NoError(t, err)
	require.Len(t, got.Activities, 2)

	cats := map[models.ActivityCategory]bool{}
	for _, a := range got.Activities {
		cats[a.Category] = true
	}
	assert.Len(t, cats, 2, "both categories should be represented before doubling up")
}

func TestSelectDeterministic(t *testing.T) {
	sel := ActivitySelector{}
	first, err := sel.Select("Tokyo", 4, 25000, models.StyleBalanced)
	require.NoError(t, err)
	second, err := sel.Select("Tokyo", 4, 25000, models.StyleBalanced)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSelectValidation(t *testing.T) {
	sel := ActivitySelector{}

	_, err := sel.Select("Paris", 0, 1000, models.StyleBudget)
	assert.True(t, domain.IsValidation(err), "days < 1 must fail validation")

	_, err = sel.Select("Paris", 3, -1, models.StyleBudget)
	assert.True(t, domain.IsValidation(err), "negative budget must fail validation")

	_, err = sel.Select("Paris", 3, 1000, models.TravelStyle("LUXURY"))
	assert.True(t, domain.IsValidation(err), "unknown style must fail validation")
}
