package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/model"
)

func sampleData() model.HealthData {
	data := model.HealthData{
		Meals: []model.MealEntry{
			{ID: "d", Date: "2024-03-05", Type: model.MealDinner, Calories: 600},
			{ID: "b", Date: "2024-03-05", Type: model.MealBreakfast, Calories: 350, Completed: true},
			{ID: "s", Date: "2024-03-05", Type: model.MealSnack1, Calories: 150, Completed: true},
			{ID: "l", Date: "2024-03-04", Type: model.MealLunch, Calories: 500, Completed: true},
		},
		Supplements: []model.SupplementEntry{
			{ID: "1", Date: "2024-03-05", Supplement: model.SupplementVitaminD3, Taken: true},
			{ID: "2", Date: "2024-03-05", Supplement: model.SupplementOmega3},
			{ID: "3", Date: "2024-03-05", Supplement: model.SupplementMagnesium},
			{ID: "4", Date: "2024-03-04", Supplement: model.SupplementMagnesium, Taken: true},
		},
		Wellbeing: []model.WellbeingEntry{
			{ID: "1709600000000-a", Date: "2024-03-05", Energy: 5},
			{ID: "1709610000000-b", Date: "2024-03-05", Energy: 8},
			{ID: "1709500000000-c", Date: "2024-03-04", Energy: 2},
		},
		Measurements: []model.MeasurementEntry{
			{ID: "m1", Date: "2024-03-01", Weight: 81},
			{ID: "m2", Date: "2024-03-04", Weight: 80},
			{ID: "m3", Date: "2024-02-01", Weight: 82},
		},
	}
	data.Normalize()
	return data
}

func TestMealsForDayOrdersBySlot(t *testing.T) {
	t.Parallel()
	meals := analytics.MealsForDay(sampleData().Meals, "2024-03-05")
	ids := []string{}
	for _, m := range meals {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"b", "s", "d"}, ids)
	assert.Empty(t, analytics.MealsForDay(sampleData().Meals, "2000-01-01"))
}

func TestCaloriesConsumedCountsCompletedOnly(t *testing.T) {
	t.Parallel()
	meals := analytics.MealsForDay(sampleData().Meals, "2024-03-05")
	assert.Equal(t, 500, analytics.CaloriesConsumed(meals))
}

func TestSupplementProgress(t *testing.T) {
	t.Parallel()
	p := analytics.SupplementProgress(sampleData().Supplements, "2024-03-05")
	assert.Equal(t, 1, p.Done)
	assert.Equal(t, 3, p.Total)
	assert.InDelta(t, 33.33, p.Percent, 0.01)

	empty := analytics.SupplementProgress(nil, "2024-03-05")
	assert.Zero(t, empty.Percent)
}

func TestFindByDateReturnsFirstMatch(t *testing.T) {
	t.Parallel()
	data := sampleData()

	w, ok := analytics.FindWellbeing(data.Wellbeing, "2024-03-05")
	require.True(t, ok)
	assert.Equal(t, "1709600000000-a", w.ID)

	m, ok := analytics.FindMeasurement(data.Measurements, "2024-03-04")
	require.True(t, ok)
	assert.Equal(t, "m2", m.ID)

	_, ok = analytics.FindMeasurement(data.Measurements, "2024-03-05")
	assert.False(t, ok)
}

func TestFilterRecipes(t *testing.T) {
	t.Parallel()
	recipes := []model.Recipe{
		{ID: "1", Name: "Овсянка с ягодами", Category: model.RecipeBreakfast, Ingredients: []string{"Овсяные хлопья", "Черника"}},
		{ID: "2", Name: "Лосось с киноа", Category: model.RecipeLunch, Ingredients: []string{"Лосось", "Киноа"}},
		{ID: "3", Name: "Скумбрия", Category: model.RecipeDinner, Ingredients: []string{"Скумбрия", "Брокколи"}},
	}

	assert.Len(t, analytics.FilterRecipes(recipes, "", ""), 3)
	assert.Len(t, analytics.FilterRecipes(recipes, "", analytics.CategoryAll), 3)

	byName := analytics.FilterRecipes(recipes, "ОВСЯНКА", "")
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byIngredient := analytics.FilterRecipes(recipes, "брокколи", "all")
	require.Len(t, byIngredient, 1)
	assert.Equal(t, "3", byIngredient[0].ID)

	assert.Empty(t, analytics.FilterRecipes(recipes, "лосось", string(model.RecipeDinner)))
	assert.Len(t, analytics.FilterRecipes(recipes, "", string(model.RecipeLunch)), 1)
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	summary := analytics.Dashboard(sampleData(), "2024-03-05")

	assert.Equal(t, 500, summary.Calories)
	assert.Equal(t, 2, summary.MealsCompleted)
	assert.Equal(t, 3, summary.MealsPlanned)
	assert.Equal(t, 1, summary.SupplementsTaken)
	assert.Equal(t, 3, summary.SupplementsTotal)
	require.NotNil(t, summary.Wellbeing)
	assert.Equal(t, 8, summary.Wellbeing.Energy)
	require.NotNil(t, summary.LatestMeasurement)
	assert.Equal(t, "m2", summary.LatestMeasurement.ID)
	assert.Equal(t, 2, summary.Streak)
}

func TestDashboardEmptyDay(t *testing.T) {
	t.Parallel()
	var data model.HealthData
	data.Normalize()
	summary := analytics.Dashboard(data, "2024-03-05")

	assert.Zero(t, summary.Calories)
	assert.Nil(t, summary.Wellbeing)
	assert.Nil(t, summary.LatestMeasurement)
	assert.Empty(t, summary.Meals)
}
