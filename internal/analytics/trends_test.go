package analytics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/model"
)

func TestStreakCountsCompletedDatesNewestFirst(t *testing.T) {
	t.Parallel()
	meals := []model.MealEntry{
		{ID: "1", Date: "2024-01-01", Completed: false},
		{ID: "2", Date: "2024-01-03", Completed: true},
		{ID: "3", Date: "2024-01-02", Completed: true},
	}
	assert.Equal(t, 2, analytics.Streak(meals))
}

func TestStreakEdgeCases(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		meals []model.MealEntry
		want  int
	}{
		{name: "empty", want: 0},
		{name: "latest day incomplete", meals: []model.MealEntry{
			{Date: "2024-01-02", Completed: false},
			{Date: "2024-01-01", Completed: true},
		}, want: 0},
		{name: "one completed among several", meals: []model.MealEntry{
			{Date: "2024-01-02", Completed: false},
			{Date: "2024-01-02", Completed: true},
			{Date: "2024-01-01", Completed: true},
		}, want: 2},
		{name: "absent calendar days are skipped", meals: []model.MealEntry{
			{Date: "2024-01-10", Completed: true},
			{Date: "2024-01-05", Completed: true},
			{Date: "2024-01-01", Completed: true},
		}, want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analytics.Streak(tc.meals))
		})
	}
}

func TestWeightTrendDown(t *testing.T) {
	t.Parallel()
	trend, ok := analytics.WeightTrend([]model.MeasurementEntry{
		{Date: "2024-01-10", Weight: 78},
		{Date: "2024-01-01", Weight: 80},
	})
	require.True(t, ok)
	assert.Equal(t, "2.0", trend.Change)
	assert.Equal(t, analytics.DirectionDown, trend.Direction)
	assert.Equal(t, "2024-01-01", trend.From)
	assert.Equal(t, "2024-01-10", trend.To)
}

func TestWeightTrendUpStableAndTooFewPoints(t *testing.T) {
	t.Parallel()
	up, ok := analytics.WeightTrend([]model.MeasurementEntry{{Date: "2024-01-01", Weight: 70}, {Date: "2024-02-01", Weight: 71.3}})
	require.True(t, ok)
	assert.Equal(t, analytics.DirectionUp, up.Direction)
	assert.Equal(t, "1.3", up.Change)

	stable, ok := analytics.WeightTrend([]model.MeasurementEntry{{Date: "2024-01-01", Weight: 70}, {Date: "2024-02-01", Weight: 70}})
	require.True(t, ok)
	assert.Equal(t, analytics.DirectionStable, stable.Direction)
	assert.Equal(t, "0.0", stable.Change)

	_, ok = analytics.WeightTrend([]model.MeasurementEntry{{Date: "2024-01-01", Weight: 70}})
	assert.False(t, ok)
}

func TestSeriesKeepLatestThirtyAscending(t *testing.T) {
	t.Parallel()
	measurements := []model.MeasurementEntry{}
	wellbeing := []model.WellbeingEntry{}
	for day := 40; day >= 1; day-- {
		date := fmt.Sprintf("2024-01-%02d", day)
		if day > 31 {
			date = fmt.Sprintf("2024-02-%02d", day-31)
		}
		measurements = append(measurements, model.MeasurementEntry{Date: date, Weight: float64(day)})
		wellbeing = append(wellbeing, model.WellbeingEntry{Date: date, Energy: day % 10})
	}

	weights := analytics.WeightSeries(measurements)
	require.Len(t, weights, analytics.SeriesLimit)
	assert.Equal(t, "2024-01-11", weights[0].Date)
	assert.Equal(t, "2024-02-09", weights[len(weights)-1].Date)
	for i := 1; i < len(weights); i++ {
		assert.LessOrEqual(t, weights[i-1].Date, weights[i].Date)
	}

	points := analytics.WellbeingSeries(wellbeing)
	require.Len(t, points, analytics.SeriesLimit)
	assert.Equal(t, "2024-01-11", points[0].Date)
}

func TestWellbeingAveragesRoundToOneDecimal(t *testing.T) {
	t.Parallel()
	avg, ok := analytics.WellbeingAverages([]model.WellbeingEntry{
		{Date: "2024-01-01", Energy: 7, Sleep: 6, Mood: 8, Stress: 3},
		{Date: "2024-01-02", Energy: 8, Sleep: 7, Mood: 7, Stress: 4},
		{Date: "2024-01-03", Energy: 6, Sleep: 9, Mood: 9, Stress: 2},
	})
	require.True(t, ok)
	assert.Equal(t, 7.0, avg.Energy)
	assert.Equal(t, 7.3, avg.Sleep)
	assert.Equal(t, 8.0, avg.Mood)
	assert.Equal(t, 3.0, avg.Stress)
	assert.Equal(t, 3, avg.Count)

	_, ok = analytics.WellbeingAverages(nil)
	assert.False(t, ok)
}

func TestAnalyticsDoNotMutateInput(t *testing.T) {
	t.Parallel()
	measurements := []model.MeasurementEntry{{ID: "b", Date: "2024-01-10", Weight: 78}, {ID: "a", Date: "2024-01-01", Weight: 80}}
	_, _ = analytics.WeightTrend(measurements)
	assert.Equal(t, "b", measurements[0].ID)

	meals := []model.MealEntry{{ID: "x", Date: "2024-01-01", Type: model.MealDinner}, {ID: "y", Date: "2024-01-01", Type: model.MealBreakfast}}
	_ = analytics.MealsForDay(meals, "2024-01-01")
	assert.Equal(t, "x", meals[0].ID)
}
