// Package analytics derives read-only projections from tracker collections: the
// meal streak, weight and wellbeing series, blood-marker findings and the daily
// dashboard. Every function works on its own copy of the input.
package analytics

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/PavelMelnik94/my-tracker/internal/model"
)

// SeriesLimit is the number of most recent points kept in a chart series.
const SeriesLimit = 30

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type WellbeingPoint struct {
	Date   string `json:"date"`
	Energy int    `json:"energy"`
	Sleep  int    `json:"sleep"`
	Mood   int    `json:"mood"`
	Stress int    `json:"stress"`
}

type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable"
)

type Trend struct {
	Change    string    `json:"change"`
	Delta     float64   `json:"delta"`
	Direction Direction `json:"direction"`
	From      string    `json:"from_date"`
	To        string    `json:"to_date"`
}

// Averages holds means rounded to one decimal.
type Averages struct {
	Energy float64 `json:"energy"`
	Sleep  float64 `json:"sleep"`
	Mood   float64 `json:"mood"`
	Stress float64 `json:"stress"`
	Count  int     `json:"count"`
}

// Streak counts the most recent meal dates, newest first, that each have at least
// one completed meal. Dates without any meal entry are not visited, so they do not
// break the streak.
func Streak(meals []model.MealEntry) int {
	completed := map[string]bool{}
	for _, m := range meals {
		completed[m.Date] = completed[m.Date] || m.Completed
	}
	dates := make([]string, 0, len(completed))
	for d := range completed {
		dates = append(dates, d)
	}
	slices.Sort(dates)
	slices.Reverse(dates)

	streak := 0
	for _, d := range dates {
		if !completed[d] {
			break
		}
		streak++
	}
	return streak
}

func WeightSeries(measurements []model.MeasurementEntry) []WeightPoint {
	points := make([]WeightPoint, 0, len(measurements))
	for _, m := range measurements {
		points = append(points, WeightPoint{Date: m.Date, Weight: m.Weight})
	}
	slices.SortStableFunc(points, func(a, b WeightPoint) int { return strings.Compare(a.Date, b.Date) })
	return lastN(points, SeriesLimit)
}

func WellbeingSeries(entries []model.WellbeingEntry) []WellbeingPoint {
	points := make([]WellbeingPoint, 0, len(entries))
	for _, w := range entries {
		points = append(points, WellbeingPoint{Date: w.Date, Energy: w.Energy, Sleep: w.Sleep, Mood: w.Mood, Stress: w.Stress})
	}
	slices.SortStableFunc(points, func(a, b WellbeingPoint) int { return strings.Compare(a.Date, b.Date) })
	return lastN(points, SeriesLimit)
}

// WeightTrend compares the first and last points of the weight series. It needs at
// least two points.
func WeightTrend(measurements []model.MeasurementEntry) (Trend, bool) {
	series := WeightSeries(measurements)
	if len(series) < 2 {
		return Trend{}, false
	}
	first, last := series[0], series[len(series)-1]
	delta := last.Weight - first.Weight

	dir := DirectionStable
	switch {
	case delta > 0:
		dir = DirectionUp
	case delta < 0:
		dir = DirectionDown
	}
	return Trend{
		Change:    fmt.Sprintf("%.1f", math.Abs(delta)),
		Delta:     delta,
		Direction: dir,
		From:      first.Date,
		To:        last.Date,
	}, true
}

func WellbeingAverages(entries []model.WellbeingEntry) (Averages, bool) {
	series := WellbeingSeries(entries)
	if len(series) == 0 {
		return Averages{}, false
	}
	var energy, sleep, mood, stress int
	for _, p := range series {
		energy += p.Energy
		sleep += p.Sleep
		mood += p.Mood
		stress += p.Stress
	}
	n := float64(len(series))
	return Averages{
		Energy: round1(float64(energy) / n),
		Sleep:  round1(float64(sleep) / n),
		Mood:   round1(float64(mood) / n),
		Stress: round1(float64(stress) / n),
		Count:  len(series),
	}, true
}

func lastN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[len(items)-n:]
	}
	return items
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
