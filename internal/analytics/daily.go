package analytics

import (
	"cmp"
	"slices"
	"strings"

	"github.com/PavelMelnik94/my-tracker/internal/catalog"
	"github.com/PavelMelnik94/my-tracker/internal/model"
)

// MealsForDay returns the meals on date in meal-slot order. Meals in the same slot
// keep their insertion order.
func MealsForDay(meals []model.MealEntry, date string) []model.MealEntry {
	out := []model.MealEntry{}
	for _, m := range meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b model.MealEntry) int {
		return cmp.Compare(catalog.MealRank(a.Type), catalog.MealRank(b.Type))
	})
	return out
}

// CaloriesConsumed sums calories of completed meals only.
func CaloriesConsumed(meals []model.MealEntry) int {
	total := 0
	for _, m := range meals {
		if m.Completed {
			total += m.Calories
		}
	}
	return total
}

func SupplementsForDay(entries []model.SupplementEntry, date string) []model.SupplementEntry {
	out := []model.SupplementEntry{}
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

type Progress struct {
	Done    int     `json:"done"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

func SupplementProgress(entries []model.SupplementEntry, date string) Progress {
	var p Progress
	for _, e := range SupplementsForDay(entries, date) {
		p.Total++
		if e.Taken {
			p.Done++
		}
	}
	p.Percent = percent(p.Done, p.Total)
	return p
}

// FindWellbeing returns the first entry on date. Callers use it to decide between
// updating an existing entry and adding a new one.
func FindWellbeing(entries []model.WellbeingEntry, date string) (model.WellbeingEntry, bool) {
	i := slices.IndexFunc(entries, func(w model.WellbeingEntry) bool { return w.Date == date })
	if i < 0 {
		return model.WellbeingEntry{}, false
	}
	return entries[i].Clone(), true
}

func FindMeasurement(entries []model.MeasurementEntry, date string) (model.MeasurementEntry, bool) {
	i := slices.IndexFunc(entries, func(m model.MeasurementEntry) bool { return m.Date == date })
	if i < 0 {
		return model.MeasurementEntry{}, false
	}
	return entries[i].Clone(), true
}

// LatestWellbeingForDay picks the entry on date with the greatest id. Ids start
// with a millisecond timestamp, so that is the one recorded last.
func LatestWellbeingForDay(entries []model.WellbeingEntry, date string) (model.WellbeingEntry, bool) {
	var best model.WellbeingEntry
	found := false
	for _, w := range entries {
		if w.Date != date {
			continue
		}
		if !found || w.ID > best.ID {
			best, found = w, true
		}
	}
	return best.Clone(), found
}

// LatestMeasurement returns the measurement with the newest date; the first one
// wins a tie.
func LatestMeasurement(entries []model.MeasurementEntry) (model.MeasurementEntry, bool) {
	if len(entries) == 0 {
		return model.MeasurementEntry{}, false
	}
	best := entries[0]
	for _, m := range entries[1:] {
		if m.Date > best.Date {
			best = m
		}
	}
	return best.Clone(), true
}

// CategoryAll matches every recipe category in FilterRecipes.
const CategoryAll = "all"

// FilterRecipes keeps recipes whose name or any ingredient contains query, ignoring
// case, and whose category matches. An empty category or "all" matches any.
func FilterRecipes(recipes []model.Recipe, query, category string) []model.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []model.Recipe{}
	for _, r := range recipes {
		if category != "" && category != CategoryAll && string(r.Category) != category {
			continue
		}
		if q != "" && !recipeMatches(r, q) {
			continue
		}
		out = append(out, r.Clone())
	}
	return out
}

func recipeMatches(r model.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// DaySummary is the dashboard view of one date.
type DaySummary struct {
	Date              string                  `json:"date"`
	Calories          int                     `json:"calories"`
	Meals             []model.MealEntry       `json:"meals"`
	MealsCompleted    int                     `json:"meals_completed"`
	MealsPlanned      int                     `json:"meals_planned"`
	Supplements       []model.SupplementEntry `json:"supplements"`
	SupplementsTaken  int                     `json:"supplements_taken"`
	SupplementsTotal  int                     `json:"supplements_total"`
	Wellbeing         *model.WellbeingEntry   `json:"wellbeing,omitempty"`
	LatestMeasurement *model.MeasurementEntry `json:"latest_measurement,omitempty"`
	Streak            int                     `json:"streak"`
}

func Dashboard(data model.HealthData, date string) DaySummary {
	meals := MealsForDay(data.Meals, date)
	supps := SupplementsForDay(data.Supplements, date)
	progress := SupplementProgress(data.Supplements, date)

	summary := DaySummary{
		Date:             date,
		Calories:         CaloriesConsumed(meals),
		Meals:            meals,
		MealsPlanned:     len(meals),
		Supplements:      supps,
		SupplementsTaken: progress.Done,
		SupplementsTotal: progress.Total,
		Streak:           Streak(data.Meals),
	}
	for _, m := range meals {
		if m.Completed {
			summary.MealsCompleted++
		}
	}
	if w, ok := LatestWellbeingForDay(data.Wellbeing, date); ok {
		summary.Wellbeing = &w
	}
	if m, ok := LatestMeasurement(data.Measurements); ok {
		summary.LatestMeasurement = &m
	}
	return summary
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
