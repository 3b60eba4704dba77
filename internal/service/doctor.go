package service

import (
	"fmt"
	"maps"
	"slices"

	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/model"
)

// Issue is one problem found by RunDoctor.
type Issue struct {
	Collection string `json:"collection"`
	ID         string `json:"id,omitempty"`
	Problem    string `json:"problem"`
}

type DoctorReport struct {
	DuplicateIDs       int     `json:"duplicate_ids"`
	DuplicateDates     int     `json:"duplicate_dates"`
	InvalidDates       int     `json:"invalid_dates"`
	InvalidRatings     int     `json:"invalid_ratings"`
	UnknownValues      int     `json:"unknown_values"`
	NegativeQuantities int     `json:"negative_quantities"`
	Issues             []Issue `json:"issues"`
}

func (r DoctorReport) OK() bool {
	return len(r.Issues) == 0
}

// RunDoctor inspects a snapshot without changing it. Duplicate ids make updates
// ambiguous and a second wellbeing or measurement entry on one date hides the
// first from the by-date lookups; both are reported, not fixed.
func RunDoctor(data model.HealthData) DoctorReport {
	r := &DoctorReport{Issues: []Issue{}}

	checkIDs(r, "meals", data.Meals)
	checkIDs(r, "supplements", data.Supplements)
	checkIDs(r, "wellbeing", data.Wellbeing)
	checkIDs(r, "measurements", data.Measurements)
	checkIDs(r, "bloodTests", data.BloodTests)
	checkIDs(r, "recipes", data.Recipes)

	for _, m := range data.Meals {
		r.checkDate("meals", m.ID, m.Date)
		if !m.Type.Valid() {
			r.add(&r.UnknownValues, "meals", m.ID, fmt.Sprintf("unknown meal type %q", m.Type))
		}
		if m.Time != "" {
			if _, err := dateutil.ParseTime(m.Time); err != nil {
				r.add(&r.InvalidDates, "meals", m.ID, err.Error())
			}
		}
		if m.Calories < 0 {
			r.add(&r.NegativeQuantities, "meals", m.ID, fmt.Sprintf("negative calories %d", m.Calories))
		}
	}
	for _, s := range data.Supplements {
		r.checkDate("supplements", s.ID, s.Date)
		if !s.Supplement.Valid() {
			r.add(&r.UnknownValues, "supplements", s.ID, fmt.Sprintf("unknown supplement %q", s.Supplement))
		}
	}

	wellbeingDates := map[string]int{}
	for _, w := range data.Wellbeing {
		r.checkDate("wellbeing", w.ID, w.Date)
		ratings := []struct {
			name  string
			value int
		}{{"energy", w.Energy}, {"sleep", w.Sleep}, {"mood", w.Mood}, {"stress", w.Stress}}
		if w.Libido != nil {
			ratings = append(ratings, struct {
				name  string
				value int
			}{"libido", *w.Libido})
		}
		for _, rt := range ratings {
			if rt.value < 1 || rt.value > 10 {
				r.add(&r.InvalidRatings, "wellbeing", w.ID, fmt.Sprintf("%s rating %d outside 1-10", rt.name, rt.value))
			}
		}
		wellbeingDates[w.Date]++
	}
	r.checkDateCounts("wellbeing", wellbeingDates)

	measurementDates := map[string]int{}
	for _, m := range data.Measurements {
		r.checkDate("measurements", m.ID, m.Date)
		if m.Weight < 0 {
			r.add(&r.NegativeQuantities, "measurements", m.ID, fmt.Sprintf("negative weight %.1f", m.Weight))
		}
		measurementDates[m.Date]++
	}
	r.checkDateCounts("measurements", measurementDates)

	for _, b := range data.BloodTests {
		r.checkDate("bloodTests", b.ID, b.Date)
	}
	for _, rc := range data.Recipes {
		if !rc.Category.Valid() {
			r.add(&r.UnknownValues, "recipes", rc.ID, fmt.Sprintf("unknown recipe category %q", rc.Category))
		}
		if rc.Calories < 0 {
			r.add(&r.NegativeQuantities, "recipes", rc.ID, fmt.Sprintf("negative calories %d", rc.Calories))
		}
	}
	return *r
}

func checkIDs[T interface{ EntityID() string }](r *DoctorReport, collection string, items []T) {
	seen := map[string]bool{}
	for _, item := range items {
		id := item.EntityID()
		if seen[id] {
			r.add(&r.DuplicateIDs, collection, id, "duplicate id")
			continue
		}
		seen[id] = true
	}
}

func (r *DoctorReport) checkDate(collection, id, date string) {
	if _, err := dateutil.ParseDate(date); err != nil {
		r.add(&r.InvalidDates, collection, id, err.Error())
	}
}

func (r *DoctorReport) checkDateCounts(collection string, counts map[string]int) {
	for _, date := range slices.Sorted(maps.Keys(counts)) {
		if n := counts[date]; n > 1 {
			r.add(&r.DuplicateDates, collection, "", fmt.Sprintf("%d entries on %s", n, date))
		}
	}
}

func (r *DoctorReport) add(counter *int, collection, id, problem string) {
	*counter++
	r.Issues = append(r.Issues, Issue{Collection: collection, ID: id, Problem: problem})
}
