package store

import (
	"fmt"

	"github.com/PavelMelnik94/my-tracker/internal/catalog"
	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/model"
)

// TrackRecipeCooked logs one eaten serving of r as a meal dated today. The meal slot
// follows the current hour.
func (s *Store) TrackRecipeCooked(r model.Recipe) model.MealEntry {
	now := s.now()
	meal := model.MealEntry{
		ID:          fmt.Sprintf("meal-%d", now.UnixMilli()),
		Date:        dateutil.FormatDate(now),
		Type:        model.MealTypeAt(now),
		Time:        dateutil.FormatTime(now),
		Description: fmt.Sprintf("%s (из рецепта)", r.Name),
		Calories:    r.Calories,
		Completed:   true,
	}
	s.AddMeal(meal)
	return meal
}

// EnsureSupplementChecklist adds one untaken entry per catalog supplement for date,
// but only when date has no supplement entries at all. It returns how many were added.
func (s *Store) EnsureSupplementChecklist(date string) int {
	added := 0
	s.mutate(func(d *model.HealthData) bool {
		for _, e := range d.Supplements {
			if e.Date == date {
				return false
			}
		}
		now := s.now()
		for _, info := range catalog.Supplements {
			d.Supplements = append(d.Supplements, model.SupplementEntry{
				ID:         s.newID(now),
				Date:       date,
				Supplement: info.Kind,
				Taken:      false,
				Time:       dateutil.FormatTime(now),
			})
			added++
		}
		return true
	})
	if added > 0 {
		s.log.Debug("created supplement checklist", "date", date, "entries", added)
	}
	return added
}

func (s *Store) EnsureTodaySupplements() int {
	return s.EnsureSupplementChecklist(dateutil.Today(s.now()))
}

// SeedRecipes fills an empty recipe collection from the built-in catalog once.
// After the first seed a persisted flag keeps a later delete-all from re-seeding.
func (s *Store) SeedRecipes() (int, error) {
	recipes, err := catalog.Recipes()
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded || len(s.data.Recipes) > 0 {
		return 0, nil
	}
	s.data.Recipes = append(s.data.Recipes, recipes...)
	s.saveLocked()
	if s.err != nil {
		return len(recipes), s.err
	}
	if err := s.persist.Save(s.seedKey(), []byte("true")); err != nil {
		return len(recipes), fmt.Errorf("persist recipe seed flag: %w", err)
	}
	s.seeded = true
	s.log.Debug("seeded recipe catalog", "recipes", len(recipes))
	return len(recipes), nil
}

// RecipesSeeded reports whether the built-in catalog has ever been seeded.
func (s *Store) RecipesSeeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeded
}

// SetRecipesSeeded overwrites the persisted seed guard. Restoring a backup uses it to
// carry the guard over with the data.
func (s *Store) SetRecipesSeeded(seeded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	if seeded {
		err = s.persist.Save(s.seedKey(), []byte("true"))
	} else {
		err = s.persist.Delete(s.seedKey())
	}
	if err != nil {
		return fmt.Errorf("persist recipe seed flag: %w", err)
	}
	s.seeded = seeded
	return nil
}
