package store

import "github.com/PavelMelnik94/my-tracker/internal/model"

func (s *Store) AddMeal(m model.MealEntry) {
	s.mutate(func(d *model.HealthData) bool {
		d.Meals = append(d.Meals, m)
		return true
	})
}

// UpdateMeal merges p into the first meal with id. It reports whether one matched.
func (s *Store) UpdateMeal(id string, p model.MealPatch) bool {
	return s.mutate(func(d *model.HealthData) bool {
		i := indexOf(d.Meals, id)
		if i < 0 {
			return false
		}
		d.Meals[i].Apply(p)
		return true
	})
}

func (s *Store) DeleteMeal(id string) bool {
	return s.mutate(func(d *model.HealthData) bool {
		var ok bool
		d.Meals, ok = removeFirst(d.Meals, id)
		return ok
	})
}

func (s *Store) ToggleMealCompleted(id string) bool {
	return s.mutate(func(d *model.HealthData) bool {
		i := indexOf(d.Meals, id)
		if i < 0 {
			return false
		}
		d.Meals[i].Completed = !d.Meals[i].Completed
		return true
	})
}

func (s *Store) AddSupplement(e model.SupplementEntry) {
	s.mutate(func(d *model.HealthData) bool {
		d.Supplements = append(d.Supplements, e)
		return true
	})
}

func (s *Store) UpdateSupplement(id string, p model.SupplementPatch) bool {
	return s.mutate(func(d *model.HealthData) bool {
		i := indexOf(d.Supplements, id)
		if i < 0 {
			return false
		}
		d.Supplements[i].Apply(p)
		return true
	})
}

func (s *Store) ToggleSupplementTaken(id string) bool {
	return s.mutate(func(d *model.HealthData) bool {
		i := indexOf(d.Supplements, id)
		if i < 0 {
			return false
		}
		d.Supplements[i].Taken = !d.Supplements[i].Taken
		return true
	})
}

func (s *Store) AddWellbeing(e model.WellbeingEntry) {
	s.mutate(func(d *model.HealthData) bool {
		d.Wellbeing = append(d.Wellbeing, e.Clone())
		return true
	})
}

func (s *Store) UpdateWellbeing(id string, p model.WellbeingPatch) bool {
	return s.mutate(func(d *model.HealthData) bool {
		i := indexOf(d.Wellbeing, id)
		if i < 0 {
			return false
		}
		d.Wellbeing[i].Apply(p)
		return true
	})
}

func (s *Store) DeleteWellbeing(id string) bool {
	return s.mutate(func(d *model.HealthData) bool {
		var ok bool
		d.Wellbeing, ok = removeFirst(d.Wellbeing, id)
		return ok
	})
}

func (s *Store) AddMeasurement(e model.MeasurementEntry) {
	s.mutate(func(d *model.HealthData) bool {
		d.Measurements = append(d.Measurements, e.Clone())
		return true
	})
}

func (s *Store) UpdateMeasurement(id string, p model.MeasurementPatch) bool {
	return s.mutate(func(d *model.HealthData) bool {
		i := indexOf(d.Measurements, id)
		if i < 0 {
			return false
		}
		d.Measurements[i].Apply(p)
		return true
	})
}

func (s *Store) DeleteMeasurement(id string) bool {
	return s.mutate(func(d *model.HealthData) bool {
		var ok bool
		d.Measurements, ok = removeFirst(d.Measurements, id)
		return ok
	})
}

func (s *Store) AddBloodTest(e model.BloodTestEntry) {
	s.mutate(func(d *model.HealthData) bool {
		d.BloodTests = append(d.BloodTests, e.Clone())
		return true
	})
}

func (s *Store) UpdateBloodTest(id string, p model.BloodTestPatch) bool {
	return s.mutate(func(d *model.HealthData) bool {
		i := indexOf(d.BloodTests, id)
		if i < 0 {
			return false
		}
		d.BloodTests[i].Apply(p)
		return true
	})
}

func (s *Store) DeleteBloodTest(id string) bool {
	return s.mutate(func(d *model.HealthData) bool {
		var ok bool
		d.BloodTests, ok = removeFirst(d.BloodTests, id)
		return ok
	})
}

func (s *Store) AddRecipe(r model.Recipe) {
	s.mutate(func(d *model.HealthData) bool {
		d.Recipes = append(d.Recipes, r.Clone())
		return true
	})
}

func (s *Store) UpdateRecipe(id string, p model.RecipePatch) bool {
	return s.mutate(func(d *model.HealthData) bool {
		i := indexOf(d.Recipes, id)
		if i < 0 {
			return false
		}
		d.Recipes[i].Apply(p)
		return true
	})
}

func (s *Store) DeleteRecipe(id string) bool {
	return s.mutate(func(d *model.HealthData) bool {
		var ok bool
		d.Recipes, ok = removeFirst(d.Recipes, id)
		return ok
	})
}
