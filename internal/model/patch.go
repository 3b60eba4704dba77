package model

// Patch is one field of a partial update. Unset fields leave the target untouched;
// a set optional field holding nil clears the target.
type Patch[T any] struct {
	Value T
	Set   bool
}

func Set[T any](v T) Patch[T] {
	return Patch[T]{Value: v, Set: true}
}

func (p Patch[T]) applyTo(dst *T) {
	if p.Set {
		*dst = p.Value
	}
}

type MealPatch struct {
	Date        Patch[string]
	Type        Patch[MealType]
	Time        Patch[string]
	Description Patch[string]
	Calories    Patch[int]
	Completed   Patch[bool]
}

func (m *MealEntry) Apply(p MealPatch) {
	p.Date.applyTo(&m.Date)
	p.Type.applyTo(&m.Type)
	p.Time.applyTo(&m.Time)
	p.Description.applyTo(&m.Description)
	p.Calories.applyTo(&m.Calories)
	p.Completed.applyTo(&m.Completed)
}

type SupplementPatch struct {
	Date       Patch[string]
	Supplement Patch[SupplementKind]
	Taken      Patch[bool]
	Time       Patch[string]
}

func (s *SupplementEntry) Apply(p SupplementPatch) {
	p.Date.applyTo(&s.Date)
	p.Supplement.applyTo(&s.Supplement)
	p.Taken.applyTo(&s.Taken)
	p.Time.applyTo(&s.Time)
}

type WellbeingPatch struct {
	Date   Patch[string]
	Energy Patch[int]
	Sleep  Patch[int]
	Mood   Patch[int]
	Stress Patch[int]
	Libido Patch[*int]
	Notes  Patch[string]
}

func (w *WellbeingEntry) Apply(p WellbeingPatch) {
	p.Date.applyTo(&w.Date)
	p.Energy.applyTo(&w.Energy)
	p.Sleep.applyTo(&w.Sleep)
	p.Mood.applyTo(&w.Mood)
	p.Stress.applyTo(&w.Stress)
	p.Libido.applyTo(&w.Libido)
	p.Notes.applyTo(&w.Notes)
	w.Libido = clonePtr(w.Libido)
}

type MeasurementPatch struct {
	Date   Patch[string]
	Weight Patch[float64]
	Waist  Patch[*float64]
	Hips   Patch[*float64]
	Chest  Patch[*float64]
}

func (m *MeasurementEntry) Apply(p MeasurementPatch) {
	p.Date.applyTo(&m.Date)
	p.Weight.applyTo(&m.Weight)
	p.Waist.applyTo(&m.Waist)
	p.Hips.applyTo(&m.Hips)
	p.Chest.applyTo(&m.Chest)
	*m = m.Clone()
}

type BloodTestPatch struct {
	Date     Patch[string]
	Leptin   Patch[*float64]
	VitaminD Patch[*float64]
	Iron     Patch[*float64]
	HomaIR   Patch[*float64]
	Notes    Patch[string]
}

func (b *BloodTestEntry) Apply(p BloodTestPatch) {
	p.Date.applyTo(&b.Date)
	p.Leptin.applyTo(&b.Leptin)
	p.VitaminD.applyTo(&b.VitaminD)
	p.Iron.applyTo(&b.Iron)
	p.HomaIR.applyTo(&b.HomaIR)
	p.Notes.applyTo(&b.Notes)
	*b = b.Clone()
}

type RecipePatch struct {
	Name        Patch[string]
	Category    Patch[RecipeCategory]
	Ingredients Patch[[]string]
	Steps       Patch[[]string]
	Calories    Patch[int]
	Protein     Patch[float64]
	Fats        Patch[float64]
	Carbs       Patch[float64]
	Image       Patch[string]
}

func (r *Recipe) Apply(p RecipePatch) {
	p.Name.applyTo(&r.Name)
	p.Category.applyTo(&r.Category)
	p.Ingredients.applyTo(&r.Ingredients)
	p.Steps.applyTo(&r.Steps)
	p.Calories.applyTo(&r.Calories)
	p.Protein.applyTo(&r.Protein)
	p.Fats.applyTo(&r.Fats)
	p.Carbs.applyTo(&r.Carbs)
	p.Image.applyTo(&r.Image)
	*r = r.Clone()
}
