package model

import "time"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack1    MealType = "snack1"
	MealSnack2    MealType = "snack2"
	MealSnack3    MealType = "snack3"
)

func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack1, MealSnack2, MealSnack3:
		return true
	}
	return false
}

// MealTypeAt classifies a wall-clock time into the meal it most likely is.
func MealTypeAt(t time.Time) MealType {
	h := t.Hour()
	switch {
	case h >= 6 && h < 11:
		return MealBreakfast
	case h >= 11 && h < 16:
		return MealLunch
	case h >= 16 && h < 21:
		return MealDinner
	default:
		return MealSnack1
	}
}

type SupplementKind string

const (
	SupplementVitaminD3 SupplementKind = "vitamin-d3"
	SupplementOmega3    SupplementKind = "omega-3"
	SupplementMagnesium SupplementKind = "magnesium"
)

func (k SupplementKind) Valid() bool {
	switch k {
	case SupplementVitaminD3, SupplementOmega3, SupplementMagnesium:
		return true
	}
	return false
}

type RecipeCategory string

const (
	RecipeBreakfast RecipeCategory = "breakfast"
	RecipeLunch     RecipeCategory = "lunch"
	RecipeDinner    RecipeCategory = "dinner"
	RecipeSnack     RecipeCategory = "snack"
)

func (c RecipeCategory) Valid() bool {
	switch c {
	case RecipeBreakfast, RecipeLunch, RecipeDinner, RecipeSnack:
		return true
	}
	return false
}

type MealEntry struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Type        MealType `json:"type"`
	Time        string   `json:"time"`
	Description string   `json:"description"`
	Calories    int      `json:"calories"`
	Completed   bool     `json:"completed"`
}

type SupplementEntry struct {
	ID         string         `json:"id"`
	Date       string         `json:"date"`
	Supplement SupplementKind `json:"supplement"`
	Taken      bool           `json:"taken"`
	Time       string         `json:"time,omitempty"`
}

// WellbeingEntry holds one day's self-ratings on a 1-10 scale.
// At most one entry per date is a caller convention; nothing enforces it.
type WellbeingEntry struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Energy int    `json:"energy"`
	Sleep  int    `json:"sleep"`
	Mood   int    `json:"mood"`
	Stress int    `json:"stress"`
	Libido *int   `json:"libido,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// MeasurementEntry is a body measurement: weight in kg, girths in cm.
type MeasurementEntry struct {
	ID     string   `json:"id"`
	Date   string   `json:"date"`
	Weight float64  `json:"weight"`
	Waist  *float64 `json:"waist,omitempty"`
	Hips   *float64 `json:"hips,omitempty"`
	Chest  *float64 `json:"chest,omitempty"`
}

type BloodTestEntry struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Leptin   *float64 `json:"leptin,omitempty"`
	VitaminD *float64 `json:"vitaminD,omitempty"`
	Iron     *float64 `json:"iron,omitempty"`
	HomaIR   *float64 `json:"homaIR,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// Recipe nutrition values are per serving.
type Recipe struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    RecipeCategory `json:"category"`
	Ingredients []string       `json:"ingredients"`
	Steps       []string       `json:"steps"`
	Calories    int            `json:"calories"`
	Protein     float64        `json:"protein"`
	Fats        float64        `json:"fats"`
	Carbs       float64        `json:"carbs"`
	Image       string         `json:"image,omitempty"`
}

// HealthData is the persisted and exported snapshot: exactly the six collections.
type HealthData struct {
	Meals        []MealEntry        `json:"meals"`
	Supplements  []SupplementEntry  `json:"supplements"`
	Wellbeing    []WellbeingEntry   `json:"wellbeing"`
	Measurements []MeasurementEntry `json:"measurements"`
	BloodTests   []BloodTestEntry   `json:"bloodTests"`
	Recipes      []Recipe           `json:"recipes"`
}

// Normalize replaces missing collections with empty ones.
func (d *HealthData) Normalize() {
	if d.Meals == nil {
		d.Meals = []MealEntry{}
	}
	if d.Supplements == nil {
		d.Supplements = []SupplementEntry{}
	}
	if d.Wellbeing == nil {
		d.Wellbeing = []WellbeingEntry{}
	}
	if d.Measurements == nil {
		d.Measurements = []MeasurementEntry{}
	}
	if d.BloodTests == nil {
		d.BloodTests = []BloodTestEntry{}
	}
	if d.Recipes == nil {
		d.Recipes = []Recipe{}
	}
}

// Clone returns a deep copy, including optional values and recipe lists.
func (d HealthData) Clone() HealthData {
	out := HealthData{
		Meals:        append([]MealEntry{}, d.Meals...),
		Supplements:  append([]SupplementEntry{}, d.Supplements...),
		Wellbeing:    make([]WellbeingEntry, len(d.Wellbeing)),
		Measurements: make([]MeasurementEntry, len(d.Measurements)),
		BloodTests:   make([]BloodTestEntry, len(d.BloodTests)),
		Recipes:      make([]Recipe, len(d.Recipes)),
	}
	for i, w := range d.Wellbeing {
		out.Wellbeing[i] = w.Clone()
	}
	for i, m := range d.Measurements {
		out.Measurements[i] = m.Clone()
	}
	for i, b := range d.BloodTests {
		out.BloodTests[i] = b.Clone()
	}
	for i, r := range d.Recipes {
		out.Recipes[i] = r.Clone()
	}
	return out
}

func (w WellbeingEntry) Clone() WellbeingEntry {
	w.Libido = clonePtr(w.Libido)
	return w
}

func (m MeasurementEntry) Clone() MeasurementEntry {
	m.Waist = clonePtr(m.Waist)
	m.Hips = clonePtr(m.Hips)
	m.Chest = clonePtr(m.Chest)
	return m
}

func (b BloodTestEntry) Clone() BloodTestEntry {
	b.Leptin = clonePtr(b.Leptin)
	b.VitaminD = clonePtr(b.VitaminD)
	b.Iron = clonePtr(b.Iron)
	b.HomaIR = clonePtr(b.HomaIR)
	return b
}

func (r Recipe) Clone() Recipe {
	r.Ingredients = append([]string{}, r.Ingredients...)
	r.Steps = append([]string{}, r.Steps...)
	return r
}

func (m MealEntry) EntityID() string        { return m.ID }
func (s SupplementEntry) EntityID() string  { return s.ID }
func (w WellbeingEntry) EntityID() string   { return w.ID }
func (m MeasurementEntry) EntityID() string { return m.ID }
func (b BloodTestEntry) EntityID() string   { return b.ID }
func (r Recipe) EntityID() string           { return r.ID }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
