// Package catalog holds the fixed reference data of the tracker: the supplement
// checklist, meal slots, recipe categories and the built-in recipe book.
package catalog

import "github.com/PavelMelnik94/my-tracker/internal/model"

type SupplementInfo struct {
	Kind   model.SupplementKind
	Label  string
	Timing string
}

// Supplements is the daily checklist, in display order.
var Supplements = []SupplementInfo{
	{Kind: model.SupplementVitaminD3, Label: "Vitamin D3 5000 IU", Timing: "утро"},
	{Kind: model.SupplementOmega3, Label: "Omega-3", Timing: "с едой"},
	{Kind: model.SupplementMagnesium, Label: "Magnesium Glycinate", Timing: "вечер"},
}

type MealSlot struct {
	Type  model.MealType
	Label string
}

// MealOrder lists meal slots in the order they happen during a day.
var MealOrder = []MealSlot{
	{Type: model.MealBreakfast, Label: "Завтрак"},
	{Type: model.MealSnack1, Label: "Перекус 1"},
	{Type: model.MealLunch, Label: "Обед"},
	{Type: model.MealSnack2, Label: "Перекус 2"},
	{Type: model.MealDinner, Label: "Ужин"},
	{Type: model.MealSnack3, Label: "Перекус 3"},
}

var RecipeCategories = []struct {
	Category model.RecipeCategory
	Label    string
}{
	{Category: model.RecipeBreakfast, Label: "Завтраки"},
	{Category: model.RecipeLunch, Label: "Обеды"},
	{Category: model.RecipeDinner, Label: "Ужины"},
	{Category: model.RecipeSnack, Label: "Перекусы"},
}

func SupplementLabel(kind model.SupplementKind) string {
	for _, s := range Supplements {
		if s.Kind == kind {
			return s.Label
		}
	}
	return string(kind)
}

// MealRank returns the position of t in MealOrder, or len(MealOrder) if unknown.
func MealRank(t model.MealType) int {
	for i, s := range MealOrder {
		if s.Type == t {
			return i
		}
	}
	return len(MealOrder)
}

func MealLabel(t model.MealType) string {
	if i := MealRank(t); i < len(MealOrder) {
		return MealOrder[i].Label
	}
	return string(t)
}

func CategoryLabel(c model.RecipeCategory) string {
	for _, rc := range RecipeCategories {
		if rc.Category == c {
			return rc.Label
		}
	}
	return string(c)
}
