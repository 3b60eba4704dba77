package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/PavelMelnik94/my-tracker/internal/model"
)

//go:embed recipes.yaml
var recipesYAML []byte

type recipeDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Ingredients []string `yaml:"ingredients"`
	Steps       []string `yaml:"steps"`
	Calories    int      `yaml:"calories"`
	Protein     float64  `yaml:"protein"`
	Fats        float64  `yaml:"fats"`
	Carbs       float64  `yaml:"carbs"`
	Image       string   `yaml:"image,omitempty"`
}

var (
	recipesOnce sync.Once
	recipes     []model.Recipe
	recipesErr  error
)

// Recipes returns a fresh copy of the built-in recipe book.
func Recipes() ([]model.Recipe, error) {
	recipesOnce.Do(func() {
		recipes, recipesErr = parseRecipes(recipesYAML)
	})
	if recipesErr != nil {
		return nil, recipesErr
	}
	out := make([]model.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out, nil
}

func parseRecipes(raw []byte) ([]model.Recipe, error) {
	var docs []recipeDoc
	if err := yaml.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse recipe catalog: %w", err)
	}
	out := make([]model.Recipe, 0, len(docs))
	seen := map[string]bool{}
	for _, d := range docs {
		category := model.RecipeCategory(d.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("recipe %q has invalid category %q", d.Name, d.Category)
		}
		if d.ID == "" || seen[d.ID] {
			return nil, fmt.Errorf("recipe %q has missing or duplicate id %q", d.Name, d.ID)
		}
		seen[d.ID] = true
		out = append(out, model.Recipe{
			ID:          d.ID,
			Name:        d.Name,
			Category:    category,
			Ingredients: d.Ingredients,
			Steps:       d.Steps,
			Calories:    d.Calories,
			Protein:     d.Protein,
			Fats:        d.Fats,
			Carbs:       d.Carbs,
			Image:       d.Image,
		}.Clone())
	}
	return out, nil
}
