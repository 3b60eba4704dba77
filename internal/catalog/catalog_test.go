package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelMelnik94/my-tracker/internal/model"
)

func TestSupplementChecklistOrder(t *testing.T) {
	t.Parallel()
	require.Len(t, Supplements, 3)
	assert.Equal(t, model.SupplementVitaminD3, Supplements[0].Kind)
	assert.Equal(t, model.SupplementOmega3, Supplements[1].Kind)
	assert.Equal(t, model.SupplementMagnesium, Supplements[2].Kind)
	assert.Equal(t, "Magnesium Glycinate", SupplementLabel(model.SupplementMagnesium))
	assert.Equal(t, "zinc", SupplementLabel("zinc"))
}

func TestMealRank(t *testing.T) {
	t.Parallel()
	assert.Less(t, MealRank(model.MealBreakfast), MealRank(model.MealSnack1))
	assert.Less(t, MealRank(model.MealSnack1), MealRank(model.MealLunch))
	assert.Less(t, MealRank(model.MealSnack2), MealRank(model.MealDinner))
	assert.Less(t, MealRank(model.MealDinner), MealRank(model.MealSnack3))
	assert.Equal(t, len(MealOrder), MealRank("brunch"))
	assert.Equal(t, "Обед", MealLabel(model.MealLunch))
	assert.Equal(t, "Перекусы", CategoryLabel(model.RecipeSnack))
}

func TestBuiltInRecipes(t *testing.T) {
	t.Parallel()
	recipes, err := Recipes()
	require.NoError(t, err)
	require.Len(t, recipes, 8)

	ids := map[string]bool{}
	for _, r := range recipes {
		assert.True(t, r.Category.Valid(), r.ID)
		assert.NotEmpty(t, r.Ingredients, r.ID)
		assert.NotEmpty(t, r.Steps, r.ID)
		assert.Positive(t, r.Calories, r.ID)
		ids[r.ID] = true
	}
	assert.True(t, ids["recipe-oatmeal"])

	recipes[0].Ingredients[0] = "changed"
	again, err := Recipes()
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again[0].Ingredients[0])
}

func TestParseRecipesRejectsBadCatalog(t *testing.T) {
	t.Parallel()
	_, err := parseRecipes([]byte("- id: a\n  name: A\n  category: dessert\n"))
	require.Error(t, err)

	_, err = parseRecipes([]byte("- id: a\n  name: A\n  category: snack\n- id: a\n  name: B\n  category: snack\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
