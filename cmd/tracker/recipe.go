package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/catalog"
	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/model"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Browse, add and cook recipes",
}

var (
	recipeQuery       string
	recipeCategory    string
	recipeName        string
	recipeIngredients string
	recipeSteps       string
	recipeCalories    int
	recipeProtein     float64
	recipeFats        float64
	recipeCarbs       float64
	recipeImage       string
)

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		category := strings.ToLower(strings.TrimSpace(recipeCategory))
		if category != "" && category != analytics.CategoryAll && !model.RecipeCategory(category).Valid() {
			return fmt.Errorf("invalid --category %q (expected all, breakfast, lunch, dinner or snack)", recipeCategory)
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			if cfg.SeedRecipes {
				if _, err := st.SeedRecipes(); err != nil {
					return err
				}
			}
			found := analytics.FilterRecipes(st.Recipes(), recipeQuery, category)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tCATEGORY\tKCAL\tP\tF\tC\tNAME")
			for _, r := range found {
				fmt.Fprintf(out, "%s\t%s\t%d\t%.1f\t%.1f\t%.1f\t%s\n", r.ID, catalog.CategoryLabel(r.Category), r.Calories, r.Protein, r.Fats, r.Carbs, r.Name)
			}
			fmt.Fprintf(out, "Found: %d\n", len(found))
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			r, err := findRecipe(st, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", r.Name, catalog.CategoryLabel(r.Category))
			fmt.Fprintf(out, "%d kcal | P %.1fg | F %.1fg | C %.1fg\n", r.Calories, r.Protein, r.Fats, r.Carbs)
			fmt.Fprintln(out, "Ingredients:")
			for _, ing := range r.Ingredients {
				fmt.Fprintf(out, "  - %s\n", ing)
			}
			fmt.Fprintln(out, "Steps:")
			for i, step := range r.Steps {
				fmt.Fprintf(out, "  %d. %s\n", i+1, step)
			}
			return nil
		})
	},
}

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := recipeInput{
			Name:        strings.TrimSpace(recipeName),
			Category:    strings.ToLower(strings.TrimSpace(recipeCategory)),
			Ingredients: splitList(recipeIngredients),
			Steps:       splitList(recipeSteps),
			Calories:    recipeCalories,
			Protein:     recipeProtein,
			Fats:        recipeFats,
			Carbs:       recipeCarbs,
		}
		if err := validateInput(in); err != nil {
			return err
		}
		r := model.Recipe{
			ID:          dateutil.NewID(time.Now()),
			Name:        in.Name,
			Category:    model.RecipeCategory(in.Category),
			Ingredients: in.Ingredients,
			Steps:       in.Steps,
			Calories:    in.Calories,
			Protein:     in.Protein,
			Fats:        in.Fats,
			Carbs:       in.Carbs,
			Image:       strings.TrimSpace(recipeImage),
		}
		return withStore(cmd, func(st *store.Store) error {
			st.AddRecipe(r)
			fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %s\n", r.ID)
			return nil
		})
	},
}

var recipeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			current, err := findRecipe(st, args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			patch := model.RecipePatch{}
			if flags.Changed("name") {
				current.Name = strings.TrimSpace(recipeName)
				patch.Name = model.Set(current.Name)
			}
			if flags.Changed("category") {
				current.Category = model.RecipeCategory(strings.ToLower(strings.TrimSpace(recipeCategory)))
				patch.Category = model.Set(current.Category)
			}
			if flags.Changed("ingredients") {
				current.Ingredients = splitList(recipeIngredients)
				patch.Ingredients = model.Set(current.Ingredients)
			}
			if flags.Changed("steps") {
				current.Steps = splitList(recipeSteps)
				patch.Steps = model.Set(current.Steps)
			}
			if flags.Changed("calories") {
				current.Calories, patch.Calories = recipeCalories, model.Set(recipeCalories)
			}
			if flags.Changed("protein") {
				current.Protein, patch.Protein = recipeProtein, model.Set(recipeProtein)
			}
			if flags.Changed("fats") {
				current.Fats, patch.Fats = recipeFats, model.Set(recipeFats)
			}
			if flags.Changed("carbs") {
				current.Carbs, patch.Carbs = recipeCarbs, model.Set(recipeCarbs)
			}
			if flags.Changed("image") {
				patch.Image = model.Set(strings.TrimSpace(recipeImage))
			}
			if err := validateInput(recipeInput{
				Name:        current.Name,
				Category:    string(current.Category),
				Ingredients: current.Ingredients,
				Steps:       current.Steps,
				Calories:    current.Calories,
				Protein:     current.Protein,
				Fats:        current.Fats,
				Carbs:       current.Carbs,
			}); err != nil {
				return err
			}
			st.UpdateRecipe(current.ID, patch)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %s\n", current.ID)
			return nil
		})
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			if !st.DeleteRecipe(args[0]) {
				return fmt.Errorf("recipe %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %s\n", args[0])
			return nil
		})
	},
}

var recipeCookCmd = &cobra.Command{
	Use:   "cook <id>",
	Short: "Log one serving of a recipe as an eaten meal now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			r, err := findRecipe(st, args[0])
			if err != nil {
				return err
			}
			meal := st.TrackRecipeCooked(r)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s as %s at %s (%d kcal)\n", r.Name, catalog.MealLabel(meal.Type), meal.Time, meal.Calories)
			return nil
		})
	},
}

var recipeSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty recipe book with the built-in recipes (once)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			n, err := st.SeedRecipes()
			if err != nil {
				return err
			}
			if n == 0 && st.RecipesSeeded() {
				fmt.Fprintln(cmd.OutOrStdout(), "Recipe book already seeded")
				return nil
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Recipe book is not empty; nothing to seed")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d built-in recipes\n", n)
			return nil
		})
	},
}

func findRecipe(st *store.Store, id string) (model.Recipe, error) {
	for _, r := range st.Recipes() {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Recipe{}, fmt.Errorf("recipe %s not found", id)
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeListCmd, recipeShowCmd, recipeAddCmd, recipeUpdateCmd, recipeDeleteCmd, recipeCookCmd, recipeSeedCmd)

	recipeListCmd.Flags().StringVar(&recipeQuery, "query", "", "Match name or ingredient (case-insensitive)")
	recipeListCmd.Flags().StringVar(&recipeCategory, "category", "", "all|breakfast|lunch|dinner|snack")
	for _, c := range []*cobra.Command{recipeAddCmd, recipeUpdateCmd} {
		c.Flags().StringVar(&recipeName, "name", "", "Recipe name")
		c.Flags().StringVar(&recipeCategory, "category", "", "breakfast|lunch|dinner|snack")
		c.Flags().StringVar(&recipeIngredients, "ingredients", "", "Ingredients separated by ';'")
		c.Flags().StringVar(&recipeSteps, "steps", "", "Steps separated by ';'")
		c.Flags().IntVar(&recipeCalories, "calories", 0, "Calories per serving")
		c.Flags().Float64Var(&recipeProtein, "protein", 0, "Protein per serving (g)")
		c.Flags().Float64Var(&recipeFats, "fats", 0, "Fats per serving (g)")
		c.Flags().Float64Var(&recipeCarbs, "carbs", 0, "Carbs per serving (g)")
		c.Flags().StringVar(&recipeImage, "image", "", "Image URL or path")
	}
}
