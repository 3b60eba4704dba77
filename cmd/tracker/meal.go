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

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Plan and log meals",
}

var (
	mealDate        string
	mealType        string
	mealTime        string
	mealDescription string
	mealCalories    int
	mealCompleted   bool
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		in := mealInput{
			Date:        mealDate,
			Type:        mealType,
			Time:        mealTime,
			Description: strings.TrimSpace(mealDescription),
			Calories:    mealCalories,
		}
		if in.Date == "" {
			in.Date = dateutil.Today(now)
		}
		if in.Time == "" {
			in.Time = dateutil.FormatTime(now)
		}
		if in.Type == "" {
			in.Type = string(model.MealTypeAt(now))
		}
		if err := validateInput(in); err != nil {
			return err
		}
		meal := model.MealEntry{
			ID:          dateutil.NewID(now),
			Date:        in.Date,
			Type:        model.MealType(in.Type),
			Time:        in.Time,
			Description: in.Description,
			Calories:    in.Calories,
			Completed:   mealCompleted,
		}
		return withStore(cmd, func(st *store.Store) error {
			st.AddMeal(meal)
			fmt.Fprintf(cmd.OutOrStdout(), "Added meal %s\n", meal.ID)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day in meal order",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(mealDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			meals := analytics.MealsForDay(st.Meals(), date)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", date)
			fmt.Fprintln(out, "ID\tDONE\tSLOT\tTIME\tKCAL\tDESCRIPTION")
			completed := 0
			for _, m := range meals {
				if m.Completed {
					completed++
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%d\t%s\n", m.ID, checkMark(m.Completed), catalog.MealLabel(m.Type), m.Time, m.Calories, m.Description)
			}
			fmt.Fprintf(out, "Eaten: %d kcal (%d of %d meals)\n", analytics.CaloriesConsumed(meals), completed, len(meals))
			return nil
		})
	},
}

var mealUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		return withStore(cmd, func(st *store.Store) error {
			var current model.MealEntry
			found := false
			for _, m := range st.Meals() {
				if m.ID == id {
					current, found = m, true
					break
				}
			}
			if !found {
				return fmt.Errorf("meal %s not found", id)
			}

			patch := model.MealPatch{}
			flags := cmd.Flags()
			if flags.Changed("date") {
				current.Date, patch.Date = mealDate, model.Set(mealDate)
			}
			if flags.Changed("type") {
				current.Type, patch.Type = model.MealType(mealType), model.Set(model.MealType(mealType))
			}
			if flags.Changed("time") {
				current.Time, patch.Time = mealTime, model.Set(mealTime)
			}
			if flags.Changed("description") {
				d := strings.TrimSpace(mealDescription)
				current.Description, patch.Description = d, model.Set(d)
			}
			if flags.Changed("calories") {
				current.Calories, patch.Calories = mealCalories, model.Set(mealCalories)
			}
			if flags.Changed("completed") {
				patch.Completed = model.Set(mealCompleted)
			}
			if err := validateInput(mealInput{
				Date:        current.Date,
				Type:        string(current.Type),
				Time:        current.Time,
				Description: current.Description,
				Calories:    current.Calories,
			}); err != nil {
				return err
			}
			st.UpdateMeal(id, patch)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal %s\n", id)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			if !st.DeleteMeal(args[0]) {
				return fmt.Errorf("meal %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		})
	},
}

var mealToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a meal eaten or not eaten",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			if !st.ToggleMealCompleted(args[0]) {
				return fmt.Errorf("meal %s not found", args[0])
			}
			for _, m := range st.Meals() {
				if m.ID == args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "Meal %s %s\n", m.ID, checkMark(m.Completed))
					break
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealUpdateCmd, mealDeleteCmd, mealToggleCmd)

	for _, c := range []*cobra.Command{mealAddCmd, mealUpdateCmd} {
		c.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
		c.Flags().StringVar(&mealType, "type", "", "Meal slot: breakfast|snack1|lunch|snack2|dinner|snack3 (default by current hour)")
		c.Flags().StringVar(&mealTime, "time", "", "Time HH:MM (default now)")
		c.Flags().StringVar(&mealDescription, "description", "", "What the meal is")
		c.Flags().IntVar(&mealCalories, "calories", 0, "Calories (kcal)")
		c.Flags().BoolVar(&mealCompleted, "completed", false, "Mark as already eaten")
	}
	mealListCmd.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
}
