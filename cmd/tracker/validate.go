package tracker

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("flag"); name != "" {
			return name
		}
		return strings.ToLower(f.Name)
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := dateutil.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := dateutil.ParseTime(fl.Field().String())
		return err == nil
	})
	return v
}

type mealInput struct {
	Date        string `flag:"date" validate:"required,isodate"`
	Type        string `flag:"type" validate:"required,oneof=breakfast lunch dinner snack1 snack2 snack3"`
	Time        string `flag:"time" validate:"required,hhmm"`
	Description string `flag:"description" validate:"required"`
	Calories    int    `flag:"calories" validate:"gte=0"`
}

type wellbeingInput struct {
	Date   string `flag:"date" validate:"required,isodate"`
	Energy int    `flag:"energy" validate:"min=1,max=10"`
	Sleep  int    `flag:"sleep" validate:"min=1,max=10"`
	Mood   int    `flag:"mood" validate:"min=1,max=10"`
	Stress int    `flag:"stress" validate:"min=1,max=10"`
	Libido *int   `flag:"libido" validate:"omitempty,min=1,max=10"`
}

type measurementInput struct {
	Date   string   `flag:"date" validate:"required,isodate"`
	Weight float64  `flag:"weight" validate:"gt=0"`
	Waist  *float64 `flag:"waist" validate:"omitempty,gt=0"`
	Hips   *float64 `flag:"hips" validate:"omitempty,gt=0"`
	Chest  *float64 `flag:"chest" validate:"omitempty,gt=0"`
}

type bloodTestInput struct {
	Date     string   `flag:"date" validate:"required,isodate"`
	Leptin   *float64 `flag:"leptin" validate:"omitempty,gte=0"`
	VitaminD *float64 `flag:"vitamin-d" validate:"omitempty,gte=0"`
	Iron     *float64 `flag:"iron" validate:"omitempty,gte=0"`
	HomaIR   *float64 `flag:"homa-ir" validate:"omitempty,gte=0"`
}

type recipeInput struct {
	Name        string   `flag:"name" validate:"required"`
	Category    string   `flag:"category" validate:"required,oneof=breakfast lunch dinner snack"`
	Ingredients []string `flag:"ingredients" validate:"min=1,dive,required"`
	Steps       []string `flag:"steps" validate:"dive,required"`
	Calories    int      `flag:"calories" validate:"gte=0"`
	Protein     float64  `flag:"protein" validate:"gte=0"`
	Fats        float64  `flag:"fats" validate:"gte=0"`
	Carbs       float64  `flag:"carbs" validate:"gte=0"`
}

// validateInput checks in and turns the first failure into a flag-oriented error.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	name := "--" + fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", name)
	case "isodate":
		return fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, fe.Value())
	case "hhmm":
		return fmt.Errorf("invalid %s %q (expected HH:MM)", name, fe.Value())
	case "oneof":
		return fmt.Errorf("invalid %s %q (expected one of: %s)", name, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Errorf("%s needs at least %s item(s)", name, fe.Param())
		}
		return fmt.Errorf("%s must be between 1 and 10", name)
	case "gt":
		return fmt.Errorf("%s must be > %s", name, fe.Param())
	case "gte":
		return fmt.Errorf("%s must be >= %s", name, fe.Param())
	}
	return fmt.Errorf("invalid %s: %s", name, fe.Error())
}
