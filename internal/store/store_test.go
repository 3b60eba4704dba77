package store_test

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelMelnik94/my-tracker/internal/model"
	"github.com/PavelMelnik94/my-tracker/internal/storage"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 5, hour, minute, 0, 0, time.Local)
	}
}

func sequentialIDs() func(time.Time) string {
	n := 0
	return func(time.Time) string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, opts ...store.Option) (*store.Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	opts = append([]store.Option{store.WithClock(fixedClock(8, 15)), store.WithIDFunc(sequentialIDs())}, opts...)
	s, err := store.Open(mem, opts...)
	require.NoError(t, err, "open store")
	return s, mem
}

func seedEverything(s *store.Store) {
	s.AddMeal(model.MealEntry{ID: "m1", Date: "2024-01-01", Type: model.MealBreakfast, Time: "08:00", Description: "Каша", Calories: 300})
	s.AddMeal(model.MealEntry{ID: "m2", Date: "2024-01-01", Type: model.MealLunch, Time: "13:00", Description: "Суп", Calories: 450, Completed: true})
	s.AddSupplement(model.SupplementEntry{ID: "s1", Date: "2024-01-01", Supplement: model.SupplementOmega3, Time: "09:00"})
	s.AddWellbeing(model.WellbeingEntry{ID: "w1", Date: "2024-01-01", Energy: 7, Sleep: 6, Mood: 8, Stress: 3, Libido: model.Ptr(5), Notes: "ok"})
	s.AddMeasurement(model.MeasurementEntry{ID: "me1", Date: "2024-01-01", Weight: 80.5, Waist: model.Ptr(90.0)})
	s.AddBloodTest(model.BloodTestEntry{ID: "b1", Date: "2024-01-01", Leptin: model.Ptr(1.5), VitaminD: model.Ptr(25.0)})
	s.AddRecipe(model.Recipe{ID: "r1", Name: "Овсянка", Category: model.RecipeBreakfast, Ingredients: []string{"овёс"}, Steps: []string{"варить"}, Calories: 350, Protein: 12, Fats: 11, Carbs: 52})
}

func TestOpenEmptyStoreHasAllCollections(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	data := s.Snapshot()
	assert.NotNil(t, data.Meals)
	assert.NotNil(t, data.Supplements)
	assert.NotNil(t, data.Wellbeing)
	assert.NotNil(t, data.Measurements)
	assert.NotNil(t, data.BloodTests)
	assert.NotNil(t, data.Recipes)
	assert.Empty(t, data.Meals)
}

func TestOpenRequiresPersister(t *testing.T) {
	t.Parallel()
	_, err := store.Open(nil)
	require.Error(t, err)
}

func TestAddThenUpdateChangesOnlyPatchedField(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	seedEverything(s)

	require.True(t, s.UpdateMeal("m1", model.MealPatch{Calories: model.Set(420)}))
	meal := s.Meals()[0]
	assert.Equal(t, 420, meal.Calories)
	assert.Equal(t, "Каша", meal.Description)
	assert.Equal(t, model.MealBreakfast, meal.Type)
	assert.False(t, meal.Completed)

	require.True(t, s.UpdateSupplement("s1", model.SupplementPatch{Taken: model.Set(true)}))
	assert.True(t, s.Supplements()[0].Taken)
	assert.Equal(t, "09:00", s.Supplements()[0].Time)

	require.True(t, s.UpdateWellbeing("w1", model.WellbeingPatch{Mood: model.Set(4)}))
	w := s.Wellbeing()[0]
	assert.Equal(t, 4, w.Mood)
	assert.Equal(t, 7, w.Energy)
	require.NotNil(t, w.Libido)
	assert.Equal(t, 5, *w.Libido)

	require.True(t, s.UpdateMeasurement("me1", model.MeasurementPatch{Weight: model.Set(79.9)}))
	m := s.Measurements()[0]
	assert.Equal(t, 79.9, m.Weight)
	require.NotNil(t, m.Waist)
	assert.Equal(t, 90.0, *m.Waist)

	require.True(t, s.UpdateBloodTest("b1", model.BloodTestPatch{Iron: model.Set(model.Ptr(100.0))}))
	b := s.BloodTests()[0]
	require.NotNil(t, b.Iron)
	assert.Equal(t, 100.0, *b.Iron)
	assert.Equal(t, 1.5, *b.Leptin)

	require.True(t, s.UpdateRecipe("r1", model.RecipePatch{Name: model.Set("Овсянка с ягодами")}))
	r := s.Recipes()[0]
	assert.Equal(t, "Овсянка с ягодами", r.Name)
	assert.Equal(t, 350, r.Calories)
	assert.Equal(t, []string{"овёс"}, r.Ingredients)
}

func TestUpdateCanClearOptionalField(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	seedEverything(s)

	require.True(t, s.UpdateBloodTest("b1", model.BloodTestPatch{Leptin: model.Set[*float64](nil)}))
	assert.Nil(t, s.BloodTests()[0].Leptin)
	assert.NotNil(t, s.BloodTests()[0].VitaminD)
}

func TestUpdateDeleteToggleUnknownIDAreNoOps(t *testing.T) {
	t.Parallel()
	s, mem := newTestStore(t)
	seedEverything(s)
	before := s.Snapshot()
	persisted, _, err := mem.Load(store.DefaultKey)
	require.NoError(t, err)

	assert.False(t, s.UpdateMeal("missing", model.MealPatch{Calories: model.Set(1)}))
	assert.False(t, s.DeleteMeal("missing"))
	assert.False(t, s.ToggleMealCompleted("missing"))
	assert.False(t, s.ToggleSupplementTaken("missing"))
	assert.False(t, s.DeleteWellbeing("missing"))
	assert.False(t, s.DeleteMeasurement("missing"))
	assert.False(t, s.DeleteBloodTest("missing"))
	assert.False(t, s.DeleteRecipe("missing"))

	assert.Equal(t, before, s.Snapshot())
	after, _, err := mem.Load(store.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, persisted, after)
	assert.NoError(t, s.Err())
}

func TestDeleteRemovesOnlyMatchingEntryAndKeepsOrder(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	for _, id := range []string{"a", "b", "c", "d"} {
		s.AddMeal(model.MealEntry{ID: id, Date: "2024-01-01", Type: model.MealSnack1})
	}

	require.True(t, s.DeleteMeal("b"))

	ids := []string{}
	for _, m := range s.Meals() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
}

func TestDuplicateIDsAffectFirstMatchOnly(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	s.AddMeal(model.MealEntry{ID: "dup", Calories: 100})
	s.AddMeal(model.MealEntry{ID: "dup", Calories: 200})

	s.UpdateMeal("dup", model.MealPatch{Calories: model.Set(150)})
	s.ToggleMealCompleted("dup")
	meals := s.Meals()
	assert.Equal(t, 150, meals[0].Calories)
	assert.True(t, meals[0].Completed)
	assert.Equal(t, 200, meals[1].Calories)
	assert.False(t, meals[1].Completed)

	s.DeleteMeal("dup")
	require.Len(t, s.Meals(), 1)
	assert.Equal(t, 200, s.Meals()[0].Calories)
}

func TestTogglesFlipOnlyFlagAndDoubleToggleRestores(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	seedEverything(s)
	before := s.Snapshot()

	require.True(t, s.ToggleMealCompleted("m1"))
	assert.True(t, s.Meals()[0].Completed)
	assert.Equal(t, before.Meals[0].Calories, s.Meals()[0].Calories)
	require.True(t, s.ToggleMealCompleted("m1"))

	require.True(t, s.ToggleSupplementTaken("s1"))
	assert.True(t, s.Supplements()[0].Taken)
	require.True(t, s.ToggleSupplementTaken("s1"))

	assert.Equal(t, before, s.Snapshot())
}

func TestReadsReturnCopies(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	seedEverything(s)

	meals := s.Meals()
	meals[0].Calories = 9999
	recipes := s.Recipes()
	recipes[0].Ingredients[0] = "changed"
	tests := s.BloodTests()
	*tests[0].Leptin = 42

	assert.Equal(t, 300, s.Meals()[0].Calories)
	assert.Equal(t, "овёс", s.Recipes()[0].Ingredients[0])
	assert.Equal(t, 1.5, *s.BloodTests()[0].Leptin)
}

func TestAddCopiesCallerValues(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	waist := 90.0
	s.AddMeasurement(model.MeasurementEntry{ID: "x", Date: "2024-01-01", Weight: 80, Waist: &waist})
	waist = 10

	assert.Equal(t, 90.0, *s.Measurements()[0].Waist)
}

func TestTrackRecipeCookedAtBreakfastTime(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	meal := s.TrackRecipeCooked(model.Recipe{ID: "r1", Name: "Овсянка", Calories: 350})

	assert.Equal(t, model.MealBreakfast, meal.Type)
	assert.Equal(t, "08:15", meal.Time)
	assert.Equal(t, "2024-03-05", meal.Date)
	assert.Equal(t, 350, meal.Calories)
	assert.True(t, meal.Completed)
	assert.Contains(t, meal.Description, "Овсянка")
	assert.Contains(t, meal.ID, "meal-")

	require.Len(t, s.Meals(), 1)
	assert.Equal(t, meal, s.Meals()[0])
}

func TestTrackRecipeCookedMealTypeByHour(t *testing.T) {
	t.Parallel()
	cases := []struct {
		hour, minute int
		want         model.MealType
	}{
		{5, 59, model.MealSnack1},
		{6, 0, model.MealBreakfast},
		{10, 59, model.MealBreakfast},
		{11, 0, model.MealLunch},
		{15, 59, model.MealLunch},
		{16, 0, model.MealDinner},
		{20, 59, model.MealDinner},
		{21, 0, model.MealSnack1},
		{0, 30, model.MealSnack1},
	}
	for _, tc := range cases {
		s, _ := newTestStore(t, store.WithClock(fixedClock(tc.hour, tc.minute)))
		meal := s.TrackRecipeCooked(model.Recipe{Name: "x"})
		assert.Equal(t, tc.want, meal.Type, "at %02d:%02d", tc.hour, tc.minute)
	}
}

func TestResetAllDataEmptiesEveryCollection(t *testing.T) {
	t.Parallel()
	s, mem := newTestStore(t)
	seedEverything(s)

	s.ResetAllData()

	data := s.Snapshot()
	assert.Empty(t, data.Meals)
	assert.Empty(t, data.Supplements)
	assert.Empty(t, data.Wellbeing)
	assert.Empty(t, data.Measurements)
	assert.Empty(t, data.BloodTests)
	assert.Empty(t, data.Recipes)

	raw, ok, err := mem.Load(store.DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"meals":[],"supplements":[],"wellbeing":[],"measurements":[],"bloodTests":[],"recipes":[]}`, string(raw))
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	src, _ := newTestStore(t)
	seedEverything(src)
	exported, err := src.ExportData()
	require.NoError(t, err)

	dst, _ := newTestStore(t)
	require.NoError(t, dst.ImportData(exported))

	assert.Equal(t, src.Snapshot(), dst.Snapshot())
}

func TestExportIsIndentedWithStableFieldOrder(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	out, err := s.ExportData()
	require.NoError(t, err)

	want := "{\n  \"meals\": [],\n  \"supplements\": [],\n  \"wellbeing\": [],\n  \"measurements\": [],\n  \"bloodTests\": [],\n  \"recipes\": []\n}"
	assert.Equal(t, want, string(out))
}

func TestImportInvalidPayloadLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	seedEverything(s)
	before := s.Snapshot()

	for _, payload := range []string{`{not json`, ``, `null`, `[1,2]`, `{"meals": "soon"}`} {
		err := s.ImportData([]byte(payload))
		require.Error(t, err, "payload %q", payload)
		assert.ErrorIs(t, err, store.ErrInvalidPayload)
		assert.Equal(t, before, s.Snapshot(), "payload %q", payload)
	}
}

func TestImportDefaultsMissingKeysAndIgnoresUnknown(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	seedEverything(s)

	require.NoError(t, s.ImportData([]byte(`{"meals":[{"id":"x","date":"2024-02-02","type":"dinner","time":"19:00","description":"Рыба","calories":500,"completed":true}],"theme":"dark"}`)))

	data := s.Snapshot()
	require.Len(t, data.Meals, 1)
	assert.Equal(t, "x", data.Meals[0].ID)
	assert.NotNil(t, data.Recipes)
	assert.Empty(t, data.Recipes)
	assert.Empty(t, data.Supplements)
	assert.Empty(t, data.BloodTests)
}

func TestMutationsArePersistedAndReloaded(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file, err := storage.NewFile(filepath.Join(dir, "data"))
	require.NoError(t, err)

	s, err := store.Open(file)
	require.NoError(t, err)
	seedEverything(s)
	s.ToggleMealCompleted("m1")
	require.NoError(t, s.Err())

	reopened, err := store.Open(file)
	require.NoError(t, err)
	assert.Equal(t, s.Snapshot(), reopened.Snapshot())
}

func TestPersistedSnapshotHasExactlySixCollections(t *testing.T) {
	t.Parallel()
	s, mem := newTestStore(t)
	seedEverything(s)

	raw, ok, err := mem.Load(store.DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	keys := []string{}
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"meals", "supplements", "wellbeing", "measurements", "bloodTests", "recipes"}, keys)
}

func TestOpenDegradesOnMalformedSnapshot(t *testing.T) {
	t.Parallel()
	mem := storage.NewMemory()
	require.NoError(t, mem.Save(store.DefaultKey, []byte("{broken")))

	s, err := store.Open(mem)
	require.NoError(t, err)
	assert.Empty(t, s.Meals())
	assert.NotNil(t, s.Recipes())
}

func TestOpenUsesCustomKey(t *testing.T) {
	t.Parallel()
	mem := storage.NewMemory()
	s, err := store.Open(mem, store.WithKey("other-profile"))
	require.NoError(t, err)
	s.AddMeal(model.MealEntry{ID: "a"})

	_, ok, err := mem.Load("other-profile")
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = mem.Load(store.DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
