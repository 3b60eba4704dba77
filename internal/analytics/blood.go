package analytics

import (
	"slices"
	"strings"

	"github.com/PavelMelnik94/my-tracker/internal/model"
)

type BloodAnalysis struct {
	Test            model.BloodTestEntry `json:"test"`
	Warnings        []string             `json:"warnings"`
	Recommendations []string             `json:"recommendations"`
}

// Healthy reports whether no rule fired.
func (a BloodAnalysis) Healthy() bool {
	return len(a.Warnings) == 0 && len(a.Recommendations) == 0
}

type finding struct {
	warning         string
	recommendations []string
}

type markerRule struct {
	value func(model.BloodTestEntry) *float64
	check func(v float64) *finding
}

// bloodRules run in this order and their findings accumulate.
var bloodRules = []markerRule{
	{
		value: func(b model.BloodTestEntry) *float64 { return b.Leptin },
		check: func(v float64) *finding {
			switch {
			case v < 2:
				return &finding{"Критически низкий уровень лептина", []string{
					"Увеличьте калорийность рациона, включите больше здоровых жиров",
					"Рекомендуются: авокадо, орехи, жирная рыба, оливковое масло",
					"Попробуйте специальные рецепты для повышения лептина",
				}}
			case v < 5:
				return &finding{"Низкий уровень лептина", []string{
					"Следите за достаточной калорийностью питания",
				}}
			}
			return nil
		},
	},
	{
		value: func(b model.BloodTestEntry) *float64 { return b.VitaminD },
		check: func(v float64) *finding {
			switch {
			case v < 20:
				return &finding{"Дефицит витамина D", []string{
					"Увеличьте потребление продуктов, богатых витамином D",
					"Рекомендуются: жирная рыба (лосось, скумбрия), печень трески, яичные желтки",
					"Рассмотрите прием добавок витамина D3 (1000-2000 МЕ/день)",
					"Больше времени проводите на солнце (15-20 минут в день)",
				}}
			case v < 30:
				return &finding{"Недостаточный уровень витамина D", []string{
					"Увеличьте потребление витамина D через питание и солнечный свет",
				}}
			}
			return nil
		},
	},
	{
		value: func(b model.BloodTestEntry) *float64 { return b.HomaIR },
		check: func(v float64) *finding {
			switch {
			case v > 2.5:
				return &finding{"Признаки инсулинорезистентности", []string{
					"Снизьте потребление простых углеводов",
					"Увеличьте физическую активность (минимум 30 минут ходьбы ежедневно)",
					"Добавьте больше клетчатки в рацион",
				}}
			case v > 2:
				return &finding{"Повышенный HOMA-IR", []string{
					"Контролируйте потребление углеводов",
				}}
			}
			return nil
		},
	},
	{
		value: func(b model.BloodTestEntry) *float64 { return b.Iron },
		check: func(v float64) *finding {
			switch {
			case v < 60:
				return &finding{"Низкий уровень железа", []string{
					"Увеличьте потребление красного мяса, печени, бобовых",
					"Сочетайте железо с витамином C для лучшего усвоения",
				}}
			case v > 170:
				return &finding{"Повышенный уровень железа", []string{
					"Ограничьте продукты, богатые железом",
					"Проконсультируйтесь с врачом",
				}}
			}
			return nil
		},
	},
}

// AnalyzeBloodTest applies the marker rules to one test. Missing markers are skipped.
func AnalyzeBloodTest(test model.BloodTestEntry) BloodAnalysis {
	out := BloodAnalysis{
		Test:            test.Clone(),
		Warnings:        []string{},
		Recommendations: []string{},
	}
	for _, rule := range bloodRules {
		v := rule.value(test)
		if v == nil {
			continue
		}
		if f := rule.check(*v); f != nil {
			out.Warnings = append(out.Warnings, f.warning)
			out.Recommendations = append(out.Recommendations, f.recommendations...)
		}
	}
	return out
}

// LatestBloodTest returns the last test after a stable ascending sort by date, so
// of several tests on the same date the one added last wins.
func LatestBloodTest(tests []model.BloodTestEntry) (model.BloodTestEntry, bool) {
	if len(tests) == 0 {
		return model.BloodTestEntry{}, false
	}
	sorted := slices.Clone(tests)
	slices.SortStableFunc(sorted, func(a, b model.BloodTestEntry) int { return strings.Compare(a.Date, b.Date) })
	return sorted[len(sorted)-1].Clone(), true
}

func BloodTestReport(tests []model.BloodTestEntry) (BloodAnalysis, bool) {
	latest, ok := LatestBloodTest(tests)
	if !ok {
		return BloodAnalysis{}, false
	}
	return AnalyzeBloodTest(latest), true
}
