// AngelaMos | 2026
// calculator.go

package metrics

import (
	"math"
)

const (
	idealCoefficientMale   = 22.0
	idealCoefficientFemale = 21.0

	bmiNormalFloor     = 18.5
	bmiOverweightFloor = 25.0
	bmiObeseFloor      = 30.0
)

var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalOffsets = map[Goal]float64{
	GoalLose:     -500,
	GoalMaintain: 0,
	GoalGain:     500,
}

// DerivedMetrics is recomputed from a profile on every read and never stored.
type DerivedMetrics struct {
	BMI                float64
	BMICategory        BMICategory
	IdealWeightKg      float64
	BMR                float64
	TDEE               float64
	DailyCalorieTarget int
}

// Derive computes every metric for p. The category is taken from the rounded
// BMI so that what the user sees and how it is classified never disagree.
func Derive(p BiometricProfile) DerivedMetrics {
	bmi := BMI(p)
	return DerivedMetrics{
		BMI:                bmi,
		BMICategory:        CategoryFor(bmi),
		IdealWeightKg:      IdealWeightKg(p),
		BMR:                BMR(p),
		TDEE:               TDEE(p),
		DailyCalorieTarget: DailyCalorieTarget(p),
	}
}

// BMI is weight over height in metres squared, rounded to one decimal.
// A zero height yields +Inf or NaN.
func BMI(p BiometricProfile) float64 {
	m := p.HeightCm / 100
	return roundTo1(p.WeightKg / (m * m))
}

// CategoryFor classifies a BMI value. Each band includes its lower bound.
func CategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < bmiNormalFloor:
		return CategoryUnderweight
	case bmi < bmiOverweightFloor:
		return CategoryNormal
	case bmi < bmiObeseFloor:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func IdealWeightKg(p BiometricProfile) float64 {
	m := p.HeightCm / 100
	return roundTo1(idealCoefficient(p.Sex) * m * m)
}

func idealCoefficient(s Sex) float64 {
	if s == SexMale {
		return idealCoefficientMale
	}
	return idealCoefficientFemale
}

// BMR uses the revised Harris-Benedict constants.
func BMR(p BiometricProfile) float64 {
	age := float64(p.AgeYears)
	if p.Sex == SexMale {
		return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*age
	}
	return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*age
}

// TDEE scales BMR by the activity factor. An unrecognised level has factor 0.
func TDEE(p BiometricProfile) float64 {
	return BMR(p) * activityFactors[p.ActivityLevel]
}

// DailyCalorieTarget applies the goal offset to TDEE and rounds half away from
// zero. There is no floor: extreme inputs can produce a negative target.
func DailyCalorieTarget(p BiometricProfile) int {
	return int(math.Round(TDEE(p) + goalOffsets[p.Goal]))
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
