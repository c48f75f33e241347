// AngelaMos | 2026
// calculator_test.go

package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

func TestDerive_DefaultProfile(t *testing.T) {
	p := DefaultProfile()
	got := Derive(p)

	if got.BMI != 24.2 {
		t.Errorf("BMI = %v, want 24.2", got.BMI)
	}
	if got.BMICategory != CategoryNormal {
		t.Errorf("BMICategory = %v, want normal", got.BMICategory)
	}
	if got.IdealWeightKg != 63.6 {
		t.Errorf("IdealWeightKg = %v, want 63.6", got.IdealWeightKg)
	}

	bmr := 88.362 + 13.397*70 + 4.799*170 - 5.677*25
	want := int(math.Round(bmr * 1.55))
	if got.DailyCalorieTarget != want {
		t.Errorf("DailyCalorieTarget = %v, want %v", got.DailyCalorieTarget, want)
	}
	if got.DailyCalorieTarget != 2635 {
		t.Errorf("DailyCalorieTarget = %v, want 2635", got.DailyCalorieTarget)
	}
}

func TestCategoryFor_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want BMICategory
	}{
		{0, CategoryUnderweight},
		{18.4, CategoryUnderweight},
		{18.5, CategoryNormal},
		{24.999, CategoryNormal},
		{25.0, CategoryOverweight},
		{29.9, CategoryOverweight},
		{30.0, CategoryObese},
		{45, CategoryObese},
	}

	for _, tt := range tests {
		if got := CategoryFor(tt.bmi); got != tt.want {
			t.Errorf("CategoryFor(%v) = %v, want %v", tt.bmi, got, tt.want)
		}
	}
}

func TestBMI_RoundsToOneDecimal(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		want   float64
	}{
		{"70kg 170cm", 70, 170, 24.2},
		{"50kg 165cm", 50, 165, 18.4},
		{"90kg 180cm", 90, 180, 27.8},
		{"100kg 160cm", 100, 160, 39.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			p.WeightKg = tt.weight
			p.HeightCm = tt.height
			if got := BMI(p); got != tt.want {
				t.Errorf("BMI = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBMI_ZeroHeightIsNotFinite(t *testing.T) {
	p := DefaultProfile()
	p.HeightCm = 0

	got := BMI(p)
	if !math.IsInf(got, 1) {
		t.Errorf("BMI with zero height = %v, want +Inf", got)
	}
	if CategoryFor(got) != CategoryObese {
		t.Errorf("CategoryFor(+Inf) = %v, want obese", CategoryFor(got))
	}
}

func TestIdealWeightKg_SexRatio(t *testing.T) {
	for _, h := range []float64{150, 163, 170, 185, 201} {
		male := DefaultProfile()
		male.HeightCm = h
		female := male
		female.Sex = SexFemale

		m := h / 100
		if got, want := IdealWeightKg(male), math.Round(22*m*m*10)/10; got != want {
			t.Errorf("male ideal weight at %vcm = %v, want %v", h, got, want)
		}
		if got, want := IdealWeightKg(female), math.Round(21*m*m*10)/10; got != want {
			t.Errorf("female ideal weight at %vcm = %v, want %v", h, got, want)
		}

		ratio := IdealWeightKg(male) / IdealWeightKg(female)
		if math.Abs(ratio-22.0/21.0) > 0.01 {
			t.Errorf("male/female ratio at %vcm = %v, want ~%v", h, ratio, 22.0/21.0)
		}
	}
}

func TestDailyCalorieTarget_MonotonicInActivity(t *testing.T) {
	for _, sex := range []Sex{SexMale, SexFemale} {
		for _, goal := range []Goal{GoalLose, GoalMaintain, GoalGain} {
			p := DefaultProfile()
			p.Sex = sex
			p.Goal = goal

			prev := math.MinInt
			for _, level := range ActivityLevels {
				p.ActivityLevel = level
				got := DailyCalorieTarget(p)
				if got <= prev {
					t.Errorf("%s/%s: target at %s = %d, not above %d",
						sex, goal, level, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestDailyCalorieTarget_Formula(t *testing.T) {
	tests := []struct {
		name    string
		profile BiometricProfile
	}{
		{"female sedentary lose", BiometricProfile{
			WeightKg: 60, HeightCm: 165, AgeYears: 30,
			Sex: SexFemale, ActivityLevel: ActivitySedentary, Goal: GoalLose,
		}},
		{"male very active gain", BiometricProfile{
			WeightKg: 85, HeightCm: 182, AgeYears: 41,
			Sex: SexMale, ActivityLevel: ActivityVeryActive, Goal: GoalGain,
		}},
		{"female light maintain", BiometricProfile{
			WeightKg: 55.5, HeightCm: 158.5, AgeYears: 22,
			Sex: SexFemale, ActivityLevel: ActivityLight, Goal: GoalMaintain,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.profile
			var bmr float64
			if p.Sex == SexMale {
				bmr = 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.AgeYears)
			} else {
				bmr = 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.AgeYears)
			}
			want := int(math.Round(bmr*activityFactors[p.ActivityLevel] + goalOffsets[p.Goal]))

			if got := DailyCalorieTarget(p); got != want {
				t.Errorf("DailyCalorieTarget = %d, want %d", got, want)
			}
		})
	}
}

func TestDailyCalorieTarget_NoFloor(t *testing.T) {
	p := BiometricProfile{
		WeightKg: 1, HeightCm: 1, AgeYears: 120,
		Sex: SexMale, ActivityLevel: ActivitySedentary, Goal: GoalLose,
	}

	if got := DailyCalorieTarget(p); got >= 0 {
		t.Errorf("DailyCalorieTarget = %d, want negative", got)
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseSex("other"); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("ParseSex(other) error = %v, want ErrInvalidInput", err)
	}
	if got, err := ParseActivityLevel("veryActive"); err != nil || got != ActivityVeryActive {
		t.Errorf("ParseActivityLevel(veryActive) = %v, %v", got, err)
	}
	if _, err := ParseActivityLevel("very_active"); err == nil {
		t.Error("ParseActivityLevel(very_active) should fail")
	}
	if got, err := ParseGoal("gain"); err != nil || got != GoalGain {
		t.Errorf("ParseGoal(gain) = %v, %v", got, err)
	}
}
