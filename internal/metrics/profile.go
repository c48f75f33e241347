// AngelaMos | 2026
// profile.go

package metrics

import (
	"fmt"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// ActivityLevels lists every level from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type BMICategory string

const (
	CategoryUnderweight BMICategory = "underweight"
	CategoryNormal      BMICategory = "normal"
	CategoryOverweight  BMICategory = "overweight"
	CategoryObese       BMICategory = "obese"
)

// BiometricProfile is the user-entered input to every formula. Values are
// trusted as given; nothing here checks that they are positive.
type BiometricProfile struct {
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	AgeYears      int           `json:"age_years"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// DefaultProfile is what a fresh dashboard shows before the user edits anything.
func DefaultProfile() BiometricProfile {
	return BiometricProfile{
		WeightKg:      70,
		HeightCm:      170,
		AgeYears:      25,
		Sex:           SexMale,
		ActivityLevel: ActivityModerate,
		Goal:          GoalMaintain,
	}
}

func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), nil
	}
	return "", fmt.Errorf("parse sex %q: %w", s, core.ErrInvalidInput)
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	for _, level := range ActivityLevels {
		if string(level) == s {
			return level, nil
		}
	}
	return "", fmt.Errorf("parse activity level %q: %w", s, core.ErrInvalidInput)
}

func ParseGoal(s string) (Goal, error) {
	switch Goal(s) {
	case GoalLose, GoalMaintain, GoalGain:
		return Goal(s), nil
	}
	return "", fmt.Errorf("parse goal %q: %w", s, core.ErrInvalidInput)
}
