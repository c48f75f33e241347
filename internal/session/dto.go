// AngelaMos | 2026
// dto.go

package session

import (
	"time"

	"github.com/carterperez-dev/meucorpo/internal/catalog"
	"github.com/carterperez-dev/meucorpo/internal/metrics"
)

type UpdateProfileRequest struct {
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	AgeYears      *int     `json:"age_years,omitempty"`
	Sex           *string  `json:"sex,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
}

// ToPatch parses the enum fields that were sent. Unknown values wrap
// core.ErrInvalidInput.
func (r UpdateProfileRequest) ToPatch() (ProfilePatch, error) {
	p := ProfilePatch{
		WeightKg: r.WeightKg,
		HeightCm: r.HeightCm,
		AgeYears: r.AgeYears,
	}
	if r.Sex != nil {
		v, err := metrics.ParseSex(*r.Sex)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.Sex = &v
	}
	if r.ActivityLevel != nil {
		v, err := metrics.ParseActivityLevel(*r.ActivityLevel)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.ActivityLevel = &v
	}
	if r.Goal != nil {
		v, err := metrics.ParseGoal(*r.Goal)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.Goal = &v
	}
	return p, nil
}

type SubscribeRequest struct {
	Plan string `json:"plan" validate:"required"`
}

type DialogRequest struct {
	Open *bool `json:"open" validate:"required"`
}

type CopyRequest struct {
	Target string `json:"target" validate:"required"`
}

type ShareRequest struct {
	Platform string `json:"platform" validate:"required"`
}

type ProfileResponse struct {
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	AgeYears      int     `json:"age_years"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

type WorkoutProgress struct {
	CompletedIDs []int `json:"completed_ids"`
	Completed    int   `json:"completed"`
	Total        int   `json:"total"`
}

type SubscriptionResponse struct {
	IsPremium          bool       `json:"is_premium"`
	Plan               string     `json:"plan,omitempty"`
	SubscribedAt       *time.Time `json:"subscribed_at,omitempty"`
	TrialDaysRemaining int        `json:"trial_days_remaining"`
	TrialEnding        bool       `json:"trial_ending"`
	TrialBannerVisible bool       `json:"trial_banner_visible"`
}

type UIResponse struct {
	ShowCalculator  bool `json:"show_calculator"`
	ShowShare       bool `json:"show_share"`
	ShowPricing     bool `json:"show_pricing"`
	ShowTrialBanner bool `json:"show_trial_banner"`
	Copied          bool `json:"copied"`
}

type SessionResponse struct {
	ID           string               `json:"id"`
	Profile      ProfileResponse      `json:"profile"`
	Metrics      metrics.Response     `json:"metrics"`
	Workouts     WorkoutProgress      `json:"workouts"`
	Subscription SubscriptionResponse `json:"subscription"`
	UI           UIResponse           `json:"ui"`
	MealTotals   catalog.MealTotals   `json:"meal_totals"`
}

type CopyResponse struct {
	Text    string          `json:"text"`
	Session SessionResponse `json:"session"`
}

type ShareResponse struct {
	Platform  string `json:"platform"`
	IntentURL string `json:"intent_url"`
}

func ToSessionResponse(v *View) SessionResponse {
	s := v.State

	ids := s.Completed.IDs()
	if ids == nil {
		ids = []int{}
	}

	sub := SubscriptionResponse{
		IsPremium:          s.Subscription.IsPremium,
		Plan:               string(s.Subscription.Plan),
		TrialDaysRemaining: s.Subscription.TrialDaysRemaining,
		TrialEnding:        s.Subscription.TrialEnding(),
		TrialBannerVisible: s.TrialBannerVisible(),
	}
	if !s.Subscription.SubscribedAt.IsZero() {
		at := s.Subscription.SubscribedAt
		sub.SubscribedAt = &at
	}

	return SessionResponse{
		ID:      v.ID,
		Profile: ToProfileResponse(s.Profile),
		Metrics: metrics.ToResponse(v.Metrics),
		Workouts: WorkoutProgress{
			CompletedIDs: ids,
			Completed:    len(ids),
			Total:        catalog.WorkoutCount(),
		},
		Subscription: sub,
		UI: UIResponse{
			ShowCalculator:  s.UI.ShowCalculator,
			ShowShare:       s.UI.ShowShare,
			ShowPricing:     s.UI.ShowPricing,
			ShowTrialBanner: s.UI.ShowTrialBanner,
			Copied:          s.UI.Copied,
		},
		MealTotals: catalog.MealPlanTotals(),
	}
}

func ToProfileResponse(p metrics.BiometricProfile) ProfileResponse {
	return ProfileResponse{
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		AgeYears:      p.AgeYears,
		Sex:           string(p.Sex),
		ActivityLevel: string(p.ActivityLevel),
		Goal:          string(p.Goal),
	}
}
