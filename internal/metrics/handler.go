// AngelaMos | 2026
// handler.go

package metrics

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

// Request is a profile for a one-off calculation. Omitted fields take the
// default profile's value. Numbers are not range checked.
type Request struct {
	WeightKg      *float64 `json:"weight_kg"`
	HeightCm      *float64 `json:"height_cm"`
	AgeYears      *int     `json:"age_years"`
	Sex           string   `json:"sex"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
}

// ToProfile fills omitted fields from the default profile. Unknown enum
// values wrap core.ErrInvalidInput.
func (r Request) ToProfile() (BiometricProfile, error) {
	p := DefaultProfile()
	if r.WeightKg != nil {
		p.WeightKg = *r.WeightKg
	}
	if r.HeightCm != nil {
		p.HeightCm = *r.HeightCm
	}
	if r.AgeYears != nil {
		p.AgeYears = *r.AgeYears
	}

	var err error
	if r.Sex != "" {
		if p.Sex, err = ParseSex(r.Sex); err != nil {
			return BiometricProfile{}, err
		}
	}
	if r.ActivityLevel != "" {
		if p.ActivityLevel, err = ParseActivityLevel(r.ActivityLevel); err != nil {
			return BiometricProfile{}, err
		}
	}
	if r.Goal != "" {
		if p.Goal, err = ParseGoal(r.Goal); err != nil {
			return BiometricProfile{}, err
		}
	}
	return p, nil
}

// Response uses pointers so non-finite values from degenerate input (zero
// height) encode as null instead of failing the encoder.
type Response struct {
	BMI                *float64 `json:"bmi"`
	BMICategory        string   `json:"bmi_category"`
	IdealWeightKg      *float64 `json:"ideal_weight_kg"`
	BMR                *float64 `json:"bmr"`
	TDEE               *float64 `json:"tdee"`
	DailyCalorieTarget int      `json:"daily_calorie_target"`
}

type CalculationResponse struct {
	Profile BiometricProfile `json:"profile"`
	Metrics Response         `json:"metrics"`
}

func ToResponse(m DerivedMetrics) Response {
	return Response{
		BMI:                finite(m.BMI),
		BMICategory:        string(m.BMICategory),
		IdealWeightKg:      finite(m.IdealWeightKg),
		BMR:                finite(m.BMR),
		TDEE:               finite(m.TDEE),
		DailyCalorieTarget: m.DailyCalorieTarget,
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type Handler struct {
	validator *validator.Validate
}

func NewHandler() *Handler {
	return &Handler{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/metrics", h.Calculate)
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := req.ToProfile()
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}
	core.OK(w, CalculationResponse{
		Profile: p,
		Metrics: ToResponse(Derive(p)),
	})
}
