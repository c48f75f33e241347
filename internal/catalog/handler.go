// AngelaMos | 2026
// handler.go

package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

type MealPlanResponse struct {
	Meals  []Meal     `json:"meals"`
	Totals MealTotals `json:"totals"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/workouts", h.ListWorkouts)
		r.Get("/workouts/{workoutID}", h.GetWorkout)
		r.Get("/meals", h.ListMeals)
		r.Get("/plans", h.ListPlans)
	})
}

func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	core.OK(w, Workouts())
}

func (h *Handler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "workoutID"))
	if err != nil {
		core.BadRequest(w, "workout id must be an integer")
		return
	}

	wk, ok := WorkoutByID(id)
	if !ok {
		core.NotFound(w, "workout")
		return
	}

	core.OK(w, wk)
}

func (h *Handler) ListMeals(w http.ResponseWriter, r *http.Request) {
	core.OK(w, MealPlanResponse{
		Meals:  Meals(),
		Totals: MealPlanTotals(),
	})
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	core.OK(w, Plans())
}
