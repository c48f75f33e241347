// AngelaMos | 2026
// handler.go

package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/meucorpo/internal/catalog"
	"github.com/carterperez-dev/meucorpo/internal/core"
	"github.com/carterperez-dev/meucorpo/internal/metrics"
	"github.com/carterperez-dev/meucorpo/internal/referral"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.Create)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Delete("/", h.Delete)
			r.Patch("/profile", h.UpdateProfile)
			r.Get("/metrics", h.GetMetrics)
			r.Post("/workouts/{workoutID}/toggle", h.ToggleWorkout)
			r.Post("/subscribe", h.Subscribe)
			r.Put("/dialogs/{dialog}", h.SetDialog)
			r.Post("/trial-banner/dismiss", h.DismissTrialBanner)
			r.Post("/copy", h.Copy)
			r.Post("/share", h.Share)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Create(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Location", "/v1/sessions/"+view.ID)
	core.Created(w, ToSessionResponse(view))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToSessionResponse(view))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.writeError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.writeError(w, err)
		return
	}

	view, err := h.service.UpdateProfile(
		r.Context(),
		chi.URLParam(r, "sessionID"),
		patch,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToSessionResponse(view))
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Metrics(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, metrics.ToResponse(m))
}

func (h *Handler) ToggleWorkout(w http.ResponseWriter, r *http.Request) {
	workoutID, err := strconv.Atoi(chi.URLParam(r, "workoutID"))
	if err != nil {
		core.BadRequest(w, "workout id must be an integer")
		return
	}

	view, err := h.service.ToggleWorkout(
		r.Context(),
		chi.URLParam(r, "sessionID"),
		workoutID,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToSessionResponse(view))
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := catalog.ParsePlanID(req.Plan)
	if err != nil {
		h.writeError(w, err)
		return
	}

	view, err := h.service.Subscribe(
		r.Context(),
		chi.URLParam(r, "sessionID"),
		plan,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToSessionResponse(view))
}

func (h *Handler) SetDialog(w http.ResponseWriter, r *http.Request) {
	dialog := Dialog(chi.URLParam(r, "dialog"))
	switch dialog {
	case DialogCalculator, DialogShare, DialogPricing:
	default:
		core.BadRequest(w, "dialog must be one of [calculator share pricing]")
		return
	}

	var req DialogRequest
	if !h.decode(w, r, &req) {
		return
	}

	view, err := h.service.SetDialog(
		r.Context(),
		chi.URLParam(r, "sessionID"),
		dialog,
		*req.Open,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToSessionResponse(view))
}

func (h *Handler) DismissTrialBanner(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.DismissTrialBanner(
		r.Context(),
		chi.URLParam(r, "sessionID"),
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToSessionResponse(view))
}

func (h *Handler) Copy(w http.ResponseWriter, r *http.Request) {
	var req CopyRequest
	if !h.decode(w, r, &req) {
		return
	}

	target, err := referral.ParseCopyTarget(req.Target)
	if err != nil {
		h.writeError(w, err)
		return
	}

	res, err := h.service.Copy(
		r.Context(),
		chi.URLParam(r, "sessionID"),
		target,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, CopyResponse{
		Text:    res.Text,
		Session: ToSessionResponse(res.View),
	})
}

func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if !h.decode(w, r, &req) {
		return
	}

	platform, err := referral.ParsePlatform(req.Platform)
	if err != nil {
		h.writeError(w, err)
		return
	}

	res, err := h.service.Share(
		r.Context(),
		chi.URLParam(r, "sessionID"),
		platform,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ShareResponse{
		Platform:  string(res.Platform),
		IntentURL: res.IntentURL,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.BadRequest(w, "invalid request body")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return false
	}

	return true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownWorkout):
		core.NotFound(w, "workout")
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "session")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	case errors.Is(err, core.ErrUnavailable):
		core.ServiceUnavailable(w, "session capacity reached")
	default:
		core.InternalServerError(w, err)
	}
}
