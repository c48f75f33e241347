// AngelaMos | 2026
// service.go

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/meucorpo/internal/catalog"
	"github.com/carterperez-dev/meucorpo/internal/core"
	"github.com/carterperez-dev/meucorpo/internal/metrics"
	"github.com/carterperez-dev/meucorpo/internal/referral"
)

const tracerName = "github.com/carterperez-dev/meucorpo/internal/session"

var ErrUnknownWorkout = fmt.Errorf("workout: %w", core.ErrNotFound)

// View is a session's state together with the metrics derived from it.
type View struct {
	ID      string
	State   State
	Metrics metrics.DerivedMetrics
}

type CopyResult struct {
	View *View
	Text string
}

type ShareResult struct {
	Platform  referral.Platform
	IntentURL string
}

type ServiceConfig struct {
	Repo      Repository
	Sharer    *referral.Sharer
	Clipboard referral.Clipboard
	Launcher  referral.Launcher
	Clock     func() time.Time
}

type Service struct {
	repo      Repository
	sharer    *referral.Sharer
	clipboard referral.Clipboard
	launcher  referral.Launcher
	clock     func() time.Time
	tracer    trace.Tracer
}

func NewService(cfg ServiceConfig) *Service {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = referral.LogClipboard{}
	}
	if cfg.Launcher == nil {
		cfg.Launcher = referral.LogLauncher{}
	}

	return &Service{
		repo:      cfg.Repo,
		sharer:    cfg.Sharer,
		clipboard: cfg.Clipboard,
		launcher:  cfg.Launcher,
		clock:     cfg.Clock,
		tracer:    otel.Tracer(tracerName),
	}
}

func (s *Service) Create(ctx context.Context) (*View, error) {
	ctx, span := s.tracer.Start(ctx, "session.Create")
	defer span.End()

	sess, err := s.repo.Create(ctx)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("session.id", sess.ID()))
	return newView(sess.ID(), sess.Snapshot()), nil
}

func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return newView(id, sess.Snapshot()), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.start(ctx, "session.Delete", id)
	defer span.End()

	return s.repo.Delete(ctx, id)
}

func (s *Service) Metrics(
	ctx context.Context,
	id string,
) (metrics.DerivedMetrics, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return metrics.DerivedMetrics{}, err
	}
	return sess.Snapshot().Metrics(), nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	id string,
	patch ProfilePatch,
) (*View, error) {
	ctx, span := s.start(ctx, "session.UpdateProfile", id)
	defer span.End()

	return s.dispatch(ctx, id, UpdateProfile{Patch: patch})
}

func (s *Service) ToggleWorkout(
	ctx context.Context,
	id string,
	workoutID int,
) (*View, error) {
	ctx, span := s.start(ctx, "session.ToggleWorkout", id)
	defer span.End()

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !catalog.HasWorkout(workoutID) {
		return nil, fmt.Errorf("toggle workout %d: %w", workoutID, ErrUnknownWorkout)
	}

	state, err := sess.Dispatch(ToggleWorkout{WorkoutID: workoutID})
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, mapClosed(id, err)
	}
	view := newView(id, state)

	core.AddSpanEvent(ctx, "workout.toggled",
		attribute.Int("workout.id", workoutID),
		attribute.Bool("workout.completed", view.State.Completed.Has(workoutID)),
	)
	return view, nil
}

func (s *Service) Subscribe(
	ctx context.Context,
	id string,
	plan catalog.PlanID,
) (*View, error) {
	ctx, span := s.start(ctx, "session.Subscribe", id)
	defer span.End()

	view, err := s.dispatch(ctx, id, Subscribe{Plan: plan, At: s.clock()})
	if err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "subscription.premium",
		attribute.String("plan", string(view.State.Subscription.Plan)),
	)
	slog.InfoContext(ctx, "session subscribed",
		"session_id", id,
		"plan", plan,
	)
	return view, nil
}

func (s *Service) SetDialog(
	ctx context.Context,
	id string,
	dialog Dialog,
	open bool,
) (*View, error) {
	return s.dispatch(ctx, id, SetDialog{Dialog: dialog, Open: open})
}

func (s *Service) DismissTrialBanner(
	ctx context.Context,
	id string,
) (*View, error) {
	return s.dispatch(ctx, id, DismissTrialBanner{})
}

// Copy hands the requested referral text to the clipboard and raises the
// transient copied flag.
func (s *Service) Copy(
	ctx context.Context,
	id string,
	target referral.CopyTarget,
) (*CopyResult, error) {
	ctx, span := s.start(ctx, "session.Copy", id)
	defer span.End()

	text, err := s.sharer.CopyText(target)
	if err != nil {
		return nil, err
	}

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.clipboard.Copy(ctx, text); err != nil {
		slog.WarnContext(ctx, "clipboard copy failed",
			"session_id", id,
			"error", err,
		)
	}

	state, err := sess.MarkCopied()
	if err != nil {
		return nil, mapClosed(id, err)
	}

	return &CopyResult{View: newView(id, state), Text: text}, nil
}

// Share builds the platform intent and hands it to the launcher. Launch
// failures are logged; the caller still receives the URL.
func (s *Service) Share(
	ctx context.Context,
	id string,
	platform referral.Platform,
) (*ShareResult, error) {
	ctx, span := s.start(ctx, "session.Share", id)
	defer span.End()

	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	intent, err := s.sharer.IntentURL(platform)
	if err != nil {
		return nil, err
	}

	if err := s.launcher.Launch(ctx, platform, intent); err != nil {
		slog.WarnContext(ctx, "share launch failed",
			"session_id", id,
			"platform", platform,
			"error", err,
		)
	}

	core.AddSpanEvent(ctx, "referral.shared",
		attribute.String("platform", string(platform)),
	)
	return &ShareResult{Platform: platform, IntentURL: intent}, nil
}

func (s *Service) dispatch(
	ctx context.Context,
	id string,
	a Action,
) (*View, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	state, err := sess.Dispatch(a)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, mapClosed(id, err)
	}

	return newView(id, state), nil
}

func (s *Service) start(
	ctx context.Context,
	name, id string,
) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("session.id", id)),
	)
}

func newView(id string, state State) *View {
	return &View{
		ID:      id,
		State:   state,
		Metrics: state.Metrics(),
	}
}

func mapClosed(id string, err error) error {
	if errors.Is(err, ErrClosed) {
		return fmt.Errorf("session %s: %w", id, core.ErrNotFound)
	}
	return err
}
