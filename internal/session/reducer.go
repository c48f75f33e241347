// AngelaMos | 2026
// reducer.go

package session

import (
	"time"

	"github.com/carterperez-dev/meucorpo/internal/catalog"
	"github.com/carterperez-dev/meucorpo/internal/metrics"
)

// Action is a discrete user or timer event applied by Reduce.
type Action interface {
	actionName() string
}

type ProfilePatch struct {
	WeightKg      *float64
	HeightCm      *float64
	AgeYears      *int
	Sex           *metrics.Sex
	ActivityLevel *metrics.ActivityLevel
	Goal          *metrics.Goal
}

type UpdateProfile struct {
	Patch ProfilePatch
}

// ToggleWorkout flips completion for a catalog workout. Ids outside the
// catalog leave the state untouched.
type ToggleWorkout struct {
	WorkoutID int
}

type TrialTick struct {
	At time.Time
}

// Subscribe accepts any plan; the plan is recorded for display only.
type Subscribe struct {
	Plan catalog.PlanID
	At   time.Time
}

type SetDialog struct {
	Dialog Dialog
	Open   bool
}

type DismissTrialBanner struct{}

type MarkCopied struct{}

// ClearCopied resets the copied flag only if no newer copy happened since
// the generation it was scheduled for.
type ClearCopied struct {
	Generation uint64
}

func (UpdateProfile) actionName() string      { return "update_profile" }
func (ToggleWorkout) actionName() string      { return "toggle_workout" }
func (TrialTick) actionName() string          { return "trial_tick" }
func (Subscribe) actionName() string          { return "subscribe" }
func (SetDialog) actionName() string          { return "set_dialog" }
func (DismissTrialBanner) actionName() string { return "dismiss_trial_banner" }
func (MarkCopied) actionName() string         { return "mark_copied" }
func (ClearCopied) actionName() string        { return "clear_copied" }

// Reduce returns the state after applying a. It never modifies s.
func Reduce(s State, a Action) State {
	next := s.clone()

	switch a := a.(type) {
	case UpdateProfile:
		next.Profile = applyPatch(next.Profile, a.Patch)

	case ToggleWorkout:
		if catalog.HasWorkout(a.WorkoutID) {
			next.Completed = next.Completed.toggled(a.WorkoutID)
		}

	case TrialTick:
		next.Subscription = tick(next.Subscription, a.At)

	case Subscribe:
		if !next.Subscription.IsPremium {
			next.Subscription.IsPremium = true
			next.Subscription.Plan = a.Plan
			next.Subscription.SubscribedAt = a.At
		}
		next.UI.ShowPricing = false
		next.UI.ShowTrialBanner = false

	case SetDialog:
		switch a.Dialog {
		case DialogCalculator:
			next.UI.ShowCalculator = a.Open
		case DialogShare:
			next.UI.ShowShare = a.Open
		case DialogPricing:
			next.UI.ShowPricing = a.Open
		}

	case DismissTrialBanner:
		next.UI.ShowTrialBanner = false

	case MarkCopied:
		next.UI.Copied = true
		next.UI.CopyGeneration++

	case ClearCopied:
		if a.Generation == next.UI.CopyGeneration {
			next.UI.Copied = false
		}
	}

	return next
}

// tick decrements the trial at most once per TrialDay. The anchor advances by
// exactly one day so ticker jitter never skips a day, and snaps to at when the
// tick arrives a full day or more late so a stalled ticker cannot decrement
// twice in quick succession.
func tick(sub Subscription, at time.Time) Subscription {
	if sub.IsPremium || sub.TrialDaysRemaining <= 0 {
		return sub
	}
	if at.Sub(sub.LastTrialTickAt) < TrialDay {
		return sub
	}

	sub.TrialDaysRemaining = max(0, sub.TrialDaysRemaining-1)
	sub.LastTrialTickAt = sub.LastTrialTickAt.Add(TrialDay)
	if at.Sub(sub.LastTrialTickAt) >= TrialDay {
		sub.LastTrialTickAt = at
	}
	return sub
}

func applyPatch(p metrics.BiometricProfile, patch ProfilePatch) metrics.BiometricProfile {
	if patch.WeightKg != nil {
		p.WeightKg = *patch.WeightKg
	}
	if patch.HeightCm != nil {
		p.HeightCm = *patch.HeightCm
	}
	if patch.AgeYears != nil {
		p.AgeYears = *patch.AgeYears
	}
	if patch.Sex != nil {
		p.Sex = *patch.Sex
	}
	if patch.ActivityLevel != nil {
		p.ActivityLevel = *patch.ActivityLevel
	}
	if patch.Goal != nil {
		p.Goal = *patch.Goal
	}
	return p
}
