// AngelaMos | 2026
// entity.go

package session

import (
	"maps"
	"slices"
	"time"

	"github.com/carterperez-dev/meucorpo/internal/catalog"
	"github.com/carterperez-dev/meucorpo/internal/metrics"
)

const (
	// TrialDay is the minimum real time between two trial decrements.
	TrialDay = 24 * time.Hour

	trialEndingThreshold = 3
)

type Dialog string

const (
	DialogCalculator Dialog = "calculator"
	DialogShare      Dialog = "share"
	DialogPricing    Dialog = "pricing"
)

// CompletionSet holds the ids of workouts marked done. Treat it as immutable:
// transitions produce a new set.
type CompletionSet map[int]struct{}

func (c CompletionSet) Has(id int) bool {
	_, ok := c[id]
	return ok
}

func (c CompletionSet) Len() int {
	return len(c)
}

// IDs returns the members in ascending order.
func (c CompletionSet) IDs() []int {
	return slices.Sorted(maps.Keys(c))
}

func (c CompletionSet) toggled(id int) CompletionSet {
	next := maps.Clone(c)
	if next == nil {
		next = CompletionSet{}
	}
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

type Subscription struct {
	IsPremium          bool
	Plan               catalog.PlanID
	SubscribedAt       time.Time
	TrialDaysRemaining int
	LastTrialTickAt    time.Time
}

func (s Subscription) TrialEnding() bool {
	return !s.IsPremium && s.TrialDaysRemaining <= trialEndingThreshold
}

type UIFlags struct {
	ShowCalculator  bool
	ShowShare       bool
	ShowPricing     bool
	ShowTrialBanner bool
	Copied          bool
	CopyGeneration  uint64
}

// State is everything a dashboard page holds between reloads.
type State struct {
	Profile      metrics.BiometricProfile
	Completed    CompletionSet
	Subscription Subscription
	UI           UIFlags
}

func NewState(trialDays int, now time.Time) State {
	return State{
		Profile:   metrics.DefaultProfile(),
		Completed: CompletionSet{},
		Subscription: Subscription{
			TrialDaysRemaining: trialDays,
			LastTrialTickAt:    now,
		},
		UI: UIFlags{
			ShowTrialBanner: true,
		},
	}
}

// Metrics are derived on every call, never cached on the state.
func (s State) Metrics() metrics.DerivedMetrics {
	return metrics.Derive(s.Profile)
}

func (s State) TrialBannerVisible() bool {
	return !s.Subscription.IsPremium && s.UI.ShowTrialBanner
}

// TrialActive reports whether the countdown still has anything to do.
func (s State) TrialActive() bool {
	return !s.Subscription.IsPremium && s.Subscription.TrialDaysRemaining > 0
}

func (s State) clone() State {
	s.Completed = maps.Clone(s.Completed)
	return s
}
