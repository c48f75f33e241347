// AngelaMos | 2026
// reducer_test.go

package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/carterperez-dev/meucorpo/internal/catalog"
	"github.com/carterperez-dev/meucorpo/internal/metrics"
)

var epoch = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

func TestNewState(t *testing.T) {
	s := NewState(7, epoch)

	if s.Subscription.IsPremium {
		t.Error("new state should start in trial")
	}
	if s.Subscription.TrialDaysRemaining != 7 {
		t.Errorf("TrialDaysRemaining = %d, want 7", s.Subscription.TrialDaysRemaining)
	}
	if !s.UI.ShowTrialBanner || !s.TrialBannerVisible() {
		t.Error("trial banner should start visible")
	}
	if s.Completed.Len() != 0 {
		t.Errorf("Completed.Len() = %d, want 0", s.Completed.Len())
	}
	if s.Profile != metrics.DefaultProfile() {
		t.Errorf("Profile = %+v, want default", s.Profile)
	}
}

func TestReduce_ToggleIsInvolution(t *testing.T) {
	s := NewState(7, epoch)

	once := Reduce(s, ToggleWorkout{WorkoutID: 1})
	if once.Completed.Len() != 1 || !once.Completed.Has(1) {
		t.Fatalf("after one toggle Completed = %v, want {1}", once.Completed.IDs())
	}

	twice := Reduce(once, ToggleWorkout{WorkoutID: 1})
	if twice.Completed.Len() != 0 {
		t.Errorf("after two toggles Completed = %v, want empty", twice.Completed.IDs())
	}

	multi := s
	for _, id := range []int{3, 1, 4, 1} {
		multi = Reduce(multi, ToggleWorkout{WorkoutID: id})
	}
	if got := multi.Completed.IDs(); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Errorf("Completed.IDs() = %v, want [3 4]", got)
	}
}

func TestReduce_ToggleUnknownWorkoutIgnored(t *testing.T) {
	s := NewState(7, epoch)
	next := Reduce(s, ToggleWorkout{WorkoutID: 42})

	if next.Completed.Len() != 0 {
		t.Errorf("unknown id changed CompletionSet: %v", next.Completed.IDs())
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := NewState(7, epoch)
	s = Reduce(s, ToggleWorkout{WorkoutID: 2})

	_ = Reduce(s, ToggleWorkout{WorkoutID: 2})
	_ = Reduce(s, ToggleWorkout{WorkoutID: 3})
	_ = Reduce(s, Subscribe{Plan: catalog.PlanMonthly})

	if !reflect.DeepEqual(s.Completed.IDs(), []int{2}) {
		t.Errorf("input CompletionSet mutated: %v", s.Completed.IDs())
	}
	if s.Subscription.IsPremium {
		t.Error("input subscription mutated")
	}
}

func TestReduce_TrialTick(t *testing.T) {
	tests := []struct {
		name    string
		offsets []time.Duration
		want    int
	}{
		{"same day does nothing", []time.Duration{time.Hour, 23 * time.Hour}, 7},
		{"one day", []time.Duration{24 * time.Hour}, 6},
		{"two ticks same day count once", []time.Duration{25 * time.Hour, 26 * time.Hour}, 6},
		{"consecutive days", []time.Duration{24 * time.Hour, 48 * time.Hour, 72 * time.Hour}, 4},
		{"late tick decrements once", []time.Duration{10 * 24 * time.Hour}, 6},
		{"prompt tick after late tick waits a day", []time.Duration{72 * time.Hour, 72*time.Hour + time.Minute}, 6},
		{"late tick then next day", []time.Duration{72 * time.Hour, 96 * time.Hour}, 5},
		{"jitter keeps daily cadence", []time.Duration{24*time.Hour + time.Minute, 48 * time.Hour}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(7, epoch)
			for _, off := range tt.offsets {
				s = Reduce(s, TrialTick{At: epoch.Add(off)})
			}
			if got := s.Subscription.TrialDaysRemaining; got != tt.want {
				t.Errorf("TrialDaysRemaining = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReduce_TrialNeverBelowZero(t *testing.T) {
	s := NewState(2, epoch)
	for day := 1; day <= 30; day++ {
		s = Reduce(s, TrialTick{At: epoch.Add(time.Duration(day) * TrialDay)})
		if s.Subscription.TrialDaysRemaining < 0 {
			t.Fatalf("day %d: TrialDaysRemaining = %d", day, s.Subscription.TrialDaysRemaining)
		}
	}
	if s.Subscription.TrialDaysRemaining != 0 {
		t.Errorf("TrialDaysRemaining = %d, want 0", s.Subscription.TrialDaysRemaining)
	}
	if s.TrialActive() {
		t.Error("trial should be inactive at zero days")
	}
}

func TestReduce_SubscribeIsIdempotentAndStopsTrial(t *testing.T) {
	s := NewState(7, epoch)
	s = Reduce(s, SetDialog{Dialog: DialogPricing, Open: true})

	s = Reduce(s, Subscribe{Plan: catalog.PlanAnnual, At: epoch})
	if !s.Subscription.IsPremium {
		t.Fatal("Subscribe did not set premium")
	}
	if s.UI.ShowPricing || s.UI.ShowTrialBanner || s.TrialBannerVisible() {
		t.Error("Subscribe should close pricing and hide the trial banner")
	}

	again := Reduce(s, Subscribe{Plan: catalog.PlanMonthly, At: epoch.Add(time.Hour)})
	if !again.Subscription.IsPremium {
		t.Error("second Subscribe reset premium")
	}
	if again.Subscription.Plan != catalog.PlanAnnual {
		t.Errorf("Plan = %q, want first plan kept", again.Subscription.Plan)
	}

	ticked := Reduce(again, TrialTick{At: epoch.Add(5 * TrialDay)})
	if ticked.Subscription.TrialDaysRemaining != 7 {
		t.Errorf("tick after premium changed days to %d", ticked.Subscription.TrialDaysRemaining)
	}
	if !ticked.Subscription.IsPremium {
		t.Error("tick after premium reset premium")
	}
}

func TestReduce_SubscribeWithExpiredTrial(t *testing.T) {
	s := NewState(0, epoch)
	s = Reduce(s, Subscribe{Plan: catalog.PlanMonthly, At: epoch})

	if !s.Subscription.IsPremium {
		t.Error("Subscribe must succeed regardless of remaining days")
	}
}

func TestReduce_UpdateProfile(t *testing.T) {
	s := NewState(7, epoch)
	weight := 82.5
	sex := metrics.SexFemale
	goal := metrics.GoalLose

	s = Reduce(s, UpdateProfile{Patch: ProfilePatch{
		WeightKg: &weight,
		Sex:      &sex,
		Goal:     &goal,
	}})

	want := metrics.DefaultProfile()
	want.WeightKg = 82.5
	want.Sex = metrics.SexFemale
	want.Goal = metrics.GoalLose

	if s.Profile != want {
		t.Errorf("Profile = %+v, want %+v", s.Profile, want)
	}
	if s.Metrics() != metrics.Derive(want) {
		t.Error("Metrics() is not a pure function of the profile")
	}
}

func TestReduce_Dialogs(t *testing.T) {
	s := NewState(7, epoch)

	s = Reduce(s, SetDialog{Dialog: DialogCalculator, Open: true})
	s = Reduce(s, SetDialog{Dialog: DialogShare, Open: true})
	if !s.UI.ShowCalculator || !s.UI.ShowShare || s.UI.ShowPricing {
		t.Errorf("UI = %+v", s.UI)
	}

	s = Reduce(s, SetDialog{Dialog: DialogShare, Open: false})
	s = Reduce(s, DismissTrialBanner{})
	if s.UI.ShowShare || s.UI.ShowTrialBanner {
		t.Errorf("UI = %+v", s.UI)
	}
}

func TestReduce_CopiedGenerations(t *testing.T) {
	s := NewState(7, epoch)

	s = Reduce(s, MarkCopied{})
	first := s.UI.CopyGeneration
	s = Reduce(s, MarkCopied{})

	s = Reduce(s, ClearCopied{Generation: first})
	if !s.UI.Copied {
		t.Error("stale clear hid a newer copy")
	}

	s = Reduce(s, ClearCopied{Generation: s.UI.CopyGeneration})
	if s.UI.Copied {
		t.Error("current clear did not reset copied")
	}
}

func TestSubscription_TrialEnding(t *testing.T) {
	tests := []struct {
		days    int
		premium bool
		want    bool
	}{
		{7, false, false},
		{4, false, false},
		{3, false, true},
		{0, false, true},
		{2, true, false},
	}

	for _, tt := range tests {
		sub := Subscription{TrialDaysRemaining: tt.days, IsPremium: tt.premium}
		if got := sub.TrialEnding(); got != tt.want {
			t.Errorf("TrialEnding(days=%d, premium=%v) = %v, want %v",
				tt.days, tt.premium, got, tt.want)
		}
	}
}
