package growth

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sandeepkv93/plantd/internal/model"
)

func TestIsFullyGrown(t *testing.T) {
	cases := []struct {
		c    model.Counts
		want bool
	}{
		{model.Counts{}, false},
		{model.Counts{Completed: 0, Total: 1}, false},
		{model.Counts{Completed: 1, Total: 1}, true},
		{model.Counts{Completed: 2, Total: 3}, false},
		{model.Counts{Completed: 3, Total: 3}, true},
	}
	for _, tc := range cases {
		if got := IsFullyGrown(tc.c); got != tc.want {
			t.Fatalf("IsFullyGrown(%+v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestDetectTransition(t *testing.T) {
	if got := DetectTransition(PhaseGrowing, PhaseFullyGrown); got != TransitionEntered {
		t.Fatalf("expected entered, got %s", got)
	}
	if got := DetectTransition(PhaseFullyGrown, PhaseGrowing); got != TransitionLeft {
		t.Fatalf("expected left, got %s", got)
	}
	if got := DetectTransition(PhaseFullyGrown, PhaseFullyGrown); got != TransitionNone {
		t.Fatalf("expected none, got %s", got)
	}
	if got := DetectTransition(PhaseGrowing, PhaseGrowing); got != TransitionNone {
		t.Fatalf("expected none, got %s", got)
	}
}

func TestShouldPulse(t *testing.T) {
	if !ShouldPulse(model.Counts{Completed: 1, Total: 3}, model.Counts{Completed: 2, Total: 3}) {
		t.Fatal("expected pulse on completion")
	}
	if ShouldPulse(model.Counts{Completed: 1, Total: 3}, model.Counts{Completed: 1, Total: 4}) {
		t.Fatal("adding a task must not pulse")
	}
	if ShouldPulse(model.Counts{Completed: 2, Total: 3}, model.Counts{Completed: 1, Total: 3}) {
		t.Fatal("un-completing must not pulse")
	}
}

func TestSparkles(t *testing.T) {
	got := Sparkles(rand.New(rand.NewPCG(1, 2)))
	if len(got) != SparkleCount {
		t.Fatalf("expected %d sparkles, got %d", SparkleCount, len(got))
	}
	for i, s := range got {
		if s.X < 20 || s.X >= 80 || s.Y < 20 || s.Y >= 80 {
			t.Fatalf("sparkle %d out of bounds: %+v", i, s)
		}
		if s.Delay != time.Duration(i)*300*time.Millisecond {
			t.Fatalf("sparkle %d delay = %s", i, s.Delay)
		}
	}
}

func TestCareLevels(t *testing.T) {
	if got := Care(model.Counts{}); got != (CareLevels{}) {
		t.Fatalf("expected zero care levels, got %+v", got)
	}
	got := Care(model.Counts{Completed: 1, Total: 2})
	if got.Water != 50 || got.Sunlight != 60 || got.Nutrients != 40 {
		t.Fatalf("unexpected care levels: %+v", got)
	}
	got = Care(model.Counts{Completed: 9, Total: 10})
	if got.Sunlight != 100 {
		t.Fatalf("expected sunlight capped at 100, got %+v", got)
	}
}
