package growth

import (
	"math/rand/v2"
	"time"

	"github.com/sandeepkv93/plantd/internal/model"
)

const (
	SparkleCount   = 6
	SparkleStagger = 300 * time.Millisecond
	PulseDuration  = 800 * time.Millisecond
)

type Phase string

const (
	PhaseGrowing    Phase = "growing"
	PhaseFullyGrown Phase = "fully-grown"
)

type Transition int

const (
	TransitionNone Transition = iota
	TransitionEntered
	TransitionLeft
)

func (t Transition) String() string {
	switch t {
	case TransitionEntered:
		return "entered"
	case TransitionLeft:
		return "left"
	default:
		return "none"
	}
}

func IsFullyGrown(c model.Counts) bool {
	return c.Total > 0 && c.Completed == c.Total
}

func PhaseOf(c model.Counts) Phase {
	if IsFullyGrown(c) {
		return PhaseFullyGrown
	}
	return PhaseGrowing
}

// DetectTransition reports whether moving from prev to next enters or leaves the
// fully grown phase.
func DetectTransition(prev, next Phase) Transition {
	switch {
	case prev != PhaseFullyGrown && next == PhaseFullyGrown:
		return TransitionEntered
	case prev == PhaseFullyGrown && next != PhaseFullyGrown:
		return TransitionLeft
	default:
		return TransitionNone
	}
}

// ShouldPulse is true when the completed count went up.
func ShouldPulse(prev, next model.Counts) bool {
	return next.Completed > prev.Completed
}

// Sparkle is one celebratory marker; X and Y are percentages of the pot area.
type Sparkle struct {
	X     float64
	Y     float64
	Delay time.Duration
}

func Sparkles(r *rand.Rand) []Sparkle {
	out := make([]Sparkle, SparkleCount)
	for i := range out {
		out[i] = Sparkle{
			X:     20 + r.Float64()*60,
			Y:     20 + r.Float64()*60,
			Delay: time.Duration(i) * SparkleStagger,
		}
	}
	return out
}

// CareLevels are the water, sunlight and nutrient gauges, each in [0, 100].
type CareLevels struct {
	Water     float64
	Sunlight  float64
	Nutrients float64
}

func Care(c model.Counts) CareLevels {
	if c.Total <= 0 {
		return CareLevels{}
	}
	ratio := float64(c.Completed) / float64(c.Total)
	return CareLevels{
		Water:     clamp(ratio*100, 0, 100),
		Sunlight:  clamp(ratio*120, 0, 100),
		Nutrients: clamp(ratio*80, 0, 100),
	}
}
