package growth

import (
	"math"

	"github.com/sandeepkv93/plantd/internal/model"
)

type StageTag string

const (
	StageSeed        StageTag = "seed"
	StageSprout      StageTag = "sprout"
	StageSmallPlant  StageTag = "small-plant"
	StageMaturePlant StageTag = "mature-plant"
	StageFullBloom   StageTag = "full-bloom"
)

// Band is a fixed growth interval [Low, High) rendered as one tier. StemCap is the
// stem height in pixels reached at the top of the band.
type Band struct {
	Tag     StageTag
	Low     float64
	High    float64
	StemCap float64
}

var bands = []Band{
	{Tag: StageSeed, Low: 0, High: 10},
	{Tag: StageSprout, Low: 10, High: 30, StemCap: 20},
	{Tag: StageSmallPlant, Low: 30, High: 60, StemCap: 40},
	{Tag: StageMaturePlant, Low: 60, High: 90, StemCap: 60},
	{Tag: StageFullBloom, Low: 90, High: 100},
}

func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Colors are hex colour parameters handed to the renderer.
type Colors struct {
	Stem  string
	Leaf  string
	Petal string
	Outer string
	Inner string
}

// StageSpec describes one active band. Fraction is the band-local interpolation
// used to size the stem and leaves; Opacity is 1 for every band except full-bloom,
// which fades in over [90, 100] and carries no Fraction.
type StageSpec struct {
	Tag        StageTag
	Fraction   float64
	Opacity    float64
	StemHeight float64
	LeafScale  float64
	Colors     Colors
}

var stageColors = map[StageTag]Colors{
	StageSeed:        {Stem: "#78350F", Leaf: "#A0522D"},
	StageSprout:      {Stem: "#16A34A", Leaf: "#4CAF50"},
	StageSmallPlant:  {Stem: "#16A34A", Leaf: "#22C55E"},
	StageMaturePlant: {Stem: "#15803D", Leaf: "#4ADE80"},
}

var bloomPalettes = map[string]Colors{
	"sunflower": {Stem: "#2D5016", Leaf: "#66BB6A", Petal: "#FFD54F", Outer: "#FFA726", Inner: "#8D6E63"},
	"rose":      {Stem: "#2D5016", Leaf: "#66BB6A", Petal: "#F06292", Outer: "#EC407A", Inner: "#C2185B"},
	"basil":     {Stem: "#2D5016", Leaf: "#66BB6A", Petal: "#B39DDB", Outer: "#9575CD", Inner: "#7E57C2"},
	"tomato":    {Stem: "#2D5016", Leaf: "#66BB6A", Petal: "#E57373", Outer: "#EF5350", Inner: "#C62828"},
}

// BloomPalette returns the full-bloom colours for a plant id, falling back to the
// sunflower palette.
func BloomPalette(plantID string) Colors {
	if p, ok := bloomPalettes[plantID]; ok {
		return p
	}
	return bloomPalettes["sunflower"]
}

// GrowthStage maps completion counts to [0, 100]. No tasks means no growth.
func GrowthStage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return clamp(100*float64(completed)/float64(total), 0, 100)
}

// ActiveStages returns every band whose lower bound is <= g, seed first, using the
// default bloom palette.
func ActiveStages(g float64) []StageSpec {
	return ActiveStagesFor(g, "")
}

// ActiveStagesFor is ActiveStages with the bloom colours of the given plant.
func ActiveStagesFor(g float64, plantID string) []StageSpec {
	if math.IsNaN(g) {
		g = 0
	}
	g = clamp(g, 0, 100)
	out := make([]StageSpec, 0, len(bands))
	for _, b := range bands {
		if g < b.Low {
			break
		}
		if b.Tag == StageFullBloom {
			out = append(out, StageSpec{
				Tag:     b.Tag,
				Opacity: BloomOpacity(g),
				Colors:  BloomPalette(plantID),
			})
			continue
		}
		f := clamp((g-b.Low)/(b.High-b.Low), 0, 1)
		out = append(out, StageSpec{
			Tag:        b.Tag,
			Fraction:   f,
			Opacity:    1,
			StemHeight: f * b.StemCap,
			LeafScale:  f,
			Colors:     stageColors[b.Tag],
		})
	}
	return out
}

func BloomOpacity(g float64) float64 {
	return clamp((g-90)/10, 0, 1)
}

// HasStage reports whether tag is among stages.
func HasStage(stages []StageSpec, tag StageTag) bool {
	for _, s := range stages {
		if s.Tag == tag {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snapshot is everything the renderer needs for one set of counts.
type Snapshot struct {
	Counts     model.Counts
	Growth     float64
	Stages     []StageSpec
	FullyGrown bool
	Phase      Phase
	Care       CareLevels
}

func Compute(c model.Counts, plantID string) Snapshot {
	g := GrowthStage(c.Completed, c.Total)
	return Snapshot{
		Counts:     c,
		Growth:     g,
		Stages:     ActiveStagesFor(g, plantID),
		FullyGrown: IsFullyGrown(c),
		Phase:      PhaseOf(c),
		Care:       Care(c),
	}
}
