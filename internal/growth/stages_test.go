package growth

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sandeepkv93/plantd/internal/model"
)

func tags(stages []StageSpec) []StageTag {
	out := make([]StageTag, 0, len(stages))
	for _, s := range stages {
		out = append(out, s.Tag)
	}
	return out
}

func TestGrowthStageRangeAndRatio(t *testing.T) {
	for total := 0; total <= 12; total++ {
		for completed := 0; completed <= total; completed++ {
			g := GrowthStage(completed, total)
			if g < 0 || g > 100 {
				t.Fatalf("GrowthStage(%d, %d) = %v out of range", completed, total, g)
			}
			if total == 0 {
				if g != 0 {
					t.Fatalf("GrowthStage(0, 0) = %v, want 0", g)
				}
				continue
			}
			want := 100 * float64(completed) / float64(total)
			if math.Abs(g-want) > 1e-9 {
				t.Fatalf("GrowthStage(%d, %d) = %v, want %v", completed, total, g, want)
			}
		}
	}
}

func TestGrowthStageClampsBadInput(t *testing.T) {
	if g := GrowthStage(5, 4); g != 100 {
		t.Fatalf("expected clamp to 100, got %v", g)
	}
	if g := GrowthStage(-1, 4); g != 0 {
		t.Fatalf("expected clamp to 0, got %v", g)
	}
	if g := GrowthStage(3, -2); g != 0 {
		t.Fatalf("expected 0 for negative total, got %v", g)
	}
}

func TestActiveStagesMonotoneMembership(t *testing.T) {
	prev := map[StageTag]bool{}
	for i := 0; i <= 1000; i++ {
		g := float64(i) / 10
		current := map[StageTag]bool{}
		for _, tag := range tags(ActiveStages(g)) {
			current[tag] = true
		}
		for tag := range prev {
			if !current[tag] {
				t.Fatalf("stage %q active below %v but not at %v", tag, g-0.1, g)
			}
		}
		prev = current
	}
}

func TestActiveStagesBoundaries(t *testing.T) {
	cases := []struct {
		g    float64
		want []StageTag
	}{
		{0, []StageTag{StageSeed}},
		{9.999, []StageTag{StageSeed}},
		{10, []StageTag{StageSeed, StageSprout}},
		{29.99, []StageTag{StageSeed, StageSprout}},
		{30, []StageTag{StageSeed, StageSprout, StageSmallPlant}},
		{60, []StageTag{StageSeed, StageSprout, StageSmallPlant, StageMaturePlant}},
		{89.9, []StageTag{StageSeed, StageSprout, StageSmallPlant, StageMaturePlant}},
		{90, []StageTag{StageSeed, StageSprout, StageSmallPlant, StageMaturePlant, StageFullBloom}},
		{100, []StageTag{StageSeed, StageSprout, StageSmallPlant, StageMaturePlant, StageFullBloom}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, tags(ActiveStages(tc.g))); diff != "" {
			t.Fatalf("ActiveStages(%v) mismatch (-want +got):\n%s", tc.g, diff)
		}
	}
}

func TestBloomOpacityIsLinear(t *testing.T) {
	if o := BloomOpacity(90); o != 0 {
		t.Fatalf("opacity at 90 = %v, want 0", o)
	}
	if o := BloomOpacity(100); o != 1 {
		t.Fatalf("opacity at 100 = %v, want 1", o)
	}
	for _, g := range []float64{91, 92.5, 95, 97.75} {
		want := (g - 90) / 10
		if o := BloomOpacity(g); math.Abs(o-want) > 1e-9 {
			t.Fatalf("opacity at %v = %v, want %v", g, o, want)
		}
	}
	stages := ActiveStages(95)
	bloom := stages[len(stages)-1]
	if bloom.Tag != StageFullBloom || math.Abs(bloom.Opacity-0.5) > 1e-9 {
		t.Fatalf("unexpected bloom spec: %+v", bloom)
	}
	if bloom.Fraction != 0 {
		t.Fatalf("bloom must not carry a fraction: %+v", bloom)
	}
}

func TestActiveStagesInterpolation(t *testing.T) {
	got := ActiveStages(45)
	want := []StageSpec{
		{Tag: StageSeed, Fraction: 1, Opacity: 1, LeafScale: 1},
		{Tag: StageSprout, Fraction: 1, Opacity: 1, StemHeight: 20, LeafScale: 1},
		{Tag: StageSmallPlant, Fraction: 0.5, Opacity: 1, StemHeight: 20, LeafScale: 0.5},
	}
	opts := []cmp.Option{
		cmpopts.IgnoreFields(StageSpec{}, "Colors"),
		cmpopts.EquateApprox(0, 1e-9),
	}
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("ActiveStages(45) mismatch (-want +got):\n%s", diff)
	}
}

func TestActiveStagesForUsesPlantPalette(t *testing.T) {
	stages := ActiveStagesFor(100, "rose")
	bloom := stages[len(stages)-1]
	if bloom.Colors.Outer != "#EC407A" {
		t.Fatalf("expected rose palette, got %+v", bloom.Colors)
	}
	if got := BloomPalette("cactus"); got != BloomPalette("sunflower") {
		t.Fatalf("expected sunflower fallback, got %+v", got)
	}
}

func TestActiveStagesIgnoresNaN(t *testing.T) {
	if diff := cmp.Diff([]StageTag{StageSeed}, tags(ActiveStages(math.NaN()))); diff != "" {
		t.Fatalf("NaN growth mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioFourTasks(t *testing.T) {
	snap := Compute(model.Counts{Completed: 1, Total: 4}, "sunflower")
	if snap.Growth != 25 {
		t.Fatalf("expected growth 25, got %v", snap.Growth)
	}
	if diff := cmp.Diff([]StageTag{StageSeed, StageSprout}, tags(snap.Stages)); diff != "" {
		t.Fatalf("1/4 stages mismatch (-want +got):\n%s", diff)
	}

	snap = Compute(model.Counts{Completed: 3, Total: 4}, "sunflower")
	if snap.Growth != 75 {
		t.Fatalf("expected growth 75, got %v", snap.Growth)
	}
	want := []StageTag{StageSeed, StageSprout, StageSmallPlant, StageMaturePlant}
	if diff := cmp.Diff(want, tags(snap.Stages)); diff != "" {
		t.Fatalf("3/4 stages mismatch (-want +got):\n%s", diff)
	}
	if snap.FullyGrown {
		t.Fatal("3/4 must not be fully grown")
	}

	snap = Compute(model.Counts{Completed: 4, Total: 4}, "sunflower")
	if snap.Growth != 100 || !snap.FullyGrown || snap.Phase != PhaseFullyGrown {
		t.Fatalf("unexpected 4/4 snapshot: %+v", snap)
	}
	bloom := snap.Stages[len(snap.Stages)-1]
	if bloom.Tag != StageFullBloom || bloom.Opacity != 1 {
		t.Fatalf("expected full bloom at opacity 1, got %+v", bloom)
	}
}

func TestScenarioNoTasks(t *testing.T) {
	snap := Compute(model.Counts{}, "basil")
	if snap.Growth != 0 || snap.FullyGrown {
		t.Fatalf("unexpected empty snapshot: %+v", snap)
	}
	if diff := cmp.Diff([]StageTag{StageSeed}, tags(snap.Stages)); diff != "" {
		t.Fatalf("empty stages mismatch (-want +got):\n%s", diff)
	}
}

func TestBandsCoverTheRangeInOrder(t *testing.T) {
	bs := Bands()
	if len(bs) != 5 || bs[0].Low != 0 || bs[len(bs)-1].High != 100 {
		t.Fatalf("unexpected bands: %+v", bs)
	}
	for i := 1; i < len(bs); i++ {
		if bs[i].Low != bs[i-1].High {
			t.Fatalf("gap between %s and %s", bs[i-1].Tag, bs[i].Tag)
		}
	}
	bs[0].High = 50
	if Bands()[0].High != 10 {
		t.Fatal("Bands must return a copy")
	}
}

func TestHasStage(t *testing.T) {
	stages := ActiveStagesFor(50, "")
	if !HasStage(stages, StageSmallPlant) {
		t.Fatalf("expected small-plant at 50%%, got %v", tags(stages))
	}
	if HasStage(stages, StageMaturePlant) {
		t.Fatalf("unexpected mature-plant at 50%%")
	}
}
