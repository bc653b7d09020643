package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StageData is one active growth stage as the renderer sees it.
type StageData struct {
	Tag        string
	Fraction   float64
	Opacity    float64
	StemHeight float64
	LeafScale  float64
	Stem       string
	Leaf       string
	Petal      string
	Outer      string
	Inner      string
}

// SparkleData positions one sparkle in percent of the drawing area.
type SparkleData struct {
	X float64
	Y float64
}

const (
	plantWidth     = 15
	stemUnitPerRow = 6.0
	soilColor      = "#8B5A2B"
	sparkleColor   = "#FFF59D"
)

// petal positions in the 3x5 flower grid, in reveal order.
var petals = []struct {
	row, col int
	glyph    string
}{
	{0, 2, "|"}, {1, 4, "-"}, {2, 2, "|"}, {1, 0, "-"},
	{0, 3, "/"}, {2, 3, "\\"}, {2, 1, "/"}, {0, 1, "\\"},
}

// RenderPlant draws the stages as ASCII art, top row first. An empty stage list
// draws bare soil.
func RenderPlant(stages []StageData, sparkles []SparkleData) string {
	var rows []string
	if len(sparkles) > 0 {
		rows = append(rows, sparkleRows(sparkles)...)
	}

	bloom, hasBloom := findStage(stages, "full-bloom")
	if hasBloom && bloom.Opacity > 0 {
		rows = append(rows, flowerRows(bloom)...)
	}

	top, hasGreen := topGreenStage(stages)
	stemRows := 0
	for _, st := range stages {
		if n := int(math.Ceil(st.StemHeight / stemUnitPerRow)); n > stemRows {
			stemRows = n
		}
	}
	if hasGreen {
		stemStyle := colorStyle(top.Stem)
		leafStyle := colorStyle(top.Leaf)
		if stemRows == 0 {
			rows = append(rows, center(leafStyle.Render("."), 1))
		}
		for r := stemRows; r >= 1; r-- {
			if leafAt(r, stemRows, top.Tag) {
				leaf := "~"
				if top.LeafScale >= 0.5 || top.Tag != "sprout" {
					leaf = "~~"
				}
				line := leafStyle.Render(leaf) + stemStyle.Render("|") + leafStyle.Render(leaf)
				rows = append(rows, center(line, 2*len(leaf)+1))
				continue
			}
			rows = append(rows, center(stemStyle.Render("|"), 1))
		}
	}

	rows = append(rows, soilRow(stages, hasGreen))
	return strings.Join(rows, "\n")
}

func leafAt(r, stemRows int, tag string) bool {
	if tag == "sprout" {
		return r == stemRows
	}
	return r%2 == 0 || r == stemRows
}

func soilRow(stages []StageData, sprouted bool) string {
	soil := colorStyle(soilColor)
	half := strings.Repeat("~", plantWidth/2)
	mid := "~"
	if seed, ok := findStage(stages, "seed"); ok {
		mid = colorStyle(seed.Leaf).Render("o")
		if sprouted {
			mid = colorStyle(seed.Stem).Render("|")
		}
	}
	return soil.Render(half) + mid + soil.Render(half)
}

func flowerRows(bloom StageData) []string {
	grid := [3][5]string{}
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	shown := int(math.Ceil(bloom.Opacity * float64(len(petals))))
	petalStyle := colorStyle(bloom.Petal)
	outerStyle := colorStyle(bloom.Outer)
	for i := 0; i < shown && i < len(petals); i++ {
		p := petals[i]
		style := petalStyle
		if i%2 == 1 {
			style = outerStyle
		}
		grid[p.row][p.col] = style.Render(p.glyph)
	}
	grid[1][2] = colorStyle(bloom.Inner).Render("@")

	out := make([]string, 0, 3)
	for _, row := range grid {
		out = append(out, center(strings.Join(row[:], ""), 5))
	}
	return out
}

func sparkleRows(sparkles []SparkleData) []string {
	grid := [2][plantWidth]string{}
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	style := colorStyle(sparkleColor)
	for _, s := range sparkles {
		col := int(s.X / 100 * plantWidth)
		col = max(0, min(plantWidth-1, col))
		row := 0
		if s.Y >= 50 {
			row = 1
		}
		grid[row][col] = style.Render("*")
	}
	return []string{strings.Join(grid[0][:], ""), strings.Join(grid[1][:], "")}
}

func findStage(stages []StageData, tag string) (StageData, bool) {
	for _, st := range stages {
		if st.Tag == tag {
			return st, true
		}
	}
	return StageData{}, false
}

// topGreenStage is the highest active stage past the seed, ignoring the bloom.
func topGreenStage(stages []StageData) (StageData, bool) {
	var top StageData
	found := false
	for _, st := range stages {
		if st.Tag == "seed" || st.Tag == "full-bloom" {
			continue
		}
		top, found = st, true
	}
	return top, found
}

func center(rendered string, visible int) string {
	pad := (plantWidth - visible) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + rendered
}

func colorStyle(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// RenderStageTable lists the active stages with their parameters.
func RenderStageTable(growth float64, stages []StageData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("growth: %.1f%%\n", growth))
	b.WriteString(fmt.Sprintf("%-13s %8s %8s %6s\n", "stage", "fraction", "opacity", "stem"))
	for _, st := range stages {
		b.WriteString(fmt.Sprintf("%-13s %8.2f %8.2f %6.1f\n", st.Tag, st.Fraction, st.Opacity, st.StemHeight))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func stageNames(stages []StageData) string {
	names := make([]string, 0, len(stages))
	for _, st := range stages {
		names = append(names, st.Tag)
	}
	return strings.Join(names, ", ")
}
