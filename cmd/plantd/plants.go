package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/plantd/internal/garden"
	"github.com/sandeepkv93/plantd/internal/growth"
	"github.com/sandeepkv93/plantd/internal/model"
	"github.com/sandeepkv93/plantd/internal/views"
)

func newPlantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plants",
		Short: "List the plants you can grow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %-16s %-10s %s\n", "ID", "NAME", "TYPE", "DIFFICULTY")
			for _, p := range model.Catalog() {
				fmt.Fprintf(out, "%-10s %-16s %-10s %s\n", p.ID, p.Name, p.Type, p.Difficulty)
			}
			return nil
		},
	}
}

type previewOptions struct {
	completed int
	total     int
	plant     string
}

func newPreviewCmd(root *rootOptions) *cobra.Command {
	opts := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the plant for a given task count without starting the UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plantID := opts.plant
			if plantID == "" {
				plantID = root.cfg.DefaultPlant
			}
			if plantID == "" {
				plantID = "sunflower"
			}
			out, err := renderPreview(plantID, opts.completed, opts.total)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.completed, "completed", 0, "number of completed tasks")
	cmd.Flags().IntVar(&opts.total, "total", 0, "total number of tasks")
	cmd.Flags().StringVar(&opts.plant, "plant", "", "plant id")
	return cmd
}

// renderPreview grows a throwaway session to the requested counts and draws it.
func renderPreview(plantID string, completed, total int) (string, error) {
	if completed < 0 || total < 0 || completed > total {
		return "", fmt.Errorf("invalid counts: completed=%d total=%d", completed, total)
	}
	s, res := garden.NewSession(garden.WithIDs(garden.Sequential)).SelectPlant(plantID)
	if res.Skipped != nil {
		return "", res.Skipped
	}
	now := time.Now()
	for i := 0; i < total; i++ {
		s, _ = s.AddTask(fmt.Sprintf("task %d", i+1), "", now)
	}
	for i, t := range s.Tasks() {
		if i >= completed {
			break
		}
		s, _ = s.ToggleTask(t.ID, now)
	}

	snap := s.Growth()
	stages := make([]views.StageData, 0, len(snap.Stages))
	for _, st := range snap.Stages {
		stages = append(stages, views.StageData{
			Tag: string(st.Tag), Fraction: st.Fraction, Opacity: st.Opacity,
			StemHeight: st.StemHeight, LeafScale: st.LeafScale,
			Stem: st.Colors.Stem, Leaf: st.Colors.Leaf,
			Petal: st.Colors.Petal, Outer: st.Colors.Outer, Inner: st.Colors.Inner,
		})
	}
	var sparkles []views.SparkleData
	if snap.FullyGrown {
		for _, sp := range growth.Sparkles(rand.New(rand.NewPCG(1, 2))) {
			sparkles = append(sparkles, views.SparkleData{X: sp.X, Y: sp.Y})
		}
	}

	p, _ := s.Plant()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%s)\n\n", p.Name, p.Type))
	b.WriteString(views.RenderPlant(stages, sparkles) + "\n\n")
	b.WriteString(views.RenderStageTable(snap.Growth, stages) + "\n")
	b.WriteString(bandLegend(snap.Stages) + "\n")
	b.WriteString(views.ProgressText(views.CountsData{Completed: snap.Counts.Completed, Total: snap.Counts.Total}))
	if snap.FullyGrown {
		b.WriteString("\n" + views.RenderBanner(p.Name))
	}
	return b.String(), nil
}

// bandLegend lists every growth band with its range, marking the ones reached.
func bandLegend(active []growth.StageSpec) string {
	parts := make([]string, 0, len(growth.Bands()))
	for _, band := range growth.Bands() {
		mark := " "
		if growth.HasStage(active, band.Tag) {
			mark = "x"
		}
		parts = append(parts, fmt.Sprintf("[%s] %s %.0f-%.0f", mark, band.Tag, band.Low, band.High))
	}
	return "bands: " + strings.Join(parts, "  ")
}
