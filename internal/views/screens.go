package views

import (
	"fmt"
	"strings"
)

type SelectPanelData struct {
	ListView string
}

type PlantPanelData struct {
	PlantName   string
	Growth      float64
	GrowthBar   string
	Stages      []StageData
	Pulsing     bool
	Sparkles    []SparkleData
	FullyGrown  bool
	WaterBar    string
	SunlightBar string
	NutrientBar string
}

type CountsData struct {
	Completed int
	Total     int
}

type TaskItemData struct {
	Index      int
	Text       string
	Completed  bool
	Due        string
	Countdown  string
	Overdue    bool
	InvalidDue bool
	Alerted    bool
	Selected   bool
}

type TaskPanelData struct {
	InputView string
	Items     []TaskItemData
	Counts    CountsData
	NextDue   string
}

type HelpPanelData struct {
	Screen    string
	AboutView string
	HelpView  string
}

type HistoryPanelData struct {
	Filter    string
	Count     int
	TableView string
}

func RenderSelectPanel(data SelectPanelData) string {
	var b strings.Builder
	b.WriteString("garden:\n")
	b.WriteString("Pick a plant. Every task you finish helps it grow.\n\n")
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

func RenderPlantPanel(data PlantPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("plant: %s\n", data.PlantName))
	if data.Pulsing {
		b.WriteString(pulseStyle.Render("~ growing ~") + "\n")
	} else {
		b.WriteString("\n")
	}
	art := RenderPlant(data.Stages, data.Sparkles)
	if data.Pulsing {
		art = pulseStyle.Render(art)
	}
	b.WriteString(art + "\n\n")
	b.WriteString(fmt.Sprintf("growth: %s %.0f%%\n", data.GrowthBar, data.Growth))
	b.WriteString(fmt.Sprintf("stages: %s\n", stageNames(data.Stages)))
	b.WriteString("\ncare:\n")
	b.WriteString(fmt.Sprintf("water     %s\n", data.WaterBar))
	b.WriteString(fmt.Sprintf("sunlight  %s\n", data.SunlightBar))
	b.WriteString(fmt.Sprintf("nutrients %s\n", data.NutrientBar))
	if data.FullyGrown {
		b.WriteString("\n" + RenderBanner(data.PlantName))
	}
	return strings.TrimSpace(b.String())
}

func RenderBanner(plantName string) string {
	return bannerStyle.Render(fmt.Sprintf("Congratulations! Your %s is in full bloom!", plantName))
}

func ProgressText(c CountsData) string {
	switch {
	case c.Total == 0:
		return "No tasks yet. Add one to start growing."
	case c.Completed == c.Total:
		return "All tasks complete!"
	default:
		return fmt.Sprintf("%d of %d tasks completed", c.Completed, c.Total)
	}
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(ProgressText(data.Counts) + "\n")
	if data.NextDue != "" {
		b.WriteString(data.NextDue + "\n")
	}
	if data.InputView != "" {
		b.WriteString(data.InputView + "\n")
	}
	b.WriteString("\n")
	if len(data.Items) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, item := range data.Items {
		cursor := " "
		if item.Selected {
			cursor = ">"
		}
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %d. %s%s\n", cursor, check, item.Index, item.Text, dueBadge(item)))
	}
	return strings.TrimSpace(b.String())
}

func dueBadge(item TaskItemData) string {
	if item.Due == "" {
		return ""
	}
	switch {
	case item.InvalidDue:
		return fmt.Sprintf("  (due %s: unreadable)", item.Due)
	case item.Completed:
		return fmt.Sprintf("  (due %s)", item.Due)
	case item.Overdue || item.Alerted:
		return fmt.Sprintf("  (due %s: overdue!)", item.Due)
	case item.Countdown != "":
		return fmt.Sprintf("  (due in %s)", item.Countdown)
	default:
		return fmt.Sprintf("  (due %s)", item.Due)
	}
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command:\n" + inputView
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n\nkeys:\n%s\n\n[esc] close",
		strings.ToLower(data.Screen),
		data.AboutView,
		data.HelpView,
	)
}

func RenderHistoryPanel(data HistoryPanelData) string {
	filter := data.Filter
	if filter == "" {
		filter = "all"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("history (%s, %d shown):\n", filter, data.Count))
	if data.Count == 0 {
		b.WriteString("(no events yet)\n")
	} else {
		b.WriteString(data.TableView + "\n")
	}
	b.WriteString("[esc] close")
	return b.String()
}
