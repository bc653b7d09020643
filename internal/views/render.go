package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	leftPaneWidth  = 40
	rightPaneWidth = 58
	markdownWrap   = 54
)

// AppData is one full frame: header, the two panes and the lines under them.
type AppData struct {
	Header        string
	LeftPane      string
	RightPane     string
	Status        string
	StatusIsError bool
	Notification  string
	Footer        string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6B8E23")).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD54F"))
	pulseStyle  = lipgloss.NewStyle().Bold(true)
)

func RenderApp(data AppData) string {
	leftBody, rightBody := data.LeftPane, data.RightPane
	// Pad the shorter pane so both borders end on the same row.
	lh, rh := lipgloss.Height(leftBody), lipgloss.Height(rightBody)
	if lh < rh {
		leftBody += strings.Repeat("\n", rh-lh)
	} else if rh < lh {
		rightBody += strings.Repeat("\n", lh-rh)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(leftPaneWidth).Render(leftBody),
		panelStyle.Width(rightPaneWidth).Render(rightBody),
	)

	out := []string{headerStyle.Render(data.Header), row}
	if data.Status != "" {
		prefix, style := "status: ", statusStyle
		if data.StatusIsError {
			prefix, style = "status: error: ", errorStyle
		}
		out = append(out, style.Render(prefix+data.Status))
	}
	if data.Notification != "" {
		out = append(out, data.Notification)
	}
	if data.Footer != "" {
		out = append(out, footerStyle.Render(data.Footer))
	}
	return strings.Join(out, "\n")
}

// RenderMarkdown renders md for the right pane. On renderer failure the raw text is
// returned.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
