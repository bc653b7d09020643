package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/plantd/internal/alerts"
	"github.com/sandeepkv93/plantd/internal/commands"
	"github.com/sandeepkv93/plantd/internal/model"
	"github.com/sandeepkv93/plantd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.ticks != nil {
		return waitForTickCmd(m.ticks.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.Now = m.clock.Now()
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Adding {
			return m.handleQuickAddKey(typed)
		}
		if m.Overlay != OverlayNone {
			return m.handleOverlayKey(typed)
		}
		switch {
		case key.Matches(typed, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(typed, m.keys.Palette):
			return m.openPalette(), nil
		case key.Matches(typed, m.keys.Help):
			m.Overlay = OverlayHelp
			return m, nil
		}
		if m.Screen == ScreenSelect {
			return m.handleSelectKey(typed)
		}
		return m.handleGardenKey(typed)
	case tea.WindowSizeMsg:
		m.helpViewport.Width = min(typed.Width/2, 72)
		return m, nil
	case TickMsg:
		next, cmd := m.onTick(typed.Tick)
		var wait tea.Cmd
		if next.ticks != nil {
			wait = waitForTickCmd(next.ticks.C())
		}
		return next, tea.Batch(cmd, wait)
	case PulseDoneMsg:
		if typed.Seq == m.pulseSeq {
			m.Pulsing = false
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("", "Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSelectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		item, ok := m.plantList.SelectedItem().(plantItem)
		if !ok {
			return m, nil
		}
		return m.selectPlant(item.opt.ID), nil
	}
	var cmd tea.Cmd
	m.plantList, cmd = m.plantList.Update(msg)
	return m, cmd
}

func (m Model) handleGardenKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	n := len(m.Session.Tasks())
	switch {
	case key.Matches(msg, m.keys.Add):
		m.Adding = true
		m.quickAdd.SetValue("")
		m.quickAdd.Focus()
		m.Status = StatusBar{Text: "type a task, enter to add, esc to cancel"}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.Cursor = clampCursor(m.Cursor-1, n)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.Cursor = clampCursor(m.Cursor+1, n)
		return m, nil
	case key.Matches(msg, m.keys.History):
		m.Overlay = OverlayHistory
		m.HistoryFilter = ""
		m.loadHistory()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		return m.resetGarden(), nil
	}

	id, ok := m.selectedTaskID()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Toggle), msg.Type == tea.KeySpace, msg.Type == tea.KeyEnter:
		return m.toggleTask(id)
	case key.Matches(msg, m.keys.Delete):
		return m.deleteTask(id)
	case key.Matches(msg, m.keys.ClearDue):
		return m.clearDue(id)
	}
	return m, nil
}

// handleQuickAddKey reads the quick-add line. It accepts the same due:<value> token
// as the /add command.
func (m Model) handleQuickAddKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Adding = false
		m.quickAdd.SetValue("")
		m.quickAdd.Blur()
		m.Status = StatusBar{Text: "add cancelled"}
		return m, nil
	case "enter":
		line := strings.TrimSpace(m.quickAdd.Value())
		m.Adding = false
		m.quickAdd.SetValue("")
		m.quickAdd.Blur()
		if line == "" {
			next, res := m.Session.AddTask(line, "", m.clock.Now())
			m.Session = next
			return m.applyResult(res)
		}
		cmd, err := commands.Parse("add " + line)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		return m.addTask(cmd.Add.Text, cmd.Add.Due)
	}
	m.quickAdd = editInput(m.quickAdd, msg)
	return m, nil
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Help) && m.Overlay == OverlayHelp,
		key.Matches(msg, m.keys.History) && m.Overlay == OverlayHistory:
		m.Overlay = OverlayNone
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Palette):
		return m.openPalette(), nil
	}
	var cmd tea.Cmd
	switch m.Overlay {
	case OverlayHelp:
		m.helpViewport, cmd = m.helpViewport.Update(msg)
	case OverlayHistory:
		m.historyTable, cmd = m.historyTable.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var left, right string
	header := "plantd"
	switch m.Screen {
	case ScreenSelect:
		left = views.RenderSelectPanel(views.SelectPanelData{ListView: m.plantList.View()})
		right = m.renderPlantDetails()
	default:
		p, _ := m.Session.Plant()
		header = fmt.Sprintf("plantd | %s (%s)", p.Name, p.Type)
		left = m.renderPlantPanel()
		right = m.renderTaskPanel()
	}
	switch m.Overlay {
	case OverlayHelp:
		right = m.renderHelpPanel()
	case OverlayHistory:
		right = m.renderHistoryPanel()
	}
	if m.Palette.Active {
		right = strings.TrimSpace(right + "\n\n" + views.RenderCommandPalette(true, m.commandInput.View()))
	}

	notification := ""
	if n, ok := m.latestNotification(); ok {
		notification = views.RenderNotification(n.Level, n.Body)
	}

	return views.RenderApp(views.AppData{
		Header:        header,
		LeftPane:      left,
		RightPane:     right,
		Status:        m.Status.Text,
		StatusIsError: m.Status.IsError,
		Notification:  notification,
		Footer:        m.helpModel.ShortHelpView(m.screenBindings().ShortHelp()),
	})
}

func (m Model) renderPlantDetails() string {
	item, ok := m.plantList.SelectedItem().(plantItem)
	if !ok {
		return ""
	}
	return views.RenderMarkdown(views.PlantMarkdown(views.PlantInfo{
		Name:       item.opt.Name,
		Type:       item.opt.Type,
		Difficulty: string(item.opt.Difficulty),
	}))
}

func (m Model) renderPlantPanel() string {
	snap := m.Session.Growth()
	p, _ := m.Session.Plant()
	stages := make([]views.StageData, 0, len(snap.Stages))
	for _, st := range snap.Stages {
		stages = append(stages, views.StageData{
			Tag:        string(st.Tag),
			Fraction:   st.Fraction,
			Opacity:    st.Opacity,
			StemHeight: st.StemHeight,
			LeafScale:  st.LeafScale,
			Stem:       st.Colors.Stem,
			Leaf:       st.Colors.Leaf,
			Petal:      st.Colors.Petal,
			Outer:      st.Colors.Outer,
			Inner:      st.Colors.Inner,
		})
	}
	sparkles := make([]views.SparkleData, 0, len(m.Sparkles))
	for _, s := range m.Sparkles {
		sparkles = append(sparkles, views.SparkleData{X: s.X, Y: s.Y})
	}
	return views.RenderPlantPanel(views.PlantPanelData{
		PlantName:   p.Name,
		Growth:      snap.Growth,
		GrowthBar:   m.growthBar.ViewAs(snap.Growth / 100),
		Stages:      stages,
		Pulsing:     m.Pulsing,
		Sparkles:    sparkles,
		FullyGrown:  snap.FullyGrown,
		WaterBar:    m.careBars.ViewAs(snap.Care.Water / 100),
		SunlightBar: m.careBars.ViewAs(snap.Care.Sunlight / 100),
		NutrientBar: m.careBars.ViewAs(snap.Care.Nutrients / 100),
	})
}

func (m Model) renderTaskPanel() string {
	tasks := m.Session.Tasks()
	loc := m.Session.Location()
	items := make([]views.TaskItemData, 0, len(tasks))
	for i, t := range tasks {
		item := views.TaskItemData{
			Index:     i + 1,
			Text:      t.Text,
			Completed: t.Completed,
			Due:       t.Due,
			Alerted:   t.Alerted,
			Selected:  i == m.Cursor,
		}
		if t.HasDue() && !t.Completed {
			if at, err := model.ParseDue(t.Due, loc); err == nil {
				if m.Now.Before(at) {
					item.Countdown = model.FormatRemaining(at, m.Now)
				} else {
					item.Overdue = true
				}
			} else {
				item.InvalidDue = true
			}
		}
		items = append(items, item)
	}
	next := ""
	if task, at, ok := alerts.Next(tasks, loc); ok && m.Now.Before(at) {
		next = fmt.Sprintf("next due: %s in %s", task.Text, model.FormatRemaining(at, m.Now))
	}
	input := ""
	if m.Adding {
		input = m.quickAdd.View()
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		InputView: input,
		Items:     items,
		Counts:    views.CountsData{Completed: m.Session.Counts().Completed, Total: m.Session.Counts().Total},
		NextDue:   next,
	})
}

func (m Model) renderHelpPanel() string {
	return views.RenderHelpPanel(views.HelpPanelData{
		Screen:    string(m.Screen),
		AboutView: m.helpViewport.View(),
		HelpView:  m.helpModel.View(m.screenBindings()),
	})
}

func (m Model) renderHistoryPanel() string {
	return views.RenderHistoryPanel(views.HistoryPanelData{
		Filter:    string(m.HistoryFilter),
		Count:     len(m.History),
		TableView: m.historyTable.View(),
	})
}
