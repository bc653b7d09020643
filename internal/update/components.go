package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/plantd/internal/model"
	"github.com/sandeepkv93/plantd/internal/views"
)

func (m *Model) initBubbleComponents() {
	items := make([]list.Item, 0, len(model.Catalog()))
	for _, opt := range model.Catalog() {
		items = append(items, plantItem{opt: opt})
	}
	m.plantList = list.New(items, list.NewDefaultDelegate(), 40, 14)
	m.plantList.Title = "Choose your plant"
	m.plantList.SetShowHelp(false)
	m.plantList.SetFilteringEnabled(false)
	m.plantList.SetShowStatusBar(false)

	m.quickAdd = textinput.New()
	m.quickAdd.Prompt = "add> "
	m.quickAdd.Placeholder = "task text [due:2026-05-10T09:00]"
	m.quickAdd.CharLimit = 256
	m.quickAdd.Width = 44

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.careBars = progress.New(progress.WithDefaultGradient(), progress.WithWidth(24))
	m.growthBar = progress.New(progress.WithGradient("#A0522D", "#4ADE80"), progress.WithWidth(36))

	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 9},
		{Title: "Event", Width: 15},
		{Title: "Task", Width: 24},
	}
	m.historyTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(10))

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
	m.helpViewport = viewport.New(56, 18)
	m.helpViewport.SetContent(views.RenderMarkdown(views.AboutMarkdown))
}

func (m *Model) syncBubbleData() {
	rows := make([]table.Row, 0, len(m.History))
	for _, e := range m.History {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.Seq),
			e.At.In(m.Session.Location()).Format("15:04:05"),
			string(e.Kind),
			e.Text,
		})
	}
	m.historyTable.SetRows(rows)

	m.Palette.Input = m.commandInput.Value()
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.Adding {
		m.quickAdd.Focus()
	} else {
		m.quickAdd.Blur()
	}
}

// editInput applies a key to a text input. Runes are appended directly so pasted
// input lands even when the input has not been focused yet.
func editInput(in textinput.Model, msg tea.KeyMsg) textinput.Model {
	if msg.Type == tea.KeySpace {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	}
	if msg.Type == tea.KeyRunes {
		in.SetValue(in.Value() + string(msg.Runes))
		in.CursorEnd()
		return in
	}
	if msg.Type == tea.KeyBackspace {
		r := []rune(in.Value())
		if len(r) > 0 {
			in.SetValue(string(r[:len(r)-1]))
		}
		return in
	}
	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	_ = cmd
	return in
}
