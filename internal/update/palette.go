package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/plantd/internal/commands"
	"github.com/sandeepkv93/plantd/internal/model"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	m.commandInput = editInput(m.commandInput, msg)
	m.Palette.Input = m.commandInput.Value()
	return m, nil
}

// RunCommand executes one palette command line as if it had been typed.
func (m Model) RunCommand(line string) (Model, tea.Cmd) {
	m.Palette.Input = line
	return m.executePaletteCommand()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()
	m.Status = StatusBar{}

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.log.Debug("command rejected", zap.String("input", raw), zap.Error(err))
		return m, nil
	}
	if m.Screen == ScreenSelect && cmd.Type != commands.TypePlant && cmd.Type != commands.TypeHelp {
		m.Status = StatusBar{Text: "choose a plant first (/plant <id>)", IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m, teaCmd = m.addTask(a.Text, a.Due)
			return commands.Result{Message: fmt.Sprintf("added: %s", a.Text)}, nil
		},
		Toggle: func(r commands.RefArgs) (commands.Result, error) {
			id, err := commands.ResolveRef(r.Ref, m.Session.Tasks())
			if err != nil {
				return commands.Result{}, err
			}
			m, teaCmd = m.toggleTask(id)
			task, _ := m.Session.Store().Get(id)
			state := "reopened"
			if task.Completed {
				state = "completed"
			}
			return commands.Result{Message: fmt.Sprintf("%s: %s", state, task.Text)}, nil
		},
		Delete: func(r commands.RefArgs) (commands.Result, error) {
			id, err := commands.ResolveRef(r.Ref, m.Session.Tasks())
			if err != nil {
				return commands.Result{}, err
			}
			task, _ := m.Session.Store().Get(id)
			m, teaCmd = m.deleteTask(id)
			return commands.Result{Message: fmt.Sprintf("deleted: %s", task.Text)}, nil
		},
		NoDue: func(r commands.RefArgs) (commands.Result, error) {
			id, err := commands.ResolveRef(r.Ref, m.Session.Tasks())
			if err != nil {
				return commands.Result{}, err
			}
			m, teaCmd = m.clearDue(id)
			return commands.Result{Message: "due date cleared"}, nil
		},
		Plant: func(p commands.PlantArgs) (commands.Result, error) {
			m = m.selectPlant(p.PlantID)
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Reset: func() (commands.Result, error) {
			m = m.resetGarden()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Chore: func(c commands.ChoreArgs) (commands.Result, error) {
			text := model.Chores[c.Index]
			m, teaCmd = m.addTask(text, "")
			return commands.Result{Message: fmt.Sprintf("added chore: %s", text)}, nil
		},
		History: func(h commands.HistoryArgs) (commands.Result, error) {
			m.HistoryFilter = h.Kind
			m.Overlay = OverlayHistory
			m.loadHistory()
			return commands.Result{Message: fmt.Sprintf("history: %d event(s)", len(m.History))}, nil
		},
		Help: func() (commands.Result, error) {
			m.Overlay = OverlayHelp
			return commands.Result{Message: "help shown"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.log.Debug("command failed", zap.String("input", raw), zap.Error(err))
		return m, nil
	}
	if !m.Status.IsError {
		m.Status = StatusBar{Text: res.Message}
	}
	return m, teaCmd
}
