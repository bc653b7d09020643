package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/plantd/internal/garden"
	"github.com/sandeepkv93/plantd/internal/growth"
	"github.com/sandeepkv93/plantd/internal/journal"
	"github.com/sandeepkv93/plantd/internal/model"
	"github.com/sandeepkv93/plantd/internal/scheduler"
)

const journalTimeout = 2 * time.Second

func (m Model) selectPlant(id string) Model {
	next, res := m.Session.SelectPlant(id)
	if res.Skipped != nil {
		m.log.Debug("plant selection skipped", zap.String("plant", id), zap.Error(res.Skipped))
		m.Status = StatusBar{Text: res.Skipped.Error(), IsError: true}
		return m
	}
	m.Session = next
	m.Screen = ScreenGarden
	m.Overlay = OverlayNone
	m.Cursor = 0
	m.Pulsing = false
	m.Sparkles = nil
	p, _ := m.Session.Plant()
	m.log.Info("plant selected", zap.String("plant", p.ID))
	m.Status = StatusBar{Text: fmt.Sprintf("planted %s", p.Name)}
	return m
}

func (m Model) resetGarden() Model {
	next, res := m.Session.ResetGarden()
	m.Session = next
	m, _ = m.applyResult(res)
	m.Screen = ScreenSelect
	m.Overlay = OverlayNone
	m.Cursor = 0
	m.Adding = false
	m.log.Info("garden reset")
	m.Status = StatusBar{Text: "garden reset, choose a plant"}
	return m
}

func (m Model) addTask(text, due string) (Model, tea.Cmd) {
	next, res := m.Session.AddTask(text, due, m.clock.Now())
	m.Session = next
	if res.Skipped == nil {
		m.Cursor = len(m.Session.Tasks()) - 1
		if due != "" && m.ticks != nil {
			m.ticks.Nudge()
		}
	}
	return m.applyResult(res)
}

func (m Model) toggleTask(id string) (Model, tea.Cmd) {
	next, res := m.Session.ToggleTask(id, m.clock.Now())
	m.Session = next
	return m.applyResult(res)
}

func (m Model) deleteTask(id string) (Model, tea.Cmd) {
	next, res := m.Session.DeleteTask(id)
	m.Session = next
	return m.applyResult(res)
}

func (m Model) clearDue(id string) (Model, tea.Cmd) {
	next, res := m.Session.ClearDue(id)
	m.Session = next
	if res.Skipped == nil {
		m.Status = StatusBar{Text: "due date cleared"}
	}
	return m.applyResult(res)
}

func (m Model) onTick(tick scheduler.Tick) (Model, tea.Cmd) {
	m.Now = tick.At
	next, res := m.Session.ScanDue(tick.At)
	m.Session = next
	if m.ticks != nil {
		if dropped := m.ticks.Dropped(); dropped > m.dropped {
			m.log.Debug("ticks dropped", zap.Uint64("dropped", dropped-m.dropped))
			m.dropped = dropped
		}
	}
	return m.applyResult(res)
}

// applyResult publishes what a session operation produced: events, the grow pulse
// and the bloom decoration.
func (m Model) applyResult(res garden.Result) (Model, tea.Cmd) {
	m.Cursor = clampCursor(m.Cursor, len(m.Session.Tasks()))
	if res.Skipped != nil {
		m.log.Debug("operation skipped", zap.Error(res.Skipped))
		m.Status = StatusBar{Text: res.Skipped.Error()}
	}
	for _, ev := range res.Events {
		m.recordEvent(ev)
	}

	switch res.Bloom {
	case growth.TransitionEntered:
		m.Sparkles = growth.Sparkles(m.rng)
		name := "Your plant"
		if p, ok := m.Session.Plant(); ok {
			name = p.Name
		}
		m.notify("", "Full bloom", fmt.Sprintf("%s reached full bloom!", name), "success")
	case growth.TransitionLeft:
		m.Sparkles = nil
	}

	if m.Overlay == OverlayHistory && len(res.Events) > 0 {
		m.loadHistory()
	}

	if !res.Pulse {
		return m, nil
	}
	m.Pulsing = true
	m.pulseSeq++
	return m, pulseCmd(m.pulseSeq)
}

func pulseCmd(seq int) tea.Cmd {
	return tea.Tick(growth.PulseDuration, func(time.Time) tea.Msg { return PulseDoneMsg{Seq: seq} })
}

func waitForTickCmd(ch <-chan scheduler.Tick) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		tick, ok := <-ch
		if !ok {
			return nil
		}
		return TickMsg{Tick: tick}
	}
}

var eventTitles = map[model.EventKind]string{
	model.EventTaskAdded:     "Task added",
	model.EventTaskCompleted: "Task completed",
	model.EventTaskDue:       "Task due",
}

func (m *Model) recordEvent(ev model.Event) {
	plantID := ""
	if p, ok := m.Session.Plant(); ok {
		plantID = p.ID
	}
	m.log.Info("task event",
		zap.String("kind", string(ev.Kind)),
		zap.String("task_id", ev.TaskID),
		zap.String("plant", plantID),
		zap.Time("at", ev.At),
	)

	level := "info"
	body := ev.Text
	switch ev.Kind {
	case model.EventTaskDue:
		level = "alert"
		body = fmt.Sprintf("Task due: %s", ev.Text)
	case model.EventTaskCompleted:
		level = "success"
	}
	m.notify(ev.Kind, eventTitles[ev.Kind], body, level)
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", eventTitles[ev.Kind], ev.Text)}

	if m.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	if _, err := m.journal.Append(ctx, journal.FromEvent(ev, plantID)); err != nil {
		m.log.Warn("journal append failed", zap.Error(err))
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("journal: %v", err), IsError: true}
	}
}

func (m *Model) loadHistory() {
	if m.journal == nil {
		m.History = nil
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	entries, err := m.journal.List(ctx, journal.ListFilter{Kind: m.HistoryFilter, Limit: m.cfg.HistoryLimit})
	if err != nil {
		m.log.Warn("journal list failed", zap.Error(err))
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("journal: %v", err), IsError: true}
		return
	}
	m.History = entries
}

func (m Model) selectedTaskID() (string, bool) {
	tasks := m.Session.Tasks()
	if len(tasks) == 0 {
		return "", false
	}
	return tasks[clampCursor(m.Cursor, len(tasks))].ID, true
}
