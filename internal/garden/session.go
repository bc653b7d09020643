package garden

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/plantd/internal/alerts"
	"github.com/sandeepkv93/plantd/internal/growth"
	"github.com/sandeepkv93/plantd/internal/model"
)

// Result is what a session operation produced besides the new state.
type Result struct {
	Events []model.Event
	// Pulse asks the view for the short grow animation.
	Pulse bool
	Bloom growth.Transition
	// Skipped explains why the operation was a no-op. It is informational only.
	Skipped error
}

// Session owns the garden state: the selected plant and its task store.
type Session struct {
	plant *model.Plant
	store Store
	loc   *time.Location
}

type Option func(*Session)

func WithIDs(ids IDFunc) Option {
	return func(s *Session) { s.store = NewStore(ids) }
}

// WithLocation sets the zone used for due values without an offset.
func WithLocation(loc *time.Location) Option {
	return func(s *Session) { s.loc = loc }
}

func NewSession(opts ...Option) Session {
	s := Session{store: NewStore(nil), loc: time.Local}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Session) Plant() (model.Plant, bool) {
	if s.plant == nil {
		return model.Plant{}, false
	}
	return *s.plant, true
}

func (s Session) Store() Store         { return s.store }
func (s Session) Tasks() []model.Task  { return s.store.Tasks() }
func (s Session) Counts() model.Counts { return s.store.Counts() }
func (s Session) Location() *time.Location {
	return s.loc
}

func (s Session) Growth() growth.Snapshot {
	plantID := ""
	if s.plant != nil {
		plantID = s.plant.ID
	}
	return growth.Compute(s.store.Counts(), plantID)
}

// SelectPlant starts a garden with the given catalog plant and an empty task list.
func (s Session) SelectPlant(id string) (Session, Result) {
	opt, err := model.LookupPlant(id)
	if err != nil {
		return s, Result{Skipped: err}
	}
	p := model.NewPlant(opt)
	s.plant = &p
	s.store = s.store.Reset()
	return s, Result{}
}

func (s Session) ResetGarden() (Session, Result) {
	prev := growth.PhaseOf(s.store.Counts())
	s.plant = nil
	s.store = s.store.Reset()
	return s, Result{Bloom: growth.DetectTransition(prev, growth.PhaseGrowing)}
}

func (s Session) AddTask(text, due string, now time.Time) (Session, Result) {
	before := s.store.Counts()
	store, task, ok := s.store.Add(text, due)
	if !ok {
		return s, Result{Skipped: model.ErrEmptyText}
	}
	s.store = store
	res := s.recompute(before)
	res.Events = []model.Event{{Kind: model.EventTaskAdded, TaskID: task.ID, Text: task.Text, At: now}}
	return s, res
}

func (s Session) ToggleTask(id string, now time.Time) (Session, Result) {
	before := s.store.Counts()
	store, toggled := s.store.Toggle(id)
	if !toggled.Found {
		return s, Result{Skipped: notFound(id)}
	}
	s.store = store
	res := s.recompute(before)
	if toggled.Completed {
		res.Events = []model.Event{{Kind: model.EventTaskCompleted, TaskID: id, Text: toggled.Task.Text, At: now}}
	}
	return s, res
}

func (s Session) DeleteTask(id string) (Session, Result) {
	before := s.store.Counts()
	store, ok := s.store.Delete(id)
	if !ok {
		return s, Result{Skipped: notFound(id)}
	}
	s.store = store
	return s, s.recompute(before)
}

func (s Session) ClearDue(id string) (Session, Result) {
	store, ok := s.store.ClearDue(id)
	if !ok {
		return s, Result{Skipped: notFound(id)}
	}
	s.store = store
	return s, Result{}
}

// ScanDue alerts every incomplete task whose deadline has passed, once.
func (s Session) ScanDue(now time.Time) (Session, Result) {
	due := alerts.Scan(s.store.Tasks(), now, s.loc)
	if len(due) == 0 {
		return s, Result{}
	}
	ids := make([]string, 0, len(due))
	events := make([]model.Event, 0, len(due))
	for _, d := range due {
		ids = append(ids, d.TaskID)
		events = append(events, model.Event{Kind: model.EventTaskDue, TaskID: d.TaskID, Text: d.Text, At: now})
	}
	s.store = s.store.MarkAlerted(ids...)
	return s, Result{Events: events}
}

func (s *Session) recompute(before model.Counts) Result {
	after := s.store.Counts()
	if s.plant != nil {
		p := *s.plant
		p.GrowthStage = growth.GrowthStage(after.Completed, after.Total)
		s.plant = &p
	}
	return Result{
		Pulse: growth.ShouldPulse(before, after),
		Bloom: growth.DetectTransition(growth.PhaseOf(before), growth.PhaseOf(after)),
	}
}

func notFound(id string) error {
	return fmt.Errorf("%w: %q", model.ErrTaskNotFound, id)
}
