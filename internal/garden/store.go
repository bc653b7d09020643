package garden

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sandeepkv93/plantd/internal/model"
)

// IDFunc produces a task id. seq is the store's sequential counter, starting at 1
// and reset by Store.Reset.
type IDFunc func(seq int) string

func UUIDs(int) string { return uuid.NewString() }

func Sequential(seq int) string { return fmt.Sprintf("task-%d", seq) }

// Store is the ordered task list. It has value semantics: every operation returns
// a new Store and leaves the receiver untouched.
type Store struct {
	tasks  []model.Task
	seq    int
	nextID IDFunc
}

func NewStore(ids IDFunc) Store {
	if ids == nil {
		ids = UUIDs
	}
	return Store{nextID: ids}
}

func (s Store) Len() int { return len(s.tasks) }

func (s Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s Store) Get(id string) (model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

func (s Store) Counts() model.Counts {
	return model.CountTasks(s.tasks)
}

// Add appends a task. Blank text is ignored and reported with ok == false.
func (s Store) Add(text, due string) (Store, model.Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s, model.Task{}, false
	}
	if s.nextID == nil {
		s.nextID = UUIDs
	}
	s.seq++
	task := model.Task{
		ID:   s.nextID(s.seq),
		Text: trimmed,
		Due:  strings.TrimSpace(due),
	}
	s.tasks = append(s.Tasks(), task)
	return s, task, true
}

// Toggled describes the outcome of Store.Toggle.
type Toggled struct {
	Found bool
	Task  model.Task
	// Completed is set only on a false -> true transition.
	Completed bool
}

func (s Store) Toggle(id string) (Store, Toggled) {
	i := s.index(id)
	if i < 0 {
		return s, Toggled{}
	}
	tasks := s.Tasks()
	tasks[i].Completed = !tasks[i].Completed
	s.tasks = tasks
	return s, Toggled{Found: true, Task: tasks[i], Completed: tasks[i].Completed}
}

func (s Store) Delete(id string) (Store, bool) {
	i := s.index(id)
	if i < 0 {
		return s, false
	}
	tasks := make([]model.Task, 0, len(s.tasks)-1)
	tasks = append(tasks, s.tasks[:i]...)
	tasks = append(tasks, s.tasks[i+1:]...)
	s.tasks = tasks
	return s, true
}

// ClearDue drops the deadline of a task and re-arms its alert.
func (s Store) ClearDue(id string) (Store, bool) {
	i := s.index(id)
	if i < 0 {
		return s, false
	}
	tasks := s.Tasks()
	tasks[i].Due = ""
	tasks[i].Alerted = false
	s.tasks = tasks
	return s, true
}

// MarkAlerted applies a scan result as one replacement of the task list. Ids that
// no longer exist are skipped.
func (s Store) MarkAlerted(ids ...string) Store {
	if len(ids) == 0 {
		return s
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	tasks := s.Tasks()
	for i := range tasks {
		if want[tasks[i].ID] && tasks[i].HasDue() {
			tasks[i].Alerted = true
		}
	}
	s.tasks = tasks
	return s
}

func (s Store) Reset() Store {
	return Store{nextID: s.nextID}
}

func (s Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
