// Package journal records the notification stream of a garden session in SQLite so
// the history panel can page through it. It stores events, not tasks; the garden
// itself lives only in memory.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/plantd/internal/model"
)

var (
	ErrNotFound    = errors.New("journal: not found")
	ErrInvalidKind = errors.New("journal: invalid event kind")
)

type Entry struct {
	Seq     int64
	Kind    model.EventKind
	TaskID  string
	Text    string
	PlantID string
	At      time.Time
}

// FromEvent builds an entry for the given plant.
func FromEvent(ev model.Event, plantID string) Entry {
	return Entry{Kind: ev.Kind, TaskID: ev.TaskID, Text: ev.Text, PlantID: plantID, At: ev.At}
}

type ListFilter struct {
	Kind   model.EventKind
	TaskID string
	Limit  int
	Offset int
}

type Repository interface {
	Append(ctx context.Context, in Entry) (Entry, error)
	Get(ctx context.Context, seq int64) (Entry, error)
	// List returns entries newest first.
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
	Count(ctx context.Context, kind model.EventKind) (int, error)
	Clear(ctx context.Context) error
	Close() error
}
