// Package alerts finds tasks whose deadline has passed.
package alerts

import (
	"time"

	"github.com/sandeepkv93/plantd/internal/model"
)

// Due is one task that should be announced.
type Due struct {
	TaskID string
	Text   string
	DueAt  time.Time
}

// Scan returns the tasks that are due at now, in list order. A task qualifies when it
// has a parseable due value, is neither completed nor already alerted, and now is not
// before its deadline. Zone-less due values are read in loc. Scan never mutates tasks.
func Scan(tasks []model.Task, now time.Time, loc *time.Location) []Due {
	var out []Due
	for _, t := range tasks {
		if !t.HasDue() || t.Alerted || t.Completed {
			continue
		}
		at, err := model.ParseDue(t.Due, loc)
		if err != nil {
			continue
		}
		if now.Before(at) {
			continue
		}
		out = append(out, Due{TaskID: t.ID, Text: t.Text, DueAt: at})
	}
	return out
}

// Next returns the earliest pending deadline, if any. It backs the countdown line.
func Next(tasks []model.Task, loc *time.Location) (model.Task, time.Time, bool) {
	var (
		best   model.Task
		bestAt time.Time
		found  bool
	)
	for _, t := range tasks {
		if !t.HasDue() || t.Alerted || t.Completed {
			continue
		}
		at, err := model.ParseDue(t.Due, loc)
		if err != nil {
			continue
		}
		if !found || at.Before(bestAt) {
			best, bestAt, found = t, at, true
		}
	}
	return best, bestAt, found
}
