// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"maps"
	"slices"
	"time"
)

// Debouncer holds the latest edit of each curve until it has been
// quiet for Delay. Time is passed in by the caller.
type Debouncer struct {
	Delay time.Duration

	pending map[int]pendingEdit
}

type pendingEdit struct {
	text string
	at   time.Time
}

// NewDebouncer returns a [Debouncer] with the given delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay, pending: map[int]pendingEdit{}}
}

// Add records text as the latest edit of curve id at time now,
// replacing any pending edit of it and restarting its quiet period.
func (d *Debouncer) Add(id int, text string, now time.Time) {
	if d.pending == nil {
		d.pending = map[int]pendingEdit{}
	}
	d.pending[id] = pendingEdit{text: text, at: now}
}

// Drop discards the pending edit of curve id.
func (d *Debouncer) Drop(id int) {
	delete(d.pending, id)
}

// Len returns the number of pending edits.
func (d *Debouncer) Len() int { return len(d.pending) }

// Due removes and returns, ordered by id, the edits that have been
// quiet for at least Delay at time now.
func (d *Debouncer) Due(now time.Time) []EditEvent {
	var due []EditEvent
	for _, id := range slices.Sorted(maps.Keys(d.pending)) {
		pe := d.pending[id]
		if now.Sub(pe.at) < d.Delay {
			continue
		}
		due = append(due, EditEvent{ID: id, Text: pe.text})
		delete(d.pending, id)
	}
	return due
}

// Flush removes and returns all pending edits, ordered by id.
func (d *Debouncer) Flush() []EditEvent {
	var all []EditEvent
	for _, id := range slices.Sorted(maps.Keys(d.pending)) {
		all = append(all, EditEvent{ID: id, Text: d.pending[id].text})
	}
	clear(d.pending)
	return all
}

// Next returns how long after now the next pending edit becomes due,
// and false if there is none.
func (d *Debouncer) Next(now time.Time) (time.Duration, bool) {
	if len(d.pending) == 0 {
		return 0, false
	}
	var next time.Duration
	first := true
	for _, pe := range d.pending {
		w := max(pe.at.Add(d.Delay).Sub(now), 0)
		if first || w < next {
			next, first = w, false
		}
	}
	return next, true
}
