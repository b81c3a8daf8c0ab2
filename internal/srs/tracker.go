// Package srs implements the simplified spaced-repetition mastery
// tracker: a per-item level from 0 to 4 that rises on correct answers
// and falls on wrong ones. It is a proficiency counter, not an
// interval scheduler; there is no due date to forecast.
package srs

import (
	"fmt"
	"time"

	"github.com/example/n5bot/internal/storage"
	"github.com/example/n5bot/pkg/models"
)

// Tracker applies answer events to the persisted progress collection.
// Updates are read-modify-write over the whole collection; with a
// single process driving the UI that is safe, but two concurrent
// writers would silently lose updates.
type Tracker struct {
	store storage.ProgressStore
	now   func() time.Time
}

// New creates a tracker over the given progress store
func New(store storage.ProgressStore) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// WithClock replaces the wall clock, for tests
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Update records one answer event for an item. The matching progress
// record is created at level 0 on first sight. A zero "at" time means
// "now". Level 4 is not terminal: a wrong answer at 4 drops back to 3.
func (t *Tracker) Update(userID int64, itemType models.ItemType, itemID int, correct bool, at time.Time) error {
	if !itemType.Valid() {
		return fmt.Errorf("srs: unknown item type %q", itemType)
	}
	if at.IsZero() {
		at = t.now()
	}

	items := t.store.LoadAll()

	idx := -1
	for i := range items {
		if items[i].Matches(userID, itemType, itemID) {
			idx = i
			break
		}
	}
	if idx == -1 {
		items = append(items, models.UserProgress{
			UserID:   userID,
			ItemType: itemType,
			ItemID:   itemID,
		})
		idx = len(items) - 1
	}

	apply(&items[idx], correct, at)

	return t.store.SaveAll(items)
}

// apply advances one record by a single answer event
func apply(p *models.UserProgress, correct bool, at time.Time) {
	if correct {
		if p.SRSLevel < models.MaxSRSLevel {
			p.SRSLevel++
		}
		p.RightCount++
	} else {
		if p.SRSLevel > models.MinSRSLevel {
			p.SRSLevel--
		}
		p.WrongCount++
	}
	p.LastReview = &at
}
