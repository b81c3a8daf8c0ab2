// Package storage persists the learner's progress, exam sessions and
// settings. The default backend keeps each collection in a single JSON
// document that is read and rewritten wholesale; an SQL backend with
// keyed upserts is available for larger data sets. Neither backend is
// safe against concurrent writers: the app assumes a single process
// owning the files (or database) at a time.
package storage

import "github.com/example/n5bot/pkg/models"

// timeLayout is the ISO-like format used for persisted timestamps
const timeLayout = "2006-01-02T15:04:05"

// ProgressStore persists the full set of per-item progress records.
// LoadAll is deliberately fail-soft: a missing or malformed document
// yields an empty collection (with a logged warning) so a corrupted
// file never blocks studying.
type ProgressStore interface {
	LoadAll() []models.UserProgress
	SaveAll(items []models.UserProgress) error
}

// SessionStore persists the exam session history. Append assigns the
// next id (max existing + 1) and returns the stored session.
type SessionStore interface {
	LoadAll() []models.StudySession
	Append(session models.StudySession) (models.StudySession, error)
}
