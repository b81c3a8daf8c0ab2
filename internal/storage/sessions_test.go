package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/n5bot/pkg/models"
)

func examSession(start time.Time, correct, total int) models.StudySession {
	return models.StudySession{
		SessionType:    models.SessionTypeExam,
		StartTime:      start,
		EndTime:        start.Add(5 * time.Minute),
		CorrectCount:   correct,
		TotalQuestions: total,
	}
}

func TestAppendAssignsIncreasingIDs(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "sessions.json"))
	start := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	first, err := store.Append(examSession(start, 15, 20))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := store.Append(examSession(start.Add(time.Hour), 18, 20))
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	sessions := store.LoadAll()
	require.Len(t, sessions, 2)
	assert.Equal(t, 15, sessions[0].CorrectCount)
	assert.True(t, sessions[1].StartTime.Equal(start.Add(time.Hour)))
}

func TestAppendAfterGapUsesMaxPlusOne(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "sessions.json"))
	start := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.saveAll([]models.StudySession{
		{ID: 7, SessionType: models.SessionTypeExam, StartTime: start, EndTime: start, TotalQuestions: 10},
	}))

	s, err := store.Append(examSession(start, 9, 10))
	require.NoError(t, err)
	assert.Equal(t, 8, s.ID)
}

func TestSessionsMalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0644))

	store := NewFileSessionStore(path)
	assert.Empty(t, store.LoadAll())

	// Appending to a corrupted history restarts id assignment
	s, err := store.Append(examSession(time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC), 1, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, s.ID)
}
