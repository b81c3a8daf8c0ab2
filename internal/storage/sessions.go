package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/example/n5bot/pkg/models"
)

// sessionRecord is the wire form of a study session
type sessionRecord struct {
	ID             int    `json:"id"`
	SessionType    string `json:"session_type"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	CorrectCount   int    `json:"correct_count"`
	TotalQuestions int    `json:"total_questions"`
}

// FileSessionStore keeps the exam history in one JSON document
type FileSessionStore struct {
	path string
}

// NewFileSessionStore creates a store backed by the given file path
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// LoadAll reads the whole session history, fail-soft like progress
func (s *FileSessionStore) LoadAll() []models.StudySession {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: cannot read %s: %v", s.path, err)
		}
		return nil
	}

	var records []sessionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("storage: malformed sessions file %s, starting empty: %v", s.path, err)
		return nil
	}

	sessions := make([]models.StudySession, 0, len(records))
	for _, r := range records {
		start, err := time.Parse(timeLayout, r.StartTime)
		if err != nil {
			log.Printf("storage: bad start_time %q in session %d, skipping it", r.StartTime, r.ID)
			continue
		}
		end, err := time.Parse(timeLayout, r.EndTime)
		if err != nil {
			log.Printf("storage: bad end_time %q in session %d, skipping it", r.EndTime, r.ID)
			continue
		}
		sessions = append(sessions, models.StudySession{
			ID:             r.ID,
			SessionType:    r.SessionType,
			StartTime:      start,
			EndTime:        end,
			CorrectCount:   r.CorrectCount,
			TotalQuestions: r.TotalQuestions,
		})
	}
	return sessions
}

// Append assigns the next id to the session, adds it to the history and
// rewrites the document
func (s *FileSessionStore) Append(session models.StudySession) (models.StudySession, error) {
	sessions := s.LoadAll()

	nextID := 0
	for _, existing := range sessions {
		if existing.ID > nextID {
			nextID = existing.ID
		}
	}
	session.ID = nextID + 1
	sessions = append(sessions, session)

	if err := s.saveAll(sessions); err != nil {
		return models.StudySession{}, err
	}
	return session, nil
}

func (s *FileSessionStore) saveAll(sessions []models.StudySession) error {
	records := make([]sessionRecord, 0, len(sessions))
	for _, session := range sessions {
		records = append(records, sessionRecord{
			ID:             session.ID,
			SessionType:    session.SessionType,
			StartTime:      session.StartTime.Format(timeLayout),
			EndTime:        session.EndTime.Format(timeLayout),
			CorrectCount:   session.CorrectCount,
			TotalQuestions: session.TotalQuestions,
		})
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}
	return os.WriteFile(s.path, raw, 0644)
}
