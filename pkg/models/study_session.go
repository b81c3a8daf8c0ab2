package models

import "time"

// SessionTypeExam is the only session type recorded today
const SessionTypeExam = "exam"

// StudySession records one completed exam run. The ID is assigned by the
// session store on append and the record is immutable afterwards.
type StudySession struct {
	ID             int       `json:"id" db:"id"`
	SessionType    string    `json:"session_type" db:"session_type"`
	StartTime      time.Time `json:"start_time" db:"start_time"`
	EndTime        time.Time `json:"end_time" db:"end_time"`
	CorrectCount   int       `json:"correct_count" db:"correct_count"`
	TotalQuestions int       `json:"total_questions" db:"total_questions"`
}
