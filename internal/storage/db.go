package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/n5bot/pkg/models"
)

// DB wraps an sqlx connection to the optional SQL backend. It keeps the
// same observable contract as the file stores but replaces the
// whole-document rewrite with keyed upserts, which scales past the few
// hundred records the JSON files are meant for.
type DB struct {
	conn   *sqlx.DB
	dbType string
}

// OpenDB connects to the database selected by the DB_TYPE environment
// variable ("sqlite" by default, "postgres" with DATABASE_URL) and
// creates the schema if needed
func OpenDB(dataDir string) (*DB, error) {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var conn *sqlx.DB
	var err error
	switch dbType {
	case "sqlite":
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
		conn, err = sqlx.Connect("sqlite3", filepath.Join(dataDir, "n5bot.db"))
		if err == nil {
			// SQLite doesn't support multiple writers
			conn.SetMaxOpenConns(1)
			conn.SetMaxIdleConns(1)
		}
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		conn, err = sqlx.Connect("postgres", dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	db := &DB{conn: conn, dbType: dbType}
	if err := db.initializeSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the underlying connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Progress returns the SQL-backed progress store
func (db *DB) Progress() ProgressStore {
	return &dbProgressStore{db: db}
}

// Sessions returns the SQL-backed session store
func (db *DB) Sessions() SessionStore {
	return &dbSessionStore{db: db}
}

func (db *DB) initializeSchema() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS user_progress (
			user_id INTEGER NOT NULL,
			item_type TEXT NOT NULL,
			item_id INTEGER NOT NULL,
			srs_level INTEGER NOT NULL DEFAULT 0,
			last_review TIMESTAMP,
			right_count INTEGER NOT NULL DEFAULT 0,
			wrong_count INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, item_type, item_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_progress table: %v", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS study_sessions (
			id INTEGER PRIMARY KEY,
			session_type TEXT NOT NULL,
			start_time TIMESTAMP NOT NULL,
			end_time TIMESTAMP NOT NULL,
			correct_count INTEGER NOT NULL,
			total_questions INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create study_sessions table: %v", err)
	}
	return nil
}

type progressRow struct {
	UserID     int64      `db:"user_id"`
	ItemType   string     `db:"item_type"`
	ItemID     int        `db:"item_id"`
	SRSLevel   int        `db:"srs_level"`
	LastReview *time.Time `db:"last_review"`
	RightCount int        `db:"right_count"`
	WrongCount int        `db:"wrong_count"`
}

type dbProgressStore struct {
	db *DB
}

func (s *dbProgressStore) LoadAll() []models.UserProgress {
	var rows []progressRow
	err := s.db.conn.Select(&rows, "SELECT user_id, item_type, item_id, srs_level, last_review, right_count, wrong_count FROM user_progress")
	if err != nil {
		log.Printf("storage: failed to load progress from database, starting empty: %v", err)
		return nil
	}

	items := make([]models.UserProgress, 0, len(rows))
	for _, r := range rows {
		items = append(items, models.UserProgress{
			UserID:     r.UserID,
			ItemType:   models.ItemType(r.ItemType),
			ItemID:     r.ItemID,
			SRSLevel:   r.SRSLevel,
			LastReview: r.LastReview,
			RightCount: r.RightCount,
			WrongCount: r.WrongCount,
		})
	}
	return items
}

// SaveAll upserts every record by its identity key. Records are never
// deleted by the tracker, so no delete pass is needed.
func (s *dbProgressStore) SaveAll(items []models.UserProgress) error {
	query := `
		INSERT INTO user_progress (user_id, item_type, item_id, srs_level, last_review, right_count, wrong_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, item_type, item_id) DO UPDATE SET
			srs_level = EXCLUDED.srs_level,
			last_review = EXCLUDED.last_review,
			right_count = EXCLUDED.right_count,
			wrong_count = EXCLUDED.wrong_count
	`
	for i := range items {
		p := &items[i]
		_, err := s.db.conn.Exec(query,
			p.UserID, string(p.ItemType), p.ItemID, p.SRSLevel, p.LastReview, p.RightCount, p.WrongCount)
		if err != nil {
			return fmt.Errorf("failed to upsert progress for %s/%d: %v", p.ItemType, p.ItemID, err)
		}
	}
	return nil
}

type sessionRow struct {
	ID             int       `db:"id"`
	SessionType    string    `db:"session_type"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	CorrectCount   int       `db:"correct_count"`
	TotalQuestions int       `db:"total_questions"`
}

type dbSessionStore struct {
	db *DB
}

func (s *dbSessionStore) LoadAll() []models.StudySession {
	var rows []sessionRow
	err := s.db.conn.Select(&rows, "SELECT id, session_type, start_time, end_time, correct_count, total_questions FROM study_sessions ORDER BY id")
	if err != nil {
		log.Printf("storage: failed to load sessions from database, starting empty: %v", err)
		return nil
	}

	sessions := make([]models.StudySession, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, models.StudySession(r))
	}
	return sessions
}

func (s *dbSessionStore) Append(session models.StudySession) (models.StudySession, error) {
	err := s.db.conn.Get(&session.ID, "SELECT COALESCE(MAX(id), 0) + 1 FROM study_sessions")
	if err != nil {
		return models.StudySession{}, fmt.Errorf("failed to assign session id: %v", err)
	}

	_, err = s.db.conn.Exec(`
		INSERT INTO study_sessions (id, session_type, start_time, end_time, correct_count, total_questions)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		session.ID, session.SessionType, session.StartTime, session.EndTime,
		session.CorrectCount, session.TotalQuestions)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("failed to insert session: %v", err)
	}
	return session, nil
}
