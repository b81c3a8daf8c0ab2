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

// progressRecord is the wire form of a progress entry. last_review is
// an ISO-like timestamp string, or null when the item was never
// reviewed.
type progressRecord struct {
	UserID     int64   `json:"user_id"`
	ItemType   string  `json:"item_type"`
	ItemID     int     `json:"item_id"`
	SRSLevel   int     `json:"srs_level"`
	LastReview *string `json:"last_review"`
	RightCount int     `json:"right_count"`
	WrongCount int     `json:"wrong_count"`
}

// FileProgressStore keeps all progress records in one JSON document
type FileProgressStore struct {
	path string
}

// NewFileProgressStore creates a store backed by the given file path
func NewFileProgressStore(path string) *FileProgressStore {
	return &FileProgressStore{path: path}
}

// LoadAll reads the whole progress collection. Absent file means no
// history yet; a parse failure is logged and treated the same way.
func (s *FileProgressStore) LoadAll() []models.UserProgress {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: cannot read %s: %v", s.path, err)
		}
		return nil
	}

	var records []progressRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("storage: malformed progress file %s, starting empty: %v", s.path, err)
		return nil
	}

	items := make([]models.UserProgress, 0, len(records))
	for _, r := range records {
		items = append(items, r.toModel())
	}
	return items
}

// SaveAll replaces the persisted collection with the given records
func (s *FileProgressStore) SaveAll(items []models.UserProgress) error {
	records := make([]progressRecord, 0, len(items))
	for i := range items {
		records = append(records, toRecord(&items[i]))
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode progress: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}
	return os.WriteFile(s.path, raw, 0644)
}

func (r *progressRecord) toModel() models.UserProgress {
	p := models.UserProgress{
		UserID:     r.UserID,
		ItemType:   models.ItemType(r.ItemType),
		ItemID:     r.ItemID,
		SRSLevel:   r.SRSLevel,
		RightCount: r.RightCount,
		WrongCount: r.WrongCount,
	}
	if r.LastReview != nil {
		if t, err := time.Parse(timeLayout, *r.LastReview); err == nil {
			p.LastReview = &t
		} else {
			log.Printf("storage: bad last_review %q for item %s/%d, dropping it", *r.LastReview, r.ItemType, r.ItemID)
		}
	}
	return p
}

func toRecord(p *models.UserProgress) progressRecord {
	r := progressRecord{
		UserID:     p.UserID,
		ItemType:   string(p.ItemType),
		ItemID:     p.ItemID,
		SRSLevel:   p.SRSLevel,
		RightCount: p.RightCount,
		WrongCount: p.WrongCount,
	}
	if p.LastReview != nil {
		s := p.LastReview.Format(timeLayout)
		r.LastReview = &s
	}
	return r
}
