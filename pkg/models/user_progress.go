package models

import "time"

// SRS level bounds. Level 4 is "most reviewed", not a terminal state:
// a later wrong answer still moves the level down.
const (
	MinSRSLevel = 0
	MaxSRSLevel = 4
)

// UserProgress tracks how well one content item is known.
// The tuple (UserID, ItemType, ItemID) is the record's identity; there
// is no surrogate id.
type UserProgress struct {
	UserID     int64      `json:"user_id" db:"user_id"`
	ItemType   ItemType   `json:"item_type" db:"item_type"`
	ItemID     int        `json:"item_id" db:"item_id"`
	SRSLevel   int        `json:"srs_level" db:"srs_level"`
	LastReview *time.Time `json:"last_review" db:"last_review"` // nil until first review
	RightCount int        `json:"right_count" db:"right_count"`
	WrongCount int        `json:"wrong_count" db:"wrong_count"`
}

// Matches reports whether the record belongs to the given identity key
func (p *UserProgress) Matches(userID int64, itemType ItemType, itemID int) bool {
	return p.UserID == userID && p.ItemType == itemType && p.ItemID == itemID
}
