package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/n5bot/pkg/models"
)

// memStore keeps the collection in memory and counts writes
type memStore struct {
	items []models.UserProgress
	saves int
}

func (s *memStore) LoadAll() []models.UserProgress {
	return append([]models.UserProgress(nil), s.items...)
}

func (s *memStore) SaveAll(items []models.UserProgress) error {
	s.items = append([]models.UserProgress(nil), items...)
	s.saves++
	return nil
}

func find(t *testing.T, s *memStore, itemType models.ItemType, itemID int) models.UserProgress {
	t.Helper()
	for _, p := range s.items {
		if p.Matches(1, itemType, itemID) {
			return p
		}
	}
	t.Fatalf("no record for %s/%d", itemType, itemID)
	return models.UserProgress{}
}

func TestFreshKeyWrongAnswerClampsAtFloor(t *testing.T) {
	store := &memStore{}
	tracker := New(store)

	require.NoError(t, tracker.Update(1, models.ItemTypeVocab, 7, false, time.Time{}))

	p := find(t, store, models.ItemTypeVocab, 7)
	assert.Equal(t, 0, p.SRSLevel, "level must not go negative")
	assert.Equal(t, 0, p.RightCount)
	assert.Equal(t, 1, p.WrongCount)
	require.NotNil(t, p.LastReview)
}

func TestTenCorrectAnswersClampAtCeiling(t *testing.T) {
	store := &memStore{}
	tracker := New(store)

	for i := 0; i < 10; i++ {
		require.NoError(t, tracker.Update(1, models.ItemTypeKanji, 3, true, time.Time{}))
	}

	p := find(t, store, models.ItemTypeKanji, 3)
	assert.Equal(t, models.MaxSRSLevel, p.SRSLevel)
	assert.Equal(t, 10, p.RightCount)
	assert.Equal(t, 0, p.WrongCount)
}

func TestLevelFourIsNotTerminal(t *testing.T) {
	store := &memStore{items: []models.UserProgress{
		{UserID: 1, ItemType: models.ItemTypeGrammar, ItemID: 2, SRSLevel: 4, RightCount: 4},
	}}
	tracker := New(store)

	require.NoError(t, tracker.Update(1, models.ItemTypeGrammar, 2, false, time.Time{}))

	p := find(t, store, models.ItemTypeGrammar, 2)
	assert.Equal(t, 3, p.SRSLevel)
	assert.Equal(t, 1, p.WrongCount)
}

func TestSameKeyUpdatesSameRecord(t *testing.T) {
	store := &memStore{}
	tracker := New(store)

	require.NoError(t, tracker.Update(1, models.ItemTypeVocab, 5, true, time.Time{}))
	require.NoError(t, tracker.Update(1, models.ItemTypeVocab, 5, false, time.Time{}))

	require.Len(t, store.items, 1)
	p := store.items[0]
	assert.Equal(t, 0, p.SRSLevel)
	assert.Equal(t, 1, p.RightCount)
	assert.Equal(t, 1, p.WrongCount)
}

func TestDistinctKeysCreateDistinctRecords(t *testing.T) {
	store := &memStore{}
	tracker := New(store)

	require.NoError(t, tracker.Update(1, models.ItemTypeVocab, 1, true, time.Time{}))
	require.NoError(t, tracker.Update(1, models.ItemTypeKanji, 1, true, time.Time{}))
	require.NoError(t, tracker.Update(1, models.ItemTypeKana, 1, true, time.Time{}))
	require.NoError(t, tracker.Update(2, models.ItemTypeKana, 1, true, time.Time{}))

	assert.Len(t, store.items, 4, "same item id under different types or users is a different key")
}

func TestExplicitTimestampIsRecorded(t *testing.T) {
	store := &memStore{}
	tracker := New(store)

	at := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	require.NoError(t, tracker.Update(1, models.ItemTypeVocab, 1, true, at))

	p := find(t, store, models.ItemTypeVocab, 1)
	require.NotNil(t, p.LastReview)
	assert.True(t, p.LastReview.Equal(at))
}

func TestZeroTimestampUsesClock(t *testing.T) {
	store := &memStore{}
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tracker := New(store).WithClock(func() time.Time { return now })

	require.NoError(t, tracker.Update(1, models.ItemTypeVocab, 1, true, time.Time{}))

	p := find(t, store, models.ItemTypeVocab, 1)
	require.NotNil(t, p.LastReview)
	assert.True(t, p.LastReview.Equal(now))
}

func TestUnknownItemTypeRejected(t *testing.T) {
	store := &memStore{}
	tracker := New(store)

	err := tracker.Update(1, models.ItemType("radicals"), 1, true, time.Time{})
	require.Error(t, err)
	assert.Zero(t, store.saves, "nothing must be persisted for a bad key")
}
