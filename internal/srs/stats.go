package srs

import "github.com/example/n5bot/pkg/models"

// TypeStats aggregates progress for one item type
type TypeStats struct {
	Total      int
	Levels     [models.MaxSRSLevel + 1]int // record count per srs level
	RightCount int
	WrongCount int
}

// Weak reports how many tracked items sit at level 0 or 1
func (s TypeStats) Weak() int {
	return s.Levels[0] + s.Levels[1]
}

// Summarize groups the progress collection by item type
func Summarize(items []models.UserProgress) map[models.ItemType]TypeStats {
	stats := make(map[models.ItemType]TypeStats)
	for _, p := range items {
		s := stats[p.ItemType]
		s.Total++
		if p.SRSLevel >= models.MinSRSLevel && p.SRSLevel <= models.MaxSRSLevel {
			s.Levels[p.SRSLevel]++
		}
		s.RightCount += p.RightCount
		s.WrongCount += p.WrongCount
		stats[p.ItemType] = s
	}
	return stats
}
