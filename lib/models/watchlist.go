package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// AnimeList holds a user's entire watch-list as one JSON document. Every save
// replaces the whole document; there are no per-entry rows.
type AnimeList struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex"`
	Data   string
}

type WatchlistEntry struct {
	AnimeID         int      `json:"mal_id"`
	Title           string   `json:"title"`
	ImageURL        string   `json:"image_url"`
	Episodes        int      `json:"episodes"`
	Category        string   `json:"category"`
	WatchedEpisodes int      `json:"watchedEpisodes"`
	Genres          []string `json:"genres"`
}

var Categories = []string{"Watching", "Completed", "On Hold", "Dropped", "Plan to Watch"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Clamp forces the watched count into [0, Episodes]. An unknown total episode
// count (0) only floors the watched count at zero.
func (e *WatchlistEntry) Clamp() {
	if e.WatchedEpisodes < 0 {
		e.WatchedEpisodes = 0
	}
	if e.Episodes > 0 && e.WatchedEpisodes > e.Episodes {
		e.WatchedEpisodes = e.Episodes
	}
}

func (l *AnimeList) Entries() ([]WatchlistEntry, error) {
	entries := []WatchlistEntry{}
	if l.Data == "" {
		return entries, nil
	}
	err := json.Unmarshal([]byte(l.Data), &entries)
	return entries, err
}
