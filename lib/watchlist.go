package lib

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type watchlists struct {
	log *zap.Logger
	db  *gorm.DB
}

// SaveList replaces the user's entire watch-list document. Each entry's
// watched count is clamped into [0, episodes] before the blob is written.
func (svc *watchlists) SaveList(ctx context.Context, userID uint, entries []models.WatchlistEntry) error {
	for i := range entries {
		if entries[i].Category != "" && !models.ValidCategory(entries[i].Category) {
			return ErrInvalidCategory
		}
		entries[i].Clamp()
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	list := &models.AnimeList{UserID: userID, Data: string(data)}
	tx := svc.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(list)
	return tx.Error
}

// List returns the saved watch-list, or an empty list when the user has never
// saved one.
func (svc *watchlists) List(ctx context.Context, userID uint) ([]models.WatchlistEntry, error) {
	var list models.AnimeList
	tx := svc.db.WithContext(ctx).Where("user_id = ?", userID).First(&list)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return []models.WatchlistEntry{}, nil
	} else if tx.Error != nil {
		return nil, tx.Error
	}
	return list.Entries()
}

type Analytics struct {
	TotalEpisodes       int `json:"totalEpisodes"`
	TotalWatchTimeHours int `json:"totalWatchTimeHours"`
}

// Analytics sums watched episodes over the saved list, assuming 24 minutes
// per episode.
func (svc *watchlists) Analytics(ctx context.Context, userID uint) (*Analytics, error) {
	entries, err := svc.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, e := range entries {
		total += e.WatchedEpisodes
	}

	hours := int(math.Round(float64(total*24) / 60))
	return &Analytics{TotalEpisodes: total, TotalWatchTimeHours: hours}, nil
}
