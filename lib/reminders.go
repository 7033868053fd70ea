package lib

import (
	"context"
	"errors"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type reminders struct {
	log *zap.Logger
	db  *gorm.DB
}

// Subscribe creates a reminder for (user, anime). The caller supplies the
// episode count it currently knows about, which seeds the watermark so the
// sweep only alerts on episodes released after subscribing.
func (svc *reminders) Subscribe(ctx context.Context, userID uint, animeID, currentEpisodes int) (*models.Reminder, error) {
	var existing models.Reminder
	tx := svc.db.WithContext(ctx).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		First(&existing)
	if tx.Error == nil {
		return nil, ErrAlreadySubscribed
	} else if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, tx.Error
	}

	reminder := &models.Reminder{
		UserID:             userID,
		AnimeID:            animeID,
		LastCheckedEpisode: currentEpisodes,
	}
	tx = svc.db.WithContext(ctx).Create(reminder)
	if err := tx.Error; err != nil {
		return nil, err
	}

	svc.log.Sugar().Infof("User %v subscribed to reminders for anime %v", userID, animeID)
	return reminder, nil
}

func (svc *reminders) SubscribedAnimeIDs(ctx context.Context, userID uint) ([]int, error) {
	ids := []int{}
	tx := svc.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("user_id = ?", userID).
		Pluck("anime_id", &ids)
	return ids, tx.Error
}
