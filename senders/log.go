package senders

import (
	"context"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
)

// logSender is the default delivery: the alert goes to the process log only.
type logSender struct {
	base
}

func (s *logSender) SendEpisodeAlert(ctx context.Context, user *models.User, alert *models.EpisodeAlert) (string, error) {
	s.log.Sugar().Infow(
		"Notification: new episode(s) released",
		"user_id", user.ID,
		"anime_id", alert.AnimeID,
		"title", alert.Title,
		"episodes", alert.Episodes,
		"previous", alert.PreviousEpisodes,
	)
	return "", nil
}
