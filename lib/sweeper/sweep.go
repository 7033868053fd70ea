package sweeper

import (
	"context"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/catalog"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
)

// sweepOnce is one full iteration: every subscribed title is looked up
// sequentially. A title the catalog does not know, or one without a published
// episode count, is skipped; any other failure aborts the iteration and the
// next tick starts over from scratch.
func (s *Sweeper) sweepOnce(ctx context.Context) (*sweepMetrics, error) {
	m := &sweepMetrics{}

	var animeIDs []int
	tx := s.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Distinct("anime_id").
		Pluck("anime_id", &animeIDs)
	if err := tx.Error; err != nil {
		return m, err
	}

	for _, animeID := range animeIDs {
		anime, err := s.catalog.Anime(ctx, animeID)
		if catalog.IsNotFound(err) {
			m.skipped += 1
			continue
		} else if err != nil {
			return m, err
		}
		m.titles += 1

		if anime.Episodes == nil {
			m.skipped += 1
			continue
		}

		if err := s.notifyBehindSubscribers(ctx, anime, *anime.Episodes, m); err != nil {
			return m, err
		}
	}
	return m, nil
}

func (s *Sweeper) notifyBehindSubscribers(ctx context.Context, anime *catalog.Anime, episodes int, m *sweepMetrics) error {
	var subscribers models.Reminders
	tx := s.db.WithContext(ctx).
		Where("anime_id = ?", anime.AnimeID).
		InnerJoins("User").
		Find(&subscribers)
	if err := tx.Error; err != nil {
		return err
	}

	for _, reminder := range subscribers {
		if reminder.LastCheckedEpisode >= episodes {
			m.unchanged += 1
			continue
		}

		alert := &models.EpisodeAlert{
			AnimeID:          anime.AnimeID,
			Title:            anime.Title,
			PreviousEpisodes: reminder.LastCheckedEpisode,
			Episodes:         episodes,
		}
		s.sendAlert(ctx, &reminder.User, alert)

		tx := s.db.WithContext(ctx).
			Model(&models.Reminder{}).
			Where("id = ?", reminder.ID).
			Update("last_checked_episode", episodes)
		if err := tx.Error; err != nil {
			return err
		}
		m.notified += 1
		sweepNotifications.Inc()
	}
	return nil
}

// sendAlert is best-effort: a delivery failure never blocks the watermark
// update, so a flaky sender cannot make the sweep re-notify forever.
func (s *Sweeper) sendAlert(ctx context.Context, user *models.User, alert *models.EpisodeAlert) {
	sender, ok := s.senders[s.cfg.NotifyPlatform]
	if !ok {
		sender = s.senders["log"]
	}

	if _, err := sender.SendEpisodeAlert(ctx, user, alert); err != nil {
		s.log.Sugar().Warnw("Failed to deliver episode alert",
			"user_id", user.ID, "anime_id", alert.AnimeID, "err", err)
	}
}
