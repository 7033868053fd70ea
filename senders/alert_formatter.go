package senders

import (
	"fmt"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
)

type episodeAlertFormat struct {
	*models.EpisodeAlert
}

func (ef *episodeAlertFormat) Subject() string {
	return fmt.Sprintf("New episodes of %s are out", ef.title())
}

func (ef *episodeAlertFormat) Body() string {
	return fmt.Sprintf(
		`
			<h3>%s now has %d episodes</h3>
			<br>
			You last saw %d. Time to catch up!
		`,
		ef.title(), ef.Episodes, ef.PreviousEpisodes,
	)
}

func (ef *episodeAlertFormat) title() string {
	if ef.Title != "" {
		return ef.Title
	}
	return fmt.Sprintf("anime #%d", ef.AnimeID)
}
