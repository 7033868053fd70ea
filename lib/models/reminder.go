package models

import "gorm.io/gorm"

// Reminder subscribes a user to episode alerts for one title.
// LastCheckedEpisode is the watermark: the sweep notifies the subscriber and
// raises it whenever the catalog reports a strictly higher episode count.
type Reminder struct {
	gorm.Model
	UserID  uint `gorm:"uniqueIndex:idx_user_anime"`
	AnimeID int  `gorm:"uniqueIndex:idx_user_anime"`

	LastCheckedEpisode int

	User User
}

type Reminders []Reminder

// EpisodeAlert is the payload handed to a sender when new episodes are seen.
type EpisodeAlert struct {
	AnimeID          int
	Title            string
	PreviousEpisodes int
	Episodes         int
}
