package models

import "gorm.io/gorm"

type Poll struct {
	gorm.Model
	ClubID    uint `gorm:"index"`
	Question  string
	CreatedBy uint

	Options []PollOption
}

type Polls []Poll

type PollOption struct {
	gorm.Model
	PollID     uint `gorm:"index"`
	OptionText string
}

type Vote struct {
	gorm.Model
	PollID   uint `gorm:"uniqueIndex:idx_poll_user"`
	UserID   uint `gorm:"uniqueIndex:idx_poll_user"`
	OptionID uint
}

type Votes []Vote
