package models

import "gorm.io/gorm"

type Club struct {
	gorm.Model
	Name        string
	Description string
	CreatedBy   uint
}

type Clubs []Club

// Discussion messages are append-only; there is no edit or delete path.
type Discussion struct {
	gorm.Model
	ClubID  uint `gorm:"index"`
	UserID  uint
	Content string
}

type DiscussionWithAuthor struct {
	Discussion
	Username string
}
