package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	AnimeID    int `gorm:"index"`
	UserID     uint
	Rating     int
	ReviewText string
}

type Reviews []Review

// ReviewWithAuthor is a Review row joined with its author's username.
type ReviewWithAuthor struct {
	Review
	Username string
}
