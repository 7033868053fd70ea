package app

import (
	"time"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
)

type UserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

func (view UserView) From(entity *models.User) UserView {
	return UserView{
		ID:       entity.ID,
		Username: entity.Username,
		IsAdmin:  entity.IsAdmin,
	}
}

type ReviewView struct {
	ID         uint   `json:"id"`
	AnimeID    int    `json:"anime_id"`
	UserID     uint   `json:"user_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
	Username   string `json:"username,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func (view ReviewView) From(entity *models.ReviewWithAuthor) ReviewView {
	return ReviewView{
		ID:         entity.ID,
		AnimeID:    entity.AnimeID,
		UserID:     entity.UserID,
		Rating:     entity.Rating,
		ReviewText: entity.ReviewText,
		Username:   entity.Username,
		CreatedAt:  isoformat(entity.CreatedAt),
	}
}

type ClubView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedBy   uint   `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

func (view ClubView) From(entity *models.Club) ClubView {
	return ClubView{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		CreatedBy:   entity.CreatedBy,
		CreatedAt:   isoformat(entity.CreatedAt),
	}
}

type DiscussionView struct {
	ID        uint   `json:"id"`
	ClubID    uint   `json:"club_id"`
	UserID    uint   `json:"user_id"`
	Content   string `json:"content"`
	Username  string `json:"username,omitempty"`
	CreatedAt string `json:"created_at"`
}

func (view DiscussionView) From(entity *models.DiscussionWithAuthor) DiscussionView {
	return DiscussionView{
		ID:        entity.ID,
		ClubID:    entity.ClubID,
		UserID:    entity.UserID,
		Content:   entity.Content,
		Username:  entity.Username,
		CreatedAt: isoformat(entity.CreatedAt),
	}
}

type PollOptionView struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
	Votes      int64  `json:"votes"`
}

type PollView struct {
	ID        uint             `json:"id"`
	ClubID    uint             `json:"club_id"`
	Question  string           `json:"question"`
	CreatedBy uint             `json:"created_by"`
	CreatedAt string           `json:"created_at"`
	Options   []PollOptionView `json:"options"`
}

func (view PollView) FromTallied(entity *lib.PollWithTallies) PollView {
	options := make([]PollOptionView, len(entity.Options))
	for i, opt := range entity.Options {
		options[i] = PollOptionView{
			ID:         opt.ID,
			OptionText: opt.OptionText,
			Votes:      entity.Tallies[opt.ID],
		}
	}
	return PollView{
		ID:        entity.ID,
		ClubID:    entity.ClubID,
		Question:  entity.Question,
		CreatedBy: entity.CreatedBy,
		CreatedAt: isoformat(entity.CreatedAt),
		Options:   options,
	}
}

type VoteView struct {
	PollID   uint `json:"poll_id"`
	OptionID uint `json:"option_id"`
}

func (view VoteView) From(entity *models.Vote) VoteView {
	return VoteView{PollID: entity.PollID, OptionID: entity.OptionID}
}

type Fromable[Entity any, Repr any] interface {
	From(*Entity) Repr
}

func FromMany[T any, U Fromable[T, U]](elems []T) []U {
	out := make([]U, len(elems))
	for i := range elems {
		var u U
		out[i] = u.From(&elems[i])
	}
	return out
}

func isoformat(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
