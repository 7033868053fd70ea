package lib

import (
	"context"
	"errors"
	"strings"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type polls struct {
	log *zap.Logger
	db  *gorm.DB
}

// CreatePoll inserts a poll and its options atomically. Option validation
// happens first so a bad request never opens the transaction.
func (svc *polls) CreatePoll(ctx context.Context, clubID uint, question string, options []string, createdBy uint) (*models.Poll, error) {
	filtered := make([]string, 0, len(options))
	for _, opt := range options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) < 2 {
		return nil, ErrTooFewOptions
	}
	if len(filtered) > 5 {
		return nil, ErrTooManyOptions
	}

	poll := &models.Poll{ClubID: clubID, Question: question, CreatedBy: createdBy}
	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(poll).Error; err != nil {
			return err
		}
		for _, opt := range filtered {
			option := models.PollOption{PollID: poll.ID, OptionText: opt}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
			poll.Options = append(poll.Options, option)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return poll, nil
}

// PollWithTallies pairs a poll's options with their current vote counts.
type PollWithTallies struct {
	models.Poll
	Tallies map[uint]int64
}

func (svc *polls) ListPolls(ctx context.Context, clubID uint) ([]PollWithTallies, error) {
	var all models.Polls
	tx := svc.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Preload("Options").
		Order("created_at desc").
		Find(&all)
	if err := tx.Error; err != nil {
		return nil, err
	}

	out := make([]PollWithTallies, 0, len(all))
	for _, poll := range all {
		tallies, err := svc.tallyVotes(ctx, poll.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, PollWithTallies{Poll: poll, Tallies: tallies})
	}
	return out, nil
}

func (svc *polls) tallyVotes(ctx context.Context, pollID uint) (map[uint]int64, error) {
	var rows []struct {
		OptionID uint
		Count    int64
	}
	tx := svc.db.WithContext(ctx).
		Model(&models.Vote{}).
		Select("option_id, count(*) as count").
		Where("poll_id = ?", pollID).
		Group("option_id").
		Find(&rows)
	if err := tx.Error; err != nil {
		return nil, err
	}

	tallies := make(map[uint]int64, len(rows))
	for _, row := range rows {
		tallies[row.OptionID] = row.Count
	}
	return tallies, nil
}

// Vote records one vote per user per poll.
func (svc *polls) Vote(ctx context.Context, pollID, userID, optionID uint) (*models.Vote, error) {
	var existing models.Vote
	tx := svc.db.WithContext(ctx).
		Where("poll_id = ? AND user_id = ?", pollID, userID).
		First(&existing)
	if tx.Error == nil {
		return nil, ErrAlreadyVoted
	} else if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, tx.Error
	}

	vote := &models.Vote{PollID: pollID, UserID: userID, OptionID: optionID}
	tx = svc.db.WithContext(ctx).Create(vote)
	if err := tx.Error; err != nil {
		return nil, err
	}
	return vote, nil
}

func (svc *polls) UserVotes(ctx context.Context, userID uint) (models.Votes, error) {
	votes := models.Votes{}
	tx := svc.db.WithContext(ctx).Where("user_id = ?", userID).Find(&votes)
	return votes, tx.Error
}
