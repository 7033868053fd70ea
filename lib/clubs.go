package lib

import (
	"context"
	"errors"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type clubs struct {
	log *zap.Logger
	db  *gorm.DB
}

func (svc *clubs) CreateClub(ctx context.Context, name, description string, createdBy uint) (*models.Club, error) {
	club := &models.Club{Name: name, Description: description, CreatedBy: createdBy}
	tx := svc.db.WithContext(ctx).Clauses(clause.Returning{}).Create(club)
	if err := tx.Error; err != nil {
		return nil, err
	}
	return club, nil
}

func (svc *clubs) ListClubs(ctx context.Context) (models.Clubs, error) {
	var all models.Clubs
	tx := svc.db.WithContext(ctx).Order("created_at desc").Find(&all)
	return all, tx.Error
}

func (svc *clubs) GetClub(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	tx := svc.db.WithContext(ctx).First(&club, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if tx.Error != nil {
		return nil, tx.Error
	}
	return &club, nil
}

func (svc *clubs) DeleteClub(ctx context.Context, id uint) error {
	return svc.db.WithContext(ctx).Delete(&models.Club{}, id).Error
}

func (svc *clubs) PostDiscussion(ctx context.Context, clubID, userID uint, content string) (*models.Discussion, error) {
	if _, err := svc.GetClub(ctx, clubID); err != nil {
		return nil, err
	}

	msg := &models.Discussion{ClubID: clubID, UserID: userID, Content: content}
	tx := svc.db.WithContext(ctx).Clauses(clause.Returning{}).Create(msg)
	if err := tx.Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (svc *clubs) ListDiscussions(ctx context.Context, clubID uint) ([]models.DiscussionWithAuthor, error) {
	rows := []models.DiscussionWithAuthor{}
	tx := svc.db.WithContext(ctx).
		Model(&models.Discussion{}).
		Select("discussions.*, users.username").
		Joins("INNER JOIN users ON users.id = discussions.user_id").
		Where("discussions.club_id = ?", clubID).
		Order("discussions.created_at asc").
		Find(&rows)
	return rows, tx.Error
}
