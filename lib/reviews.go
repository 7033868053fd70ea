package lib

import (
	"context"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviews struct {
	log *zap.Logger
	db  *gorm.DB
}

// CreateReview stores a review. Reviews are immutable once written; only an
// admin can remove one.
func (svc *reviews) CreateReview(ctx context.Context, animeID int, userID uint, rating int, reviewText string) (*models.Review, error) {
	if rating < 1 || rating > 10 {
		return nil, ErrInvalidRating
	}

	review := &models.Review{
		AnimeID:    animeID,
		UserID:     userID,
		Rating:     rating,
		ReviewText: reviewText,
	}
	tx := svc.db.WithContext(ctx).Clauses(clause.Returning{}).Create(review)
	if err := tx.Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (svc *reviews) ListReviews(ctx context.Context, animeID int) ([]models.ReviewWithAuthor, error) {
	rows := []models.ReviewWithAuthor{}
	tx := svc.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.*, users.username").
		Joins("INNER JOIN users ON users.id = reviews.user_id").
		Where("reviews.anime_id = ?", animeID).
		Order("reviews.created_at desc").
		Find(&rows)
	return rows, tx.Error
}

func (svc *reviews) ListAllReviews(ctx context.Context) ([]models.ReviewWithAuthor, error) {
	rows := []models.ReviewWithAuthor{}
	tx := svc.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.*, users.username").
		Joins("INNER JOIN users ON users.id = reviews.user_id").
		Order("reviews.created_at desc").
		Find(&rows)
	return rows, tx.Error
}

func (svc *reviews) DeleteReview(ctx context.Context, id uint) error {
	return svc.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}
