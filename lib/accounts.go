package lib

import (
	"context"
	"errors"
	"time"

	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accounts struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func (svc *accounts) Register(ctx context.Context, username, password string) (*models.User, error) {
	var existing models.User
	tx := svc.db.WithContext(ctx).Where("username = ?", username).First(&existing)
	if tx.Error == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, tx.Error
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Password: string(hashed)}
	tx = svc.db.WithContext(ctx).Clauses(clause.Returning{}).Create(user)
	if err := tx.Error; err != nil {
		return nil, err
	}

	svc.log.Sugar().Infof("Registered user %v (%s)", user.ID, username)
	return user, nil
}

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password return the same error.
func (svc *accounts) Login(ctx context.Context, username, password string) (*models.User, *models.Session, error) {
	var user models.User
	tx := svc.db.WithContext(ctx).Where("username = ?", username).First(&user)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidCredentials
	} else if tx.Error != nil {
		return nil, nil, tx.Error
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	svc.db.WithContext(ctx).Model(&user).Update("last_login_at", now)

	session := &models.Session{
		Token:  uuid.NewString(),
		UserID: user.ID,
		Expiry: now.Add(svc.cfg.SessionTTL),
	}
	tx = svc.db.WithContext(ctx).Create(session)
	if err := tx.Error; err != nil {
		return nil, nil, err
	}

	return &user, session, nil
}

// SessionUser resolves a bearer token to its user.
func (svc *accounts) SessionUser(ctx context.Context, token string) (*models.User, error) {
	var session models.Session
	tx := svc.db.WithContext(ctx).Where("token = ?", token).InnerJoins("User").First(&session)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidSession
	} else if tx.Error != nil {
		return nil, tx.Error
	}

	if session.Expired(time.Now().UTC()) {
		return nil, ErrInvalidSession
	}
	return &session.User, nil
}

func (svc *accounts) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	tx := svc.db.WithContext(ctx).Order("id asc").Find(&users)
	return users, tx.Error
}

func (svc *accounts) DeleteUser(ctx context.Context, id uint) error {
	return svc.db.WithContext(ctx).Delete(&models.User{}, id).Error
}
