package lib

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.AnimeList{},
		&models.Review{},
		&models.Reminder{},
		&models.Club{},
		&models.Discussion{},
		&models.Poll{},
		&models.PollOption{},
		&models.Vote{},
	))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{SessionTTL: time.Hour, NotifyPlatform: "log"}
	return NewService(nil, cfg, zap.NewNop(), db, nil, nil, nil), db
}
