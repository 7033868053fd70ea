package app

import (
	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDatabase opens Postgres when DATABASE_DSN is set, otherwise a local
// sqlite file.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *gorm.DB {
	var dialector gorm.Dialector
	if cfg.DatabaseDSN != "" {
		dialector = postgres.Open(cfg.DatabaseDSN)
	} else {
		dialector = sqlite.Open(cfg.DatabasePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Sugar().Panicw("failed to connect database", "err", err)
	}
	log.Info("Database started")

	log.Info("Starting migrations")
	db.AutoMigrate(
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
	)
	return db
}
