package lib

import (
	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/catalog"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/llm"
	"github.com/Smasher-Lab/My-Anime-Tracker/senders"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the domain layer behind the HTTP controllers. Each embedded
// struct owns one slice of the API surface.
type Service struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	senders senders.Registry

	*accounts
	*watchlists
	*reviews
	*reminders
	*clubs
	*polls
	*chat
	*catalogProxy
}

func NewService(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	catalogClient *catalog.Client,
	llmClient *llm.Client,
	senders senders.Registry,
) *Service {
	return &Service{
		cfg, log, db, senders,
		&accounts{cfg, log, db},
		&watchlists{log, db},
		&reviews{log, db},
		&reminders{log, db},
		&clubs{log, db},
		&polls{log, db},
		&chat{log, llmClient},
		&catalogProxy{log, catalogClient},
	}
}
