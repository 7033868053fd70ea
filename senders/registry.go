package senders

import (
	"context"
	"net/http"

	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Sender delivers an episode alert to one subscriber, returning a
// platform-specific message id when there is one.
type Sender interface {
	SendEpisodeAlert(ctx context.Context, user *models.User, alert *models.EpisodeAlert) (string, error)
}

type Registry map[string]Sender

func NewSenderRegistry(lc fx.Lifecycle, log *zap.Logger, cfg *config.Config, transport http.RoundTripper) Registry {
	base := base{log, cfg, transport}
	return Registry{
		"log":   &logSender{base},
		"email": &mailgunSender{base},
	}
}

type base struct {
	log       *zap.Logger
	cfg       *config.Config
	transport http.RoundTripper
}
