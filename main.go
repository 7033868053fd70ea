package main

import (
	"net/http"
	"os"
	"time"

	"github.com/Smasher-Lab/My-Anime-Tracker/app"
	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/catalog"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/llm"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/sweeper"
	"github.com/Smasher-Lab/My-Anime-Tracker/senders"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger() (*zap.Logger, error) {
	switch os.Getenv("ENVIRONMENT") {
	default:
		return zap.NewDevelopment()

	case "production":
		logCfg := zap.NewProductionConfig()
		logCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			t = t.UTC()
			zapcore.ISO8601TimeEncoder(t, enc)
		}
		return logCfg.Build()
	}
}

func main() {
	fx.New(
		fx.Provide(NewLogger),
		fx.Provide(config.NewConfig),

		fx.Provide(app.NewTransport),
		fx.Provide(app.NewDatabase),
		fx.Provide(senders.NewSenderRegistry),
		fx.Provide(catalog.NewClient),
		fx.Provide(llm.NewClient),

		fx.Provide(lib.NewService),
		fx.Provide(sweeper.NewSweeper),
		fx.Provide(app.NewAPI),

		fx.Invoke(func(*sweeper.Sweeper) {}),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}
