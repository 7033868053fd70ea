package lib

import (
	"context"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/llm"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var chatCompletions = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "chat_completions_total",
	Help: "Chat messages successfully answered by the completion API",
})

func init() {
	prometheus.MustRegister(chatCompletions)
}

type chat struct {
	log *zap.Logger
	llm *llm.Client
}

// Chat proxies one user message through the language-model API.
func (svc *chat) Chat(ctx context.Context, message string) (string, error) {
	reply, err := svc.llm.Complete(ctx, message)
	if err != nil {
		svc.log.Sugar().Errorw("chat completion failed", "err", err)
		return "", err
	}
	chatCompletions.Inc()
	return reply, nil
}
