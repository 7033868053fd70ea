package senders

import (
	"context"
	"time"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"github.com/mailgun/mailgun-go/v4"
)

// mailgunSender emails the alert. Usernames are email addresses for accounts
// that opt into email delivery.
type mailgunSender struct {
	base
}

func (s *mailgunSender) SendEpisodeAlert(ctx context.Context, user *models.User, alert *models.EpisodeAlert) (string, error) {
	mg := mailgun.NewMailgun(s.cfg.Mailgun.Domain, s.cfg.Mailgun.APIKey)
	mg.Client().Transport = s.transport

	format := episodeAlertFormat{alert}

	// Create message with empty body first, then SetHtml so the MIME type is
	// assigned properly.
	message := mg.NewMessage(s.cfg.Mailgun.SenderFrom, format.Subject(), "", user.Username)
	message.SetHtml(format.Body())

	timeout := time.Duration(s.cfg.Mailgun.TimeoutSecs) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, id, err := mg.Send(ctx, message)
	return id, err
}
