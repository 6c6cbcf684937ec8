package notify

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Notifier posts a human-readable announcement somewhere. Delivery is
// fire-and-forget: failures are logged by the caller and never affect
// the render outcome.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// SlackWebhook delivers announcements to a Slack incoming webhook.
type SlackWebhook struct {
	URL string
}

// NewSlackWebhook wraps a webhook URL.
func NewSlackWebhook(url string) *SlackWebhook {
	return &SlackWebhook{URL: url}
}

// Notify posts one message.
func (s *SlackWebhook) Notify(ctx context.Context, text string) error {
	return slack.PostWebhookContext(ctx, s.URL, &slack.WebhookMessage{Text: text})
}

// Dispatch runs a notifier in the background with its own timeout,
// logging the outcome. A nil notifier is a no-op, so an unconfigured
// webhook costs nothing.
func Dispatch(n Notifier, text string) {
	if n == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.NotifyTimeout)
		defer cancel()

		if err := n.Notify(ctx, text); err != nil {
			slog.Warn(config.ErrNotify,
				config.LogKeyComponent, config.CompNotify,
				config.LogKeyError, err,
			)
			return
		}
		slog.Debug(config.MsgNotifySent, config.LogKeyComponent, config.CompNotify)
	}()
}
