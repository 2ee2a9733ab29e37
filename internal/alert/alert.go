// Package alert notifies operators when a scheduled reminder pass fails.
package alert

import (
	"context"
	"sort"

	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=alert.go -destination=../mocks/alert/mock.go -package=mocks

// Notifier delivers a message to one recipient over one channel.
type Notifier interface {
	Send(ctx context.Context, to, subject, msg string) error
}

// Alerter fans an alert out to every channel that has a recipient.
type Alerter struct {
	notifiers  map[string]Notifier
	recipients map[string]string
}

// New creates an alerter. Channels without a recipient are ignored.
func New(notifiers map[string]Notifier, recipients map[string]string) *Alerter {
	return &Alerter{notifiers: notifiers, recipients: recipients}
}

// Alert sends the alert on every configured channel. Delivery errors
// are logged; an alert never fails the caller.
func (a *Alerter) Alert(ctx context.Context, subject, message string) {
	channels := make([]string, 0, len(a.notifiers))
	for ch := range a.notifiers {
		channels = append(channels, ch)
	}
	sort.Strings(channels)

	for _, ch := range channels {
		to := a.recipients[ch]
		if to == "" {
			continue
		}

		if err := a.notifiers[ch].Send(ctx, to, subject, message); err != nil {
			zlog.Logger.Error().Err(err).Str("channel", ch).Msg("failed to send operator alert")
			continue
		}

		zlog.Logger.Info().Str("channel", ch).Str("subject", subject).Msg("operator alert sent")
	}
}
