// Package notifier delivers verification codes out of band. The SMS
// integration is a collaborator boundary; the log implementation stands in
// for a real gateway.
package notifier

import (
	"context"
	"log/slog"
)

type Notifier interface {
	Send(ctx context.Context, mobileNumber, code string) error
}

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, mobileNumber, code string) error {
	n.logger.Info("sending verification code", "mobile_number", mobileNumber, "code", code)
	return nil
}
