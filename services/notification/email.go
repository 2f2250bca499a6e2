package notification

import (
	"context"

	"dahabiyat/utils"

	"go.uber.org/zap"
)

// LogEmailSender records outbound emails in the log instead of delivering
// them. It stands in wherever a real transport is not configured; the
// production sender is injected at startup.
type LogEmailSender struct{}

func (LogEmailSender) Send(_ context.Context, to, subject, body string) error {
	utils.GetLogger().Info("outbound email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
