package email

import (
	"context"
	"log/slog"

	"github.com/forcollegesake07/food-bridge/internal/domain/service"
)

// logSender writes emails to the log. Used in development.
type logSender struct {
	logger *slog.Logger
}

func newLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

func (s *logSender) SendTemplate(ctx context.Context, msg *service.EmailMessage) error {
	recipients := make([]string, 0, len(msg.To))
	for _, r := range msg.To {
		recipients = append(recipients, r.Email)
	}

	s.logger.InfoContext(ctx, "[Email] template email",
		slog.Int64("templateId", msg.TemplateID),
		slog.Any("to", recipients),
		slog.Any("params", msg.Params),
	)

	return nil
}
