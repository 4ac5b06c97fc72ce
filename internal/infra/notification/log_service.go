package notification

import (
	"context"
	"log/slog"

	"github.com/forcollegesake07/food-bridge/internal/domain/service"
)

// logService records pushes instead of sending them. It is used when Firebase is not configured.
type logService struct {
	logger *slog.Logger
}

func newLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "[Push] notification not sent, push disabled",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("dataKeys", len(data)),
	)

	return nil
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "[Push] multicast not sent, push disabled",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("dataKeys", len(data)),
	)

	return len(tokens), 0, nil, nil
}
