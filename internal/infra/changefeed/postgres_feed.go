package changefeed

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/gorm"

	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
)

const listenRetryDelay = 2 * time.Second

// postgresFeed signals through LISTEN/NOTIFY so every process sharing the database
// sees every write.
type postgresFeed struct {
	*broker

	db      *gorm.DB
	channel string
}

func newPostgresFeed(db *gorm.DB, channel string, logger *slog.Logger, m *metrics.Metrics) *postgresFeed {
	return &postgresFeed{
		broker:  newBroker(logger, m),
		db:      db,
		channel: channel,
	}
}

func (f *postgresFeed) Publish(ctx context.Context, collection string) error {
	if err := f.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", f.channel, collection).Error; err != nil {
		return errors.Wrap(err, "failed to notify change")
	}

	return nil
}

// run keeps a dedicated connection listening until ctx is done, reconnecting on failure.
func (f *postgresFeed) run(ctx context.Context) {
	for {
		err := f.listen(ctx)
		if ctx.Err() != nil {
			return
		}

		f.logger.WarnContext(ctx, "[ChangeFeed] Listener stopped, retrying",
			slog.String("channel", f.channel),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(listenRetryDelay):
		}
	}
}

func (f *postgresFeed) listen(ctx context.Context) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire listener connection")
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		return f.listenOn(ctx, driverConn)
	})
}

func (f *postgresFeed) listenOn(ctx context.Context, driverConn any) error {
	stdConn, ok := driverConn.(*stdlib.Conn)
	if !ok {
		return errors.Errorf("unexpected driver connection %T", driverConn)
	}
	pgConn := stdConn.Conn()

	if _, err := pgConn.Exec(ctx, "LISTEN "+pgx.Identifier{f.channel}.Sanitize()); err != nil {
		return errors.Wrap(err, "failed to listen")
	}
	// The connection returns to the pool afterwards; leave it clean.
	defer func() {
		_, _ = pgConn.Exec(context.WithoutCancel(ctx), "UNLISTEN *")
	}()

	f.logger.InfoContext(ctx, "[ChangeFeed] Listening for changes", slog.String("channel", f.channel))

	for {
		notification, err := pgConn.WaitForNotification(ctx)
		if err != nil {
			return errors.Wrap(err, "failed waiting for notification")
		}
		f.signal(notification.Payload)
	}
}
