package components

import (
	"log/slog"

	"interview-scheduler/internal/infra/calendar"
	"interview-scheduler/internal/infra/mail"
	"interview-scheduler/internal/infra/store"
	"interview-scheduler/internal/pkg/config"
	"interview-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			store.NewLeaveStore,
			fx.As(new(usecase.LeaveStore)),
		),
		fx.Annotate(
			store.NewBookingStore,
			fx.As(new(usecase.BookingStore)),
		),
		fx.Annotate(
			store.NewAdminDirectory,
			fx.As(new(usecase.AdminDirectory)),
		),
		fx.Annotate(
			func(c *calendar.FeedClient) *calendar.FeedClient { return c },
			fx.As(new(usecase.ExternalCalendar)),
		),
		fx.Annotate(
			func(c *calendar.SyncClient) *calendar.SyncClient { return c },
			fx.As(new(usecase.CalendarSync)),
		),
		NewNotificationTransport,
	),
)

// NewNotificationTransport falls back to log-only delivery when no
// SMTP host is configured.
func NewNotificationTransport(cfg config.Config, logger *slog.Logger) usecase.NotificationTransport {
	if cfg.SMTP.Host == "" {
		return mail.NewLogTransport(logger)
	}
	return mail.NewSMTPTransport(cfg.SMTP)
}
