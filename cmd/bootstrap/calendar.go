package bootstrap

import (
	"net/http"

	"interview-scheduler/internal/infra/calendar"
	"interview-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendarHTTPClient,
		NewFeedClient,
		NewSyncClient,
	),
)

// One shared client for both calendar integrations; timeouts sit on
// the client, cancellation on the request contexts.
func NewCalendarHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Calendar.Timeout}
}

func NewFeedClient(cfg config.Config, client *http.Client) *calendar.FeedClient {
	return calendar.NewFeedClient(cfg.Calendar, client)
}

func NewSyncClient(cfg config.Config, client *http.Client) *calendar.SyncClient {
	return calendar.NewSyncClient(cfg.Calendar, client)
}
