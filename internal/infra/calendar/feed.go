package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/pkg/config"
	"interview-scheduler/internal/pkg/errs"
	"interview-scheduler/internal/usecase"
)

// ErrNotConfigured is returned when no feed base URL is set. The
// conflict checker degrades this to a warning on the report.
var ErrNotConfigured = errs.New("external calendar feed is not configured")

// FeedClient reads participant calendars from the external calendar
// service. The HTTP client is injected so tests and callers control
// transport and timeouts explicitly.
type FeedClient struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

func NewFeedClient(cfg config.CalendarConfig, client *http.Client) *FeedClient {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &FeedClient{
		baseURL:  cfg.FeedBaseURL,
		apiToken: cfg.APIToken,
		client:   client,
	}
}

type feedEvent struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Start             time.Time         `json:"start"`
	End               time.Time         `json:"end"`
	Transparency      string            `json:"transparency"`
	AttendeeResponses map[string]string `json:"attendee_responses"`
}

type feedResponse struct {
	Events []feedEvent `json:"events"`
}

func (c *FeedClient) ListEvents(ctx context.Context, participant string, window interval.Interval) ([]usecase.CalendarEvent, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/v1/calendars/%s/events?from=%s&to=%s",
		c.baseURL,
		url.PathEscape(participant),
		url.QueryEscape(window.Start().Format(time.RFC3339)),
		url.QueryEscape(window.End().Format(time.RFC3339)),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build calendar feed request")
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "calendar feed request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("calendar feed returned status %d", resp.StatusCode))
	}

	var body feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode calendar feed response")
	}

	events := make([]usecase.CalendarEvent, 0, len(body.Events))
	for _, ev := range body.Events {
		events = append(events, usecase.CalendarEvent{
			ID:                ev.ID,
			Title:             ev.Title,
			Start:             ev.Start,
			End:               ev.End,
			Transparency:      ev.Transparency,
			AttendeeResponses: ev.AttendeeResponses,
		})
	}
	return events, nil
}
