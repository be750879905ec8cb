package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"interview-scheduler/internal/domain/booking"
	"interview-scheduler/internal/pkg/config"
	"interview-scheduler/internal/pkg/errs"
)

// SyncClient mirrors booked interviews into the external calendar
// system. Callers treat every operation as best-effort.
type SyncClient struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

func NewSyncClient(cfg config.CalendarConfig, client *http.Client) *SyncClient {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &SyncClient{
		baseURL:  cfg.SyncBaseURL,
		apiToken: cfg.APIToken,
		client:   client,
	}
}

type syncEventPayload struct {
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Location  string    `json:"location,omitempty"`
	Link      string    `json:"link,omitempty"`
	Attendees []string  `json:"attendees"`
}

type syncEventResponse struct {
	EventID string `json:"event_id"`
}

func (c *SyncClient) CreateEvent(ctx context.Context, iv *booking.Interview) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	var out syncEventResponse
	endpoint := c.baseURL + "/v1/events"
	if err := c.do(ctx, http.MethodPost, endpoint, payloadFor(iv), &out); err != nil {
		return "", err
	}
	if out.EventID == "" {
		return "", errs.New("calendar sync returned an empty event id")
	}
	return out.EventID, nil
}

func (c *SyncClient) UpdateEvent(ctx context.Context, eventID string, iv *booking.Interview) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}
	endpoint := c.baseURL + "/v1/events/" + url.PathEscape(eventID)
	return c.do(ctx, http.MethodPut, endpoint, payloadFor(iv), nil)
}

func (c *SyncClient) DeleteEvent(ctx context.Context, eventID string) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}
	endpoint := c.baseURL + "/v1/events/" + url.PathEscape(eventID)
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func payloadFor(iv *booking.Interview) *syncEventPayload {
	return &syncEventPayload{
		Title:     iv.Subject(),
		Start:     iv.Slot().Start(),
		End:       iv.Slot().End(),
		Location:  iv.Location(),
		Link:      iv.MeetingLink(),
		Attendees: iv.Participants(),
	}
}

func (c *SyncClient) do(ctx context.Context, method, endpoint string, payload *syncEventPayload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errs.Wrap(err, "failed to encode calendar sync payload")
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errs.Wrap(err, "failed to build calendar sync request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "calendar sync request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("calendar sync returned status %d", resp.StatusCode))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "failed to decode calendar sync response")
		}
	}
	return nil
}
