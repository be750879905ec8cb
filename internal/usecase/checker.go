package usecase

import (
	"context"
	"log/slog"
	"time"

	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/pkg/errs"
	"interview-scheduler/internal/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

var (
	ErrNoParticipants  = errs.New("at least one participant is required")
	ErrInvalidInterval = errs.New("proposed interval is invalid")
)

// WarnIncompleteCheck is appended whenever a single source query fails
// for a participant. The check itself carries on with whatever the
// other sources returned; a human scheduler makes the final call, so
// not falsely blocking a booking beats falsely allowing one.
const WarnIncompleteCheck = "unable to perform complete conflict check for this participant"

const (
	defaultSourceTimeout  = 5 * time.Second
	defaultMaxSuggestions = 3
)

// ConflictChecker is the conflict aggregation entry point consumed by
// the rest of the HR system.
type ConflictChecker interface {
	CheckConflicts(ctx context.Context, participants []string, proposed interval.Interval, excludeID string) (conflict.Report, error)
	FindAvailableSlots(ctx context.Context, participants []string, preferredStart time.Time, maxSuggestions int) ([]interval.Interval, error)
}

// CheckerConfig bounds the aggregator's source queries and suggestion
// search.
type CheckerConfig struct {
	SourceTimeout  time.Duration
	MaxSuggestions int
}

func (c CheckerConfig) withDefaults() CheckerConfig {
	if c.SourceTimeout <= 0 {
		c.SourceTimeout = defaultSourceTimeout
	}
	if c.MaxSuggestions <= 0 {
		c.MaxSuggestions = defaultMaxSuggestions
	}
	return c
}

type checkerImpl struct {
	// Query order is the dedup tie-break order: leave, internal
	// bookings, external calendar.
	sources []ConflictSource
	cfg     CheckerConfig
	metrics *metrics.Manager
}

func NewConflictChecker(
	leave *LeaveSource,
	bookings *BookingSource,
	external *ExternalSource,
	cfg CheckerConfig,
	m *metrics.Manager,
) ConflictChecker {
	return &checkerImpl{
		sources: []ConflictSource{leave, bookings, external},
		cfg:     cfg.withDefaults(),
		metrics: m,
	}
}

// sourceResult is one source query's outcome. A failed query degrades
// to a warning instead of an error so that partial failure can never
// abort the whole check.
type sourceResult struct {
	conflicts []conflict.Conflict
	warning   string
}

func (c *checkerImpl) CheckConflicts(ctx context.Context, participants []string, proposed interval.Interval, excludeID string) (conflict.Report, error) {
	if err := validateCheckInput(participants, proposed); err != nil {
		return conflict.Report{}, err
	}

	builder := c.gather(ctx, participants, proposed, excludeID)
	builder.AddWarnings(conflict.AdvisoryWarnings(proposed))

	report := builder.Build()
	if report.HasConflicts {
		report.SuggestedSlots = c.findSlots(ctx, participants, proposed.Start(), c.cfg.MaxSuggestions, excludeID)
	}
	return report, nil
}

// gather fans out one query per participant per source, joins the
// results, and merges them in deterministic source order. Concurrency
// affects latency only: dedup keys on (source, interval) content, so
// the final conflict set is independent of arrival order.
func (c *checkerImpl) gather(ctx context.Context, participants []string, window interval.Interval, excludeID string) *conflict.ReportBuilder {
	c.metrics.ConflictCheck()

	results := make([][]sourceResult, len(participants))
	for i := range results {
		results[i] = make([]sourceResult, len(c.sources))
	}

	var g errgroup.Group
	for pi, participant := range participants {
		for si, source := range c.sources {
			g.Go(func() error {
				results[pi][si] = c.query(ctx, source, participant, window, excludeID)
				return nil
			})
		}
	}
	// Tasks never return errors; failures are folded into results.
	_ = g.Wait()

	builder := conflict.NewReportBuilder()
	for pi := range participants {
		for si := range c.sources {
			res := results[pi][si]
			builder.AddConflicts(res.conflicts)
			builder.AddWarning(res.warning)
			for _, found := range res.conflicts {
				c.metrics.ConflictFound(found.Source.String(), found.Severity.String())
			}
		}
	}
	return builder
}

func (c *checkerImpl) query(ctx context.Context, source ConflictSource, participant string, window interval.Interval, excludeID string) sourceResult {
	queryCtx, cancel := context.WithTimeout(ctx, c.cfg.SourceTimeout)
	defer cancel()

	found, err := source.FindConflicts(queryCtx, participant, window, excludeID)
	if err != nil {
		slog.Warn("conflict source query degraded to a warning",
			"source", source.Type().String(),
			"participant", participant,
			"error", err.Error())
		c.metrics.SourceFailure(source.Type().String())
		return sourceResult{warning: WarnIncompleteCheck}
	}
	return sourceResult{conflicts: found}
}

func validateCheckInput(participants []string, proposed interval.Interval) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	for _, p := range participants {
		if p == "" {
			return ErrNoParticipants
		}
	}
	if proposed.IsZero() || !proposed.Start().Before(proposed.End()) {
		return ErrInvalidInterval
	}
	return nil
}
