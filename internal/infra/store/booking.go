package store

import (
	"context"
	"errors"
	"time"

	"interview-scheduler/internal/domain/booking"
	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/infra"
	"interview-scheduler/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingStore struct {
	pool *pgxpool.Pool
}

func NewBookingStore(pool *pgxpool.Pool) *BookingStore {
	return &BookingStore{pool: pool}
}

// ActiveBookingsFor returns scheduled interviews the participant is a
// party to, either as candidate or as one of the interviewers.
func (s *BookingStore) ActiveBookingsFor(ctx context.Context, participant string) ([]usecase.BookingRecord, error) {
	const q = `
		SELECT id, start_at, duration_min, subject
		FROM interviews
		WHERE status = 'scheduled'
		  AND (candidate_email = $1 OR $1 = ANY(interviewer_emails))
		ORDER BY start_at`

	rows, err := s.pool.Query(ctx, q, participant)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active bookings", err)
	}
	defer rows.Close()

	var records []usecase.BookingRecord
	for rows.Next() {
		var rec usecase.BookingRecord
		if err := rows.Scan(&rec.ID, &rec.Start, &rec.DurationMinutes, &rec.SubjectTitle); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return records, nil
}

func (s *BookingStore) Create(ctx context.Context, iv *booking.Interview) error {
	const q = `
		INSERT INTO interviews (
			id, candidate_email, interviewer_emails, start_at, duration_min,
			subject, location, meeting_link, status, external_event_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := s.pool.Exec(ctx, q,
		iv.ID(),
		iv.Candidate(),
		iv.Interviewers(),
		iv.Slot().Start(),
		int(iv.Slot().Duration().Minutes()),
		iv.Subject(),
		iv.Location(),
		iv.MeetingLink(),
		iv.Status().String(),
		iv.ExternalEventID(),
		iv.CreatedAt(),
		iv.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert interview", err)
	}
	return nil
}

func (s *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Interview, error) {
	const q = `
		SELECT id, candidate_email, interviewer_emails, start_at, duration_min,
			subject, location, meeting_link, status, external_event_id,
			created_at, updated_at
		FROM interviews
		WHERE id = $1`

	row := s.pool.QueryRow(ctx, q, id)
	iv, err := scanInterview(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("interview not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find interview", err)
	}
	return iv, nil
}

func (s *BookingStore) Update(ctx context.Context, iv *booking.Interview) error {
	const q = `
		UPDATE interviews
		SET start_at = $2, duration_min = $3, location = $4, meeting_link = $5,
			status = $6, external_event_id = $7, updated_at = $8
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, q,
		iv.ID(),
		iv.Slot().Start(),
		int(iv.Slot().Duration().Minutes()),
		iv.Location(),
		iv.MeetingLink(),
		iv.Status().String(),
		iv.ExternalEventID(),
		iv.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update interview", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("interview not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanInterview(row pgx.Row) (*booking.Interview, error) {
	var (
		id              uuid.UUID
		candidate       string
		interviewers    []string
		startAt         time.Time
		durationMin     int
		subject         string
		location        string
		meetingLink     string
		status          string
		externalEventID string
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(
		&id, &candidate, &interviewers, &startAt, &durationMin,
		&subject, &location, &meetingLink, &status, &externalEventID,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	slot, err := interval.New(startAt, startAt.Add(time.Duration(durationMin)*time.Minute))
	if err != nil {
		return nil, err
	}
	return booking.ReconstructInterview(
		id, candidate, interviewers, slot,
		subject, location, meetingLink,
		booking.Status(status), externalEventID,
		createdAt, updatedAt,
	), nil
}
