package store

import (
	"context"

	"interview-scheduler/internal/infra"
	"interview-scheduler/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LeaveStore struct {
	pool *pgxpool.Pool
}

func NewLeaveStore(pool *pgxpool.Pool) *LeaveStore {
	return &LeaveStore{pool: pool}
}

// ApprovedLeave returns approved time-off windows for the participant.
// Pending and rejected requests are filtered out at the query level.
func (s *LeaveStore) ApprovedLeave(ctx context.Context, participant string) ([]usecase.LeaveRecord, error) {
	const q = `
		SELECT starts_at, ends_at
		FROM leave_requests
		WHERE employee_email = $1 AND status = 'approved'
		ORDER BY starts_at`

	rows, err := s.pool.Query(ctx, q, participant)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query approved leave", err)
	}
	defer rows.Close()

	var records []usecase.LeaveRecord
	for rows.Next() {
		var rec usecase.LeaveRecord
		if err := rows.Scan(&rec.Start, &rec.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan leave row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read leave rows", err)
	}
	return records, nil
}
