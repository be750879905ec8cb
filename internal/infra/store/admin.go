package store

import (
	"context"

	"interview-scheduler/internal/infra"
	"interview-scheduler/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminDirectory struct {
	pool *pgxpool.Pool
}

func NewAdminDirectory(pool *pgxpool.Pool) *AdminDirectory {
	return &AdminDirectory{pool: pool}
}

func (s *AdminDirectory) Admins(ctx context.Context) ([]usecase.Contact, error) {
	const q = `
		SELECT email, display_name
		FROM users
		WHERE role = 'admin'
		ORDER BY email`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query admins", err)
	}
	defer rows.Close()

	var admins []usecase.Contact
	for rows.Next() {
		var c usecase.Contact
		if err := rows.Scan(&c.Email, &c.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan admin row", err)
		}
		admins = append(admins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read admin rows", err)
	}
	return admins, nil
}
