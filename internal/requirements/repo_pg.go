package requirements

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new requirement into client_requirements.
func (r *PGRepo) Create(ctx context.Context, rec Requirement) error {
	const query = `
INSERT INTO client_requirements (
    id,
    description,
    file_url,
    file_name,
    user_id,
    user_email,
    status,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	status := rec.Status
	if status == "" {
		status = StatusPending
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.Description,
		rec.FileURL,
		rec.FileName,
		rec.UserID,
		rec.UserEmail,
		status,
		rec.CreatedAt,
	)
	return err
}

// ListByUser lists a user's requirements newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Requirement, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, description, file_url, file_name, user_id, user_email, status, created_at
FROM client_requirements
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Requirement
	for rows.Next() {
		var rec Requirement
		if err := rows.Scan(
			&rec.ID,
			&rec.Description,
			&rec.FileURL,
			&rec.FileName,
			&rec.UserID,
			&rec.UserEmail,
			&rec.Status,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
