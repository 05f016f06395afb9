package screening

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. The full report is stored as a
// jsonb payload alongside a few indexed columns for listing.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new screening report.
func (r *PGRepo) Create(ctx context.Context, result Result) error {
	const query = `
INSERT INTO screenings (id, filename, job_title, final_score, recommendation, success, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		result.ID,
		result.Filename,
		result.JobTitle,
		result.FinalScore,
		result.Recommendation,
		result.Success,
		payload,
		result.CreatedAt,
	)
	return err
}

// GetByID returns a screening report by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Result, error) {
	const query = `
SELECT payload
FROM screenings
WHERE id = $1
LIMIT 1`

	var payload []byte
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, ErrNotFound
		}
		return Result{}, err
	}
	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Result{}, err
	}
	return result, nil
}

// List returns screening reports newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Result, error) {
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
SELECT payload
FROM screenings
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var result Result
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
