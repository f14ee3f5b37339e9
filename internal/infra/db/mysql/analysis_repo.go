package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	domain "github.com/aryanpyx/finsight/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save insert Result record (results are immutable, no upsert columns)
func (r *AnalysisRepository) Save(ctx context.Context, res *domain.Result) error {
	const q = `
INSERT INTO analysis_results
(id, run_id, bucket, type, title, amount, description, details, severity, created_at)
VALUES (?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE id=id;
`
	_, err := r.db.ExecContext(ctx, q,
		res.ID, res.RunID, res.Bucket, res.Type, res.Title, res.Amount,
		nullString(res.Description), nullString(string(res.Details)), res.Severity, res.CreatedAt,
	)
	return err
}

func (r *AnalysisRepository) List(ctx context.Context) ([]*domain.Result, error) {
	const q = `
SELECT id, run_id, bucket, type, title, amount, description, details, severity, created_at
FROM analysis_results
ORDER BY created_at, id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

func (r *AnalysisRepository) ListByType(ctx context.Context, t domain.ResultType) ([]*domain.Result, error) {
	const q = `
SELECT id, run_id, bucket, type, title, amount, description, details, severity, created_at
FROM analysis_results
WHERE type=? ORDER BY created_at, id;
`
	rows, err := r.db.QueryContext(ctx, q, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]*domain.Result, error) {
	var out []*domain.Result
	for rows.Next() {
		var res domain.Result
		var description, details sql.NullString
		if err := rows.Scan(
			&res.ID, &res.RunID, &res.Bucket, &res.Type, &res.Title, &res.Amount,
			&description, &details, &res.Severity, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		res.Description = fromNull(description)
		if details.Valid {
			res.Details = json.RawMessage(details.String)
		}
		out = append(out, &res)
	}
	return out, rows.Err()
}
