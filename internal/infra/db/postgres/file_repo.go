package postgres

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/aryanpyx/finsight/internal/domain/files"
)

type FileRepository struct{ db *sql.DB }

func NewFileRepository(db *sql.DB) *FileRepository { return &FileRepository{db: db} }

func (r *FileRepository) Save(ctx context.Context, f *domain.UploadedFile) error {
	const q = `
INSERT INTO uploaded_files
(id, filename, original_name, type, size, uploaded_at, content, processed, archive_url)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (id) DO UPDATE SET
 content = EXCLUDED.content,
 processed = EXCLUDED.processed,
 archive_url = EXCLUDED.archive_url;`
	_, err := r.db.ExecContext(ctx, q,
		f.ID, f.Filename, f.OriginalName, f.Type, f.Size, f.UploadedAt,
		nullString(f.Content), f.Processed, nullString(f.ArchiveURL),
	)
	return err
}

func (r *FileRepository) List(ctx context.Context) ([]*domain.UploadedFile, error) {
	const q = `
SELECT id, filename, original_name, type, size, uploaded_at, content, processed, archive_url
FROM uploaded_files ORDER BY uploaded_at, id;`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFiles(rows)
}

func (r *FileRepository) ListByType(ctx context.Context, t domain.FileType) ([]*domain.UploadedFile, error) {
	const q = `
SELECT id, filename, original_name, type, size, uploaded_at, content, processed, archive_url
FROM uploaded_files WHERE type=$1 ORDER BY uploaded_at, id;`
	rows, err := r.db.QueryContext(ctx, q, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFiles(rows)
}

func (r *FileRepository) UpdateContent(ctx context.Context, id domain.FileID, content string, processed bool) (*domain.UploadedFile, error) {
	const q = `
UPDATE uploaded_files SET content=$1, processed=$2 WHERE id=$3
RETURNING id, filename, original_name, type, size, uploaded_at, content, processed, archive_url;`
	f, err := scanFile(r.db.QueryRowContext(ctx, q, nullString(content), processed, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return f, err
}

func scanFile(row rowScanner) (*domain.UploadedFile, error) {
	var f domain.UploadedFile
	var content, archiveURL sql.NullString
	if err := row.Scan(
		&f.ID, &f.Filename, &f.OriginalName, &f.Type, &f.Size, &f.UploadedAt,
		&content, &f.Processed, &archiveURL,
	); err != nil {
		return nil, err
	}
	f.Content = fromNull(content)
	f.ArchiveURL = fromNull(archiveURL)
	return &f, nil
}

func scanFiles(rows *sql.Rows) ([]*domain.UploadedFile, error) {
	var out []*domain.UploadedFile
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
