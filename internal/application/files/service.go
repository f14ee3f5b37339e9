package files

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/aryanpyx/finsight/internal/application"
	domain "github.com/aryanpyx/finsight/internal/domain/files"
)

// Service implements use-cases untuk File Intake
type Service struct {
	Files   domain.Repository
	Archive domain.ArchiveStore // optional; nil disables raw-upload archiving
	Clock   application.Clock
}

// Command untuk upload
type UploadCommand struct {
	OriginalName string
	Type         string
	Size         int64
	Data         []byte
}

//
// ==== USE CASES ====
//

// Upload validates the declared category against the filename
// extension, decodes the blob to text, and persists a file record.
// Validation failures happen before any processing or store mutation.
func (s *Service) Upload(ctx context.Context, cmd UploadCommand) (*domain.UploadedFile, error) {
	t, err := domain.ParseType(cmd.Type)
	if err != nil {
		return nil, err
	}
	if !domain.ValidateFileType(cmd.OriginalName, t) {
		return nil, domain.ErrUnsupportedFormat
	}

	now := s.Clock.Now()
	content := domain.ProcessText(cmd.Data)

	f := &domain.UploadedFile{
		ID:           domain.FileID(uuid.New().String()),
		Filename:     fmt.Sprintf("%d-%s", now.UnixMilli(), cmd.OriginalName),
		OriginalName: cmd.OriginalName,
		Type:         t,
		Size:         cmd.Size,
		UploadedAt:   now,
		Content:      content,
		Processed:    true,
	}

	// simpan raw blob ke archive kalau dikonfigurasi
	if s.Archive != nil {
		key := fmt.Sprintf("%s/%s", t, f.Filename)
		url, err := s.Archive.UploadBytes(ctx, key, cmd.Data, contentTypeFor(cmd.OriginalName))
		if err != nil {
			return nil, fmt.Errorf("archive upload: %w", err)
		}
		f.ArchiveURL = url
	}

	if err := s.Files.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// List returns all uploaded files in insertion order.
func (s *Service) List(ctx context.Context) ([]*domain.UploadedFile, error) {
	return s.Files.List(ctx)
}

// contentTypeFor picks a mime type from the filename extension.
func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
