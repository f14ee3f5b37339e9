package files

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, f *UploadedFile) error
	List(ctx context.Context) ([]*UploadedFile, error)
	ListByType(ctx context.Context, t FileType) ([]*UploadedFile, error)

	// UpdateContent replaces content + processed flag by id.
	// Returns ErrNotFound when the id does not exist.
	UpdateContent(ctx context.Context, id FileID, content string, processed bool) (*UploadedFile, error)
}

// ArchiveStore port (interface untuk penyimpanan raw upload)
type ArchiveStore interface {
	UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
