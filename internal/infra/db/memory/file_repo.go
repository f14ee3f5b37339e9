package memory

import (
	"context"

	domain "github.com/aryanpyx/finsight/internal/domain/files"
)

type FileRepository struct {
	store *Store
}

func NewFileRepository(store *Store) *FileRepository {
	return &FileRepository{store: store}
}

// Save inserts the record; saving an existing id overwrites in place
// without disturbing insertion order.
func (r *FileRepository) Save(ctx context.Context, f *domain.UploadedFile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[f.ID]; !ok {
		s.fileOrder = append(s.fileOrder, f.ID)
	}
	cp := *f
	s.files[f.ID] = &cp
	return nil
}

// List returns all files in insertion order.
func (r *FileRepository) List(ctx context.Context) ([]*domain.UploadedFile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.UploadedFile, 0, len(s.fileOrder))
	for _, id := range s.fileOrder {
		cp := *s.files[id]
		out = append(out, &cp)
	}
	return out, nil
}

// ListByType linear-scans in insertion order.
func (r *FileRepository) ListByType(ctx context.Context, t domain.FileType) ([]*domain.UploadedFile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.UploadedFile
	for _, id := range s.fileOrder {
		if f := s.files[id]; f.Type == t {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

// UpdateContent replaces content + processed flag by id. A missing id
// is reported to the caller, not swallowed.
func (r *FileRepository) UpdateContent(ctx context.Context, id domain.FileID, content string, processed bool) (*domain.UploadedFile, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	f.Content = content
	f.Processed = processed
	cp := *f
	return &cp, nil
}
