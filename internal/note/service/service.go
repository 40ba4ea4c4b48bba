package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/quillbox/quillbox-server/internal/note"
	"github.com/quillbox/quillbox-server/internal/note/repository"
	"github.com/quillbox/quillbox-server/pkg/metrics"
)

var (
	ErrNotFound   = errors.New("note not found")
	ErrValidation = errors.New("title and content are required")
)

// Repository is the persistence surface the service depends on. MongoRepo is
// the production implementation; MemoryRepo backs unit tests.
type Repository interface {
	Create(ctx context.Context, n *note.Note) (*note.Note, error)
	Get(ctx context.Context, id string) (*note.Note, error)
	List(ctx context.Context, q repository.ListQuery) ([]*note.Note, error)
	ListDeleted(ctx context.Context) ([]*note.Note, error)
	Update(ctx context.Context, id string, f repository.UpdateFields) (*note.Note, error)
	SetDeleted(ctx context.Context, id string, deleted bool, deletedAt *time.Time) (*note.Note, error)
	Delete(ctx context.Context, id string) error
	DeleteAllDeleted(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the create request. Color, Category and Tags are
// optional and get defaults when empty.
type CreateInput struct {
	Title    string
	Content  string
	Color    string
	Category string
	Tags     []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*note.Note, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" {
		return nil, ErrValidation
	}
	n := &note.Note{
		Title:    title,
		Content:  in.Content,
		Color:    in.Color,
		Category: in.Category,
		Tags:     in.Tags,
	}
	if n.Color == "" {
		n.Color = note.DefaultColor
	}
	if n.Category == "" {
		n.Category = note.DefaultCategory
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	metrics.NotesCreated.Inc()
	return created, nil
}

// List returns active notes. Unknown sort values fall back to newest;
// "createdAt" is accepted as an alias the web client sends for newest.
func (s *Service) List(ctx context.Context, q repository.ListQuery) ([]*note.Note, error) {
	switch q.Sort {
	case repository.SortUpdated, repository.SortTitle:
	case "createdAt":
		q.Sort = repository.SortNewest
	default:
		q.Sort = repository.SortNewest
	}
	return s.repo.List(ctx, q)
}

// ListTrash returns trashed notes, most recently deleted first.
func (s *Service) ListTrash(ctx context.Context) ([]*note.Note, error) {
	return s.repo.ListDeleted(ctx)
}

// Get fetches a note by id regardless of its trash state.
func (s *Service) Get(ctx context.Context, id string) (*note.Note, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return n, nil
}

// Update merges only the supplied fields into the stored note and refreshes
// updatedAt. Absent fields keep their values.
func (s *Service) Update(ctx context.Context, id string, f repository.UpdateFields) (*note.Note, error) {
	n, err := s.repo.Update(ctx, id, f)
	if err != nil {
		return nil, mapErr(err)
	}
	return n, nil
}

// SoftDelete moves a note to the trash. Soft-deleting an already-trashed note
// re-stamps deletedAt; there is deliberately no state guard.
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	if _, err := s.repo.SetDeleted(ctx, id, true, &now); err != nil {
		return mapErr(err)
	}
	metrics.NotesTrashed.Inc()
	return nil
}

// Restore brings a note back from the trash regardless of its prior state.
func (s *Service) Restore(ctx context.Context, id string) (*note.Note, error) {
	n, err := s.repo.SetDeleted(ctx, id, false, nil)
	if err != nil {
		return nil, mapErr(err)
	}
	metrics.NotesRestored.Inc()
	return n, nil
}

// PermanentlyDelete removes the record irrecoverably. It does not require the
// note to be in the trash first.
func (s *Service) PermanentlyDelete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapErr(err)
	}
	metrics.NotesPurged.Inc()
	return nil
}

// TogglePin flips the pinned flag and returns the updated note.
func (s *Service) TogglePin(ctx context.Context, id string) (*note.Note, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	pinned := !n.Pinned
	updated, err := s.repo.Update(ctx, id, repository.UpdateFields{Pinned: &pinned})
	if err != nil {
		return nil, mapErr(err)
	}
	return updated, nil
}

// EmptyTrash permanently removes every trashed note in a single best-effort
// command and returns how many were removed.
func (s *Service) EmptyTrash(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteAllDeleted(ctx)
	if err != nil {
		return 0, err
	}
	metrics.NotesPurged.Add(float64(removed))
	return removed, nil
}

func mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
