package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quillbox/quillbox-server/internal/note"
)

// MemoryRepo is an in-memory repository with the same semantics as MongoRepo.
// It backs unit tests so service and handler behavior can be exercised
// without a running MongoDB.
type MemoryRepo struct {
	mu    sync.RWMutex
	notes map[string]note.Note
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{notes: make(map[string]note.Note)}
}

func (m *MemoryRepo) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	n.ID = primitive.NewObjectID()
	n.CreatedAt = now
	n.UpdatedAt = now
	m.notes[n.ID.Hex()] = *n
	return n, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n, ok := m.notes[id]; ok {
		out := n
		return &out, nil
	}
	return nil, ErrNotFound
}

func matches(n note.Note, q ListQuery) bool {
	if q.Category != "" && n.Category != q.Category {
		return false
	}
	if q.Search != "" {
		s := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(n.Title), s) &&
			!strings.Contains(strings.ToLower(n.Content), s) {
			return false
		}
	}
	return true
}

func (m *MemoryRepo) List(ctx context.Context, q ListQuery) ([]*note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*note.Note{}
	for _, n := range m.notes {
		if n.Deleted || !matches(n, q) {
			continue
		}
		cp := n
		out = append(out, &cp)
	}
	switch q.Sort {
	case SortUpdated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (m *MemoryRepo) ListDeleted(ctx context.Context) ([]*note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*note.Note{}
	for _, n := range m.notes {
		if !n.Deleted {
			continue
		}
		cp := n
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		var ti, tj time.Time
		if out[i].DeletedAt != nil {
			ti = *out[i].DeletedAt
		}
		if out[j].DeletedAt != nil {
			tj = *out[j].DeletedAt
		}
		return ti.After(tj)
	})
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, f UpdateFields) (*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return nil, ErrNotFound
	}
	if f.Title != nil {
		n.Title = *f.Title
	}
	if f.Content != nil {
		n.Content = *f.Content
	}
	if f.Color != nil {
		n.Color = *f.Color
	}
	if f.Category != nil {
		n.Category = *f.Category
	}
	if f.Tags != nil {
		n.Tags = *f.Tags
	}
	if f.Pinned != nil {
		n.Pinned = *f.Pinned
	}
	n.UpdatedAt = time.Now().UTC()
	m.notes[id] = n
	out := n
	return &out, nil
}

func (m *MemoryRepo) SetDeleted(ctx context.Context, id string, deleted bool, deletedAt *time.Time) (*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return nil, ErrNotFound
	}
	n.Deleted = deleted
	n.DeletedAt = deletedAt
	m.notes[id] = n
	out := n
	return &out, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

func (m *MemoryRepo) DeleteAllDeleted(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for id, n := range m.notes {
		if n.Deleted {
			delete(m.notes, id)
			removed++
		}
	}
	return removed, nil
}
