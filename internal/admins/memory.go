package admins

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quillbox/quillbox-server/internal/models"
)

// MemoryRepository is an in-memory AdminRepository used by unit tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	admins map[primitive.ObjectID]models.Admin
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{admins: make(map[primitive.ObjectID]models.Admin)}
}

func (r *MemoryRepository) Insert(ctx context.Context, a *models.Admin) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	r.admins[a.ID] = *a
	return a, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.admins {
		if a.Username == username {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.admins[id]; ok {
		out := a
		return &out, nil
	}
	return nil, nil
}
