package admins

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/quillbox/quillbox-server/internal/models"
)

var (
	// ErrInvalidCredentials is returned for both an unknown username and a
	// failed password check so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("admin not found")
)

// Service encapsulates administrator business logic
type Service struct {
	repo AdminRepository
}

func NewService(r AdminRepository) *Service {
	return &Service{repo: r}
}

// Authenticate looks up the administrator by username and verifies the
// password against the stored bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// GetProfile resolves a verified identity back to the stored record.
func (s *Service) GetProfile(ctx context.Context, id string) (*models.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// EnsureDefault provisions the configured administrator if absent. It returns
// true when a new account was created. Idempotent across restarts.
func (s *Service) EnsureDefault(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}
	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	if _, err := s.repo.Insert(ctx, &models.Admin{Username: username, Password: string(hash)}); err != nil {
		return false, err
	}
	return true, nil
}
