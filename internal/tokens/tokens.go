package tokens

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quillbox/quillbox-server/internal/config"
	"github.com/quillbox/quillbox-server/internal/models"
)

// ErrInvalidToken covers missing, malformed, expired and badly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the administrator identity carried inside an access token.
type Identity struct {
	ID       string
	Username string
}

// GenerateAccessToken creates a signed JWT access token for the administrator
func GenerateAccessToken(cfg *config.Config, a *models.Admin, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":       a.ID.Hex(),
		"username": a.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// ParseAccessToken verifies signature and expiry and returns the embedded identity.
func ParseAccessToken(cfg *config.Config, raw string) (*Identity, error) {
	t, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{ID: id, Username: username}, nil
}

// Verifier adapts ParseAccessToken to the auth middleware's interface.
type Verifier struct {
	cfg *config.Config
}

func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{cfg: cfg}
}

func (v *Verifier) Verify(ctx context.Context, raw string) (*Identity, error) {
	return ParseAccessToken(v.cfg, raw)
}
