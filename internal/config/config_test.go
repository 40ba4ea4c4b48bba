package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("MONGODB_DATABASE", "quillbox_test")
	t.Setenv("JWT_SECRET", "testsecret123456789012345678901234")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "hunter22")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "mongodb://localhost:27017/testdb", cfg.MongoDB.URI)
	require.Equal(t, "quillbox_test", cfg.MongoDB.Database)
	require.Equal(t, "admin", cfg.Admin.Username)
	require.Equal(t, "hunter22", cfg.Admin.Password)
	// defaults
	require.Equal(t, "5000", cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, 7*24*time.Hour, cfg.JWT.TokenTTL)
}

func TestLoadConfigRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET", "testsecret123456789012345678901234")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}
