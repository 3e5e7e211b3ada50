//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs member tokens the way the member center does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, memberID uuid.UUID) string {
	t.Helper()
	return h.sign(t, h.cfg.Options(), memberID)
}

// CreateExpiredToken expired well past the configured leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, memberID uuid.UUID) string {
	t.Helper()
	opts := h.cfg.Options()
	opts.TTL = -(h.cfg.Leeway + time.Minute)
	return h.sign(t, opts, memberID)
}

func (h *JWTHelper) CreateForeignToken(t *testing.T, memberID uuid.UUID) string {
	t.Helper()
	opts := h.cfg.Options()
	opts.Secret = "some-other-secret"
	return h.sign(t, opts, memberID)
}

func (h *JWTHelper) sign(t *testing.T, opts jwt.Options, memberID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(opts).GenerateToken(memberID)
	require.NoError(t, err)
	return token
}
