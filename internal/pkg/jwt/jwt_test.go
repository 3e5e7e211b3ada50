//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"stelwing-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberCenter() jwt.Options {
	return jwt.Options{
		Secret:   "secret",
		Issuer:   "stelwing-member",
		Audience: "stelwing-booking",
		TTL:      time.Hour,
		Leeway:   5 * time.Second,
	}
}

func sign(t *testing.T, secret string, claims gojwt.Claims) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestService(t *testing.T) {
	memberID := uuid.New()
	svc := jwt.NewService(memberCenter())

	t.Run("issued token validates and carries the member id", func(t *testing.T) {
		token, err := svc.GenerateToken(memberID)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, memberID, claims.MemberID)
	})

	t.Run("member id falls back to sub", func(t *testing.T) {
		token := sign(t, "secret", gojwt.RegisteredClaims{
			Subject:   memberID.String(),
			Issuer:    "stelwing-member",
			Audience:  gojwt.ClaimStrings{"stelwing-booking"},
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, memberID, claims.MemberID)
	})

	t.Run("expired token", func(t *testing.T) {
		opts := memberCenter()
		opts.TTL = -time.Minute
		token, err := jwt.NewService(opts).GenerateToken(memberID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("expiry within leeway is accepted", func(t *testing.T) {
		opts := memberCenter()
		opts.TTL = -time.Second
		token, err := jwt.NewService(opts).GenerateToken(memberID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.NoError(t, err)
	})

	testCases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"token signed with another secret", func(t *testing.T) string {
			opts := memberCenter()
			opts.Secret = "other"
			token, err := jwt.NewService(opts).GenerateToken(memberID)
			require.NoError(t, err)
			return token
		}},
		{"foreign issuer", func(t *testing.T) string {
			opts := memberCenter()
			opts.Issuer = "someone-else"
			token, err := jwt.NewService(opts).GenerateToken(memberID)
			require.NoError(t, err)
			return token
		}},
		{"wrong audience", func(t *testing.T) string {
			opts := memberCenter()
			opts.Audience = "stelwing-admin"
			token, err := jwt.NewService(opts).GenerateToken(memberID)
			require.NoError(t, err)
			return token
		}},
		{"no expiry", func(t *testing.T) string {
			return sign(t, "secret", jwt.Claims{
				MemberID: memberID,
				RegisteredClaims: gojwt.RegisteredClaims{
					Issuer:   "stelwing-member",
					Audience: gojwt.ClaimStrings{"stelwing-booking"},
				},
			})
		}},
		{"no member", func(t *testing.T) string {
			return sign(t, "secret", gojwt.RegisteredClaims{
				Subject:   "not-a-uuid",
				Issuer:    "stelwing-member",
				Audience:  gojwt.ClaimStrings{"stelwing-booking"},
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			})
		}},
		{"unsigned", func(t *testing.T) string {
			token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{
				Subject:   memberID.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
			require.NoError(t, err)
			return token
		}},
		{"garbage", func(*testing.T) string { return "not-a-token" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token(t))
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
