package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are issued by the member center; this service only verifies them.
// Older tokens carry the member only in "sub".
type Claims struct {
	MemberID uuid.UUID `json:"member_id,omitempty"`
	jwt.RegisteredClaims
}

type Options struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
	Leeway   time.Duration
}

type Service struct {
	secret []byte
	opts   Options
	parser *jwt.Parser
}

func NewService(opts Options) *Service {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(opts.Leeway),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.Audience))
	}
	return &Service{
		secret: []byte(opts.Secret),
		opts:   opts,
		parser: jwt.NewParser(parserOpts...),
	}
}

// GenerateToken signs a member token with the configured issuer and audience.
// Production tokens come from the member center; this exists for local tooling and tests.
func (s *Service) GenerateToken(memberID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID.String(),
			Issuer:    s.opts.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TTL)),
		},
	}
	if s.opts.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.opts.Audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.MemberID == uuid.Nil {
		sub, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, ErrInvalidToken
		}
		claims.MemberID = sub
	}
	if claims.MemberID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
