package usecase

import (
	"stelwing-booking/internal/pkg/errs"
	"stelwing-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// ErrUnauthenticated marks every rejected member token.
var ErrUnauthenticated = errs.New("unauthenticated")

// TokenValidator resolves a bearer token to the member it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type memberTokenValidator struct {
	verifier *jwt.Service
}

func NewTokenValidator(verifier *jwt.Service) TokenValidator {
	return &memberTokenValidator{verifier: verifier}
}

func (v *memberTokenValidator) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := v.verifier.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrUnauthenticated)
	}
	return claims.MemberID, nil
}
