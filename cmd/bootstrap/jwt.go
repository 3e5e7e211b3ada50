package bootstrap

import (
	"errors"

	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

const minJWTSecretLen = 16

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if len(cfg.JWT.Secret) < minJWTSecretLen {
		return nil, errors.New("JWT_SECRET must be at least 16 bytes")
	}
	return jwt.NewService(cfg.JWT.Options()), nil
}
