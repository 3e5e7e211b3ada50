package bootstrap

import (
	"stelwing-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and refuses to start on settings the commit path cannot honour.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
