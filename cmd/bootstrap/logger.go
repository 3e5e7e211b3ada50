package bootstrap

import (
	"log/slog"

	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/pkg/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default. Release builds log JSON.
func NewLogger(cfg config.Config) *slog.Logger {
	format := logging.FormatText
	if gin.Mode() == gin.ReleaseMode {
		format = logging.FormatJSON
	}
	logger := logging.New(cfg.Log, format)
	slog.SetDefault(logger)
	return logger
}
