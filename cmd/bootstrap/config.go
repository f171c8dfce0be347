package bootstrap

import (
	"stayhub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.CalendarConfig { return cfg.Calendar },
		func(cfg config.Config) config.SMTPConfig { return cfg.SMTP },
		func(cfg config.Config) config.WorkerConfig { return cfg.Worker },
	),
)
