package bootstrap

import (
	"hotel-storefront/cmd/bootstrap/components"
	"hotel-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module is the full storefront API graph. Tests compose the inner modules
// themselves so they can swap config and storage.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.ProtectionModule,
	components.HandlerModule,
)
