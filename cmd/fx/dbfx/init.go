package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"placedex/internal/config"
	"placedex/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
