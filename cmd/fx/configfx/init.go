package configfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"placedex/internal/config"
)

var Module = fx.Provide(
	provideConfig)

func provideConfig() *config.Config {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
