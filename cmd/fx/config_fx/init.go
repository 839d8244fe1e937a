package config_fx

import (
	"go.uber.org/fx"

	"founderkit/pkg/config"
)

var Module = fx.Provide(config.Load)
