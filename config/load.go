package config

import (
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

func Load() App {
	var cfg App
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("config load failed", "err", err)
		panic("config: " + err.Error())
	}
	return cfg
}
