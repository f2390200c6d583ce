package config

type App struct {
	Port        string `env:"APP_PORT" env-default:"8080"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	JWTSecret   string `env:"JWT_SECRET" env-default:"local_dev_secret"`
	Env         string `env:"APP_ENV" env-default:"dev"`
}
