package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Engine   Engine
	Cache    Cache
	Catalog  Catalog
	Postgres Postgres
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"margin-engine"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor  bool   `env:"LOG_NO_COLOR" envDefault:"false"`
}

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
	MaskCosts         bool          `env:"HTTP_LOG_MASK_COSTS" envDefault:"false"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Engine struct {
	Resolution int `env:"ENGINE_GRID_POINTS" envDefault:"20"`
	Workers    int `env:"ENGINE_SAMPLING_WORKERS" envDefault:"1"`
	// SegmentMargins переопределяет целевую маржу сегментов,
	// формат "Luxury:0.75,Budget:0.3".
	SegmentMargins map[string]float64 `env:"ENGINE_SEGMENT_MARGINS" envSeparator:"," envKeyValSeparator:":"`
}

type Cache struct {
	TTL             time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"1m"`
	Redis           Redis
}

type Redis struct {
	Address        string `env:"REDIS_ADDRESS"`
	Username       string `env:"REDIS_USERNAME"`
	Password       string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize       int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns   int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConns   int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
}

type Catalog struct {
	RefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL" envDefault:"5m"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse(env.Options{}) //nolint:exhaustruct
}

// Parse разбирает конфигурацию из окружения без чтения .env.
func Parse(opts env.Options) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}

func (c Cache) UseRedis() bool {
	return c.Redis.Address != ""
}
