package config

import "time"

// Postgres необязателен: без PG_DSN каталог хранится в памяти.
type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
	Migrate         bool          `env:"PG_MIGRATE" envDefault:"true"`
}

func (p Postgres) Enabled() bool {
	return p.DSN != ""
}
