package connectors

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/samber/lo"

	"margin_engine/pkg/logx"
)

type Postgres struct {
	value           *sqlx.DB
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	// Migrations, если задан, применяется goose при первом подключении.
	Migrations fs.FS
	init       sync.Once
}

func (p *Postgres) Client(ctx context.Context) *sqlx.DB {
	p.init.Do(func() {
		p.value = lo.Must(sqlx.ConnectContext(ctx, "pgx", p.DSN))

		p.value.SetMaxOpenConns(p.MaxOpenConns)
		p.value.SetMaxIdleConns(p.MaxIdleConns)
		p.value.SetConnMaxLifetime(p.ConnMaxLifetime)

		logger(ctx).Info(
			"postgres connected",
			slog.String("database", lo.Must(url.Parse(p.DSN)).Path),
		)

		if p.Migrations != nil {
			lo.Must0(p.migrate(ctx))
		}
	})

	return p.value
}

func (p *Postgres) migrate(ctx context.Context) error {
	goose.SetBaseFS(p.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose.SetDialect: %w", err)
	}

	if err := goose.UpContext(ctx, p.value.DB, "."); err != nil {
		return fmt.Errorf("goose.UpContext: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, p.value.DB)
	if err != nil {
		return fmt.Errorf("goose.GetDBVersionContext: %w", err)
	}

	logger(ctx).Info("postgres migrated", slog.Int64("version", version))

	return nil
}

// Ping проверяет доступность базы, используется в readiness-пробе.
func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.Client(ctx).PingContext(ctx); err != nil {
		return fmt.Errorf("postgres.Ping: %w", err)
	}

	return nil
}

func (p *Postgres) Close(ctx context.Context) {
	if p.value == nil {
		return
	}

	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"postgres disconnected",
		slog.String("database", lo.Must(url.Parse(p.DSN)).Path),
	)
}
