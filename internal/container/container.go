// Package container builds the infrastructure clients a binary needs and
// hands them to the router. Optional clients stay nil when disabled or
// unreachable; every consumer treats nil as "feature off".
package container

import (
	"context"
	"errors"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/config"
	"github.com/oksasatya/go-ddd-wallet/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-wallet/pkg/helpers"
)

type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	PG     *pgxpool.Pool
	JWT    *helpers.JWTManager

	Redis  *redis.Client
	Rabbit *helpers.RabbitQueue
	ES     *elasticsearch.Client
}

// Migration sets owned by each service. Each keeps its own version table so
// the services can share one database.
var (
	UserMigrations   = config.Migrations{Dir: "db/migrations/users", Table: "users_schema_migrations"}
	WalletMigrations = config.Migrations{Dir: "db/migrations/wallet", Table: "wallet_schema_migrations"}
)

// Options selects the migration set and the optional clients a binary wants.
type Options struct {
	Migrations config.Migrations
	Rabbit     bool
	Search     bool
}

// migrations resolves the set to apply. MIGRATIONS_* env values win.
func (o Options) migrations(cfg *config.Config) (config.Migrations, error) {
	m := cfg.Migrations.Or(o.Migrations)
	if m.Dir == "" || m.Table == "" {
		return m, errors.New("no migration set configured")
	}
	return m, nil
}

// Open connects Postgres, applies migrations and dials the optional clients.
// Only a Postgres failure is fatal.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger, opts Options) (*Container, error) {
	mig, err := opts.migrations(cfg)
	if err != nil {
		return nil, err
	}

	dsn := cfg.PostgresDSN()
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolSettings{
		MaxConns:        cfg.DB.MaxConns,
		MinConns:        cfg.DB.MinConns,
		MaxConnLifetime: cfg.DB.MaxConnLife,
	})
	if err != nil {
		return nil, err
	}
	if err := postgres.RunMigrations(dsn, mig.Dir, mig.Table, logger); err != nil {
		pool.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		PG:     pool,
		JWT:    helpers.NewJWTManager(cfg.JWT.AccessSecret, cfg.JWT.AccessTTL),
	}

	if cfg.Redis.RateLimitEnabled {
		rdb, err := helpers.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable; rate limiting disabled")
		} else {
			c.Redis = rdb
		}
	}

	if opts.Rabbit && cfg.MailSendEnabled && cfg.RabbitMQ.URL != "" {
		q, err := helpers.NewRabbitQueue(cfg.RabbitMQ.URL, cfg.RabbitMQ.EmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; welcome emails disabled")
		} else {
			c.Rabbit = q
		}
	}

	if opts.Search && cfg.Search.Enabled {
		es, err := helpers.NewESClient(ctx, cfg.Search)
		if err != nil {
			logger.WithError(err).Warn("elasticsearch unavailable; user search disabled")
		} else {
			c.ES = es
		}
	}

	return c, nil
}

func (c *Container) Close() {
	if c.Rabbit != nil {
		c.Rabbit.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.PG != nil {
		c.PG.Close()
	}
}
