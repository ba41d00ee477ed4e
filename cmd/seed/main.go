package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/config"
	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/internal/container"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	pginfra "github.com/oksasatya/go-ddd-wallet/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-wallet/pkg/helpers"
)

// seed creates a demo user through the same use-cases the API calls and gives
// it an opening balance. Run it against a database both services migrate.
const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
	openingFunds = 1000.0
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger("seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dsn := cfg.PostgresDSN()
	pool, err := pginfra.NewPool(ctx, dsn, pginfra.PoolSettings{MaxConns: 2, MinConns: 1, MaxConnLifetime: time.Minute})
	if err != nil {
		logger.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()

	for _, m := range []config.Migrations{container.UserMigrations, container.WalletMigrations} {
		if err := pginfra.RunMigrations(dsn, m.Dir, m.Table, logger); err != nil {
			logger.WithError(err).WithField("dir", m.Dir).Fatal("migrate")
		}
	}

	users := pginfra.NewUserRepository(pool)
	create := application.NewCreateUserUseCase(users, helpers.NewBcryptHasher(0), nil, nil, logger)

	u, err := create.Execute(ctx, application.CreateUserInput{
		FirstName: "Demo",
		LastName:  "User",
		Email:     demoEmail,
		Password:  demoPassword,
	})
	if apperror.KindOf(err) == apperror.KindConflict {
		u, err = users.FindByEmail(ctx, demoEmail)
	}
	if err != nil || u == nil {
		logger.WithError(err).Fatal("seed user")
	}

	txs := pginfra.NewTransactionRepository(pool)
	balance, err := application.NewGetBalanceUseCase(txs).Execute(ctx, u.ID)
	if err != nil {
		logger.WithError(err).Fatal("read balance")
	}
	if balance.Amount == 0 {
		if _, err := application.NewCreateTransactionUseCase(txs, logger).Execute(ctx, application.CreateTransactionInput{
			UserID: u.ID,
			Amount: openingFunds,
			Type:   entity.TransactionCredit,
		}); err != nil {
			logger.WithError(err).Fatal("seed opening credit")
		}
		balance.Amount = openingFunds
	}

	logger.WithFields(logrus.Fields{
		"user_id":  u.ID,
		"email":    demoEmail,
		"password": demoPassword,
		"balance":  balance.Amount,
	}).Info("seed complete")
}
