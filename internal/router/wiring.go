package router

import (
	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/internal/container"
	"github.com/oksasatya/go-ddd-wallet/internal/infrastructure/notify"
	pginfra "github.com/oksasatya/go-ddd-wallet/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-wallet/internal/infrastructure/search"
	handlers "github.com/oksasatya/go-ddd-wallet/internal/interface/http"
	"github.com/oksasatya/go-ddd-wallet/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-wallet/internal/router/modules"
	"github.com/oksasatya/go-ddd-wallet/pkg/helpers"
)

// InitUserModules wires the user service: registration, login, profile and search.
func InitUserModules(r *Registry, c *container.Container) {
	repo := pginfra.NewUserRepository(c.PG)
	hasher := helpers.NewBcryptHasher(0)

	// Optional collaborators stay untyped nil so the use-cases see them as absent.
	var indexer application.UserIndexer
	if c.ES != nil {
		indexer = search.NewUserIndexer(c.ES, c.Config.Search.UsersIndex, c.Logger)
	}
	var notifier application.UserNotifier
	if c.Rabbit != nil {
		notifier = notify.NewWelcomeNotifier(c.Rabbit, c.Config)
	}

	userHandler := handlers.NewUserHandler(handlers.UserUseCases{
		Create:         application.NewCreateUserUseCase(repo, hasher, indexer, notifier, c.Logger),
		GetByID:        application.NewGetUserByIDUseCase(repo),
		GetAll:         application.NewGetAllUsersUseCase(repo),
		Update:         application.NewUpdateUserUseCase(repo, indexer, c.Logger),
		Delete:         application.NewDeleteUserUseCase(repo, indexer, c.Logger),
		ChangePassword: application.NewChangePasswordUseCase(repo, hasher, c.Logger),
		Search:         application.NewSearchUsersUseCase(indexer),
	}, c.Logger)
	authHandler := handlers.NewAuthHandler(
		application.NewAuthenticateUserUseCase(repo, hasher, c.JWT, c.Logger),
		c.Logger,
	)

	limiter := middleware.NewLimiter(c.Redis, "users", c.Logger)
	initCommon(r, c, limiter)
	r.Add(modules.NewAuthModule(authHandler, limiter))
	r.Add(modules.NewUserModule(userHandler, c.JWT, limiter, c.Logger))
}

// InitWalletModules wires the wallet service: transactions and balance.
func InitWalletModules(r *Registry, c *container.Container) {
	repo := pginfra.NewTransactionRepository(c.PG)

	txHandler := handlers.NewTransactionHandler(
		application.NewCreateTransactionUseCase(repo, c.Logger),
		application.NewGetTransactionsUseCase(repo),
		application.NewGetBalanceUseCase(repo),
		c.Logger,
	)

	limiter := middleware.NewLimiter(c.Redis, "wallet", c.Logger)
	initCommon(r, c, limiter)
	r.Add(modules.NewTransactionModule(txHandler, c.JWT, limiter, c.Logger))
}

func initCommon(r *Registry, c *container.Container, limiter *middleware.Limiter) {
	r.AddRoot(modules.NewHealthModule(c.PG))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(limiter))
	}
}
