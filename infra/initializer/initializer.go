// Package initializer constructs the application's dependency graph from
// configuration: logger, Postgres connection, Redis client, repositories,
// and the bank account service.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mycompany/bankapp/infra"
	bankaccountrepo "github.com/mycompany/bankapp/infra/repository/bankaccount"
	"github.com/mycompany/bankapp/infra/search"
	"github.com/mycompany/bankapp/pkg/config"
	bankaccountsvc "github.com/mycompany/bankapp/pkg/service/bankaccount"
)

// Deps holds the initialized application dependencies.
type Deps struct {
	DB           *gorm.DB
	Redis        *redis.Client
	BankAccounts *bankaccountsvc.Service
	Logger       *slog.Logger
}

// Initialize wires all dependencies from the loaded configuration.
func Initialize(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&bankaccountrepo.BankAccount{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	opt.PoolSize = cfg.Redis.PoolSize
	opt.DialTimeout = cfg.Redis.DialTimeout
	opt.ReadTimeout = cfg.Redis.ReadTimeout
	opt.WriteTimeout = cfg.Redis.WriteTimeout
	client := redis.NewClient(opt)

	repo := bankaccountrepo.New(db)
	searchRepo := search.NewRedisSearchRepository(client, cfg.Redis.KeyPrefix, logger)
	svc := bankaccountsvc.New(repo, searchRepo, logger)

	return &Deps{
		DB:           db,
		Redis:        client,
		BankAccounts: svc,
		Logger:       logger,
	}, nil
}
