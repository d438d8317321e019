package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"salary-aggregation-service/internal/config"
	"salary-aggregation-service/internal/salaries/adapters/memory"
	"salary-aggregation-service/internal/salaries/adapters/postgres"
	"salary-aggregation-service/internal/salaries/core/ports"

	_ "github.com/lib/pq"
)

// Store is what both front-ends need from the salary collection.
type Store interface {
	ports.SalaryTotalsReaderPort
	ports.PayoutRepositoryPort
}

// OpenStore builds the configured store. The returned func releases it.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.Postgres)
	case config.DriverMemory:
		return openMemory(ctx, cfg.Memory)
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.PostgresConfig) (Store, func() error, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	repo := postgres.NewSalaryRepository(postgres.NewSQLDB(db), cfg.Table)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}

	log.Printf("storage: postgres, table %q", cfg.Table)
	return repo, db.Close, nil
}

func openMemory(ctx context.Context, cfg config.MemoryConfig) (Store, func() error, error) {
	repo := memory.NewSalaryRepository()

	if cfg.SeedFile != "" {
		n, err := repo.LoadSeedFile(ctx, cfg.SeedFile)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("storage: memory, %d payouts loaded from %s", n, cfg.SeedFile)
	} else {
		log.Println("storage: memory (empty)")
	}

	return repo, func() error { return nil }, nil
}
