package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"salary-aggregation-service/internal/bootstrap"
	"salary-aggregation-service/internal/config"
	salariesHttp "salary-aggregation-service/internal/salaries/adapters/http/fiber"
	salariesUsecase "salary-aggregation-service/internal/salaries/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "salary-aggregation-service/docs"
)

// @title Salary Aggregation Service
// @version 1.0
// @description Aggregates salary payouts into gap-filled hourly, daily or monthly series.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Storage
	store, closeStore, err := bootstrap.OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeStore()

	// Usecases
	aggregateUC := salariesUsecase.NewAggregateSalariesUseCase(store)
	recordUC := salariesUsecase.NewRecordPayoutUseCase(store)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	salaryHandler := salariesHttp.NewSalaryHandler(aggregateUC)
	app.Post("/salaries/aggregate", salaryHandler.Aggregate)

	payoutHandler := salariesHttp.NewPayoutHandler(recordUC)
	app.Post("/salaries", payoutHandler.CreatePayout)
	app.Post("/salaries/bulk", payoutHandler.BulkCreatePayouts)

	app.Get("/health", salariesHttp.Health)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := ":" + cfg.Server.Port
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
