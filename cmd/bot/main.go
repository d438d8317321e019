package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"salary-aggregation-service/internal/bootstrap"
	"salary-aggregation-service/internal/config"
	"salary-aggregation-service/internal/salaries/adapters/telegram"
	salariesUsecase "salary-aggregation-service/internal/salaries/core/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Telegram.Token == "" {
		log.Fatal("telegram.token (TELEGRAM_TOKEN) is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeStore()

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Fatalf("failed to connect to telegram: %v", err)
	}
	log.Printf("authorized as @%s", api.Self.UserName)

	aggregateUC := salariesUsecase.NewAggregateSalariesUseCase(store)
	bot := telegram.NewBot(api, aggregateUC, cfg.Telegram.PollTimeout)

	if err := bot.Run(ctx); err != nil {
		log.Printf("bot stopped: %v", err)
	}

	log.Println("bot exiting")
}
