package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	tc "github.com/Roma7-7-7/telegram"

	"github.com/albot-uz/albot/internal/config"
	"github.com/albot-uz/albot/internal/dal"
	"github.com/albot-uz/albot/internal/dal/migrations"
	"github.com/albot-uz/albot/internal/providers"
	"github.com/albot-uz/albot/internal/service"
	"github.com/albot-uz/albot/internal/telegram"
	"github.com/albot-uz/albot/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	db, err := bbolt.Open(conf.DBPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err = migrations.RunMigrations(db, log.With("component", "migrations")); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	store, err := dal.NewBoltDB(db)
	if err != nil {
		log.Error("Failed to create store", "error", err)
		os.Exit(1)
	}

	bot, err := telegram.NewBot(conf.BotToken, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	sender := tc.NewClient(http.DefaultClient, conf.BotToken)
	membershipSvc := service.NewMembership(bot.Client(), log)
	accessSvc := service.NewAccess(store, membershipSvc, log)
	usersSvc := service.NewUsers(store, log)
	channelsSvc := service.NewChannels(store, log)
	broadcastSvc := service.NewBroadcast(store, sender, clock.New(), conf.BroadcastDelay, log)
	completionSvc := service.NewCompletion(
		providers.NewOpenAIProvider(conf.OpenAIKey, conf.OpenAIModel, conf.CompletionTimeout),
		log,
	)

	bot.Register(telegram.NewHandler(accessSvc, usersSvc, channelsSvc, broadcastSvc, completionSvc, conf.AdminID, log))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Port),
		Handler:           bot.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if sErr := server.Shutdown(shutdownCtx); sErr != nil {
			log.Error("Failed to shutdown server", "error", sErr)
		}
	}()

	log.Info("Starting server", "port", conf.Port)
	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
	log.Info("Stopped server")
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
