package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/popsorte/backend/api/routes"
	"github.com/popsorte/backend/internal/config"
	"github.com/popsorte/backend/internal/drawcal"
	"github.com/popsorte/backend/internal/handlers"
	mongorepo "github.com/popsorte/backend/internal/repositories/mongodb"
	"github.com/popsorte/backend/internal/services"
	"github.com/popsorte/backend/pkg/mongodb"
	"github.com/popsorte/backend/pkg/telegram"
	"golang.org/x/exp/slog"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg.LogLevel)

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	cal, ref, err := buildCalendar(cfg)
	if err != nil {
		log.Fatalf("Invalid draw configuration: %v", err)
	}

	// Repositories
	rechargeRepo := mongorepo.NewRechargeRepository(db)
	ticketRepo := mongorepo.NewTicketRepository(db)
	resultRepo := mongorepo.NewResultRepository(db)
	winnerRepo := mongorepo.NewWinnerRepository(db)
	adminRepo := mongorepo.NewAdminUserRepository(db)

	// Gateways
	var gateway telegram.Gateway
	if cfg.Telegram.Mock || cfg.Telegram.BotToken == "" {
		gateway = telegram.NewMockGateway()
	} else {
		gateway = telegram.NewBotGateway(cfg.Telegram.BotToken)
	}

	// Services
	validator := services.NewValidator(cal)
	prizes := services.NewPrizeService(cfg.Draw.PrizePool)
	authService := services.NewAuthService(adminRepo, cfg)
	ticketService := services.NewTicketService(ticketRepo, cal, ref)
	rechargeService := services.NewRechargeService(rechargeRepo, ticketRepo, validator)
	resultsService := services.NewResultsService(resultRepo, ticketRepo, winnerRepo, prizes)
	notificationService := services.NewNotificationService(gateway, cfg)

	// Handlers
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Ticket:   handlers.NewTicketHandler(ticketService),
		Recharge: handlers.NewRechargeHandler(rechargeService),
		Results:  handlers.NewResultsHandler(resultsService, notificationService),
	}

	router := routes.SetupRouter(cfg, h)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("server exiting")
}

// buildCalendar assembles the draw calendar and the contest numbering
// anchor from configuration.
func buildCalendar(cfg *config.Config) (*drawcal.Calendar, drawcal.ContestRef, error) {
	policy := drawcal.CutoffPolicy{}
	for _, date := range cfg.Draw.EarlyCutoffDates {
		policy[date] = drawcal.ClockTime{Hour: cfg.Draw.EarlyCutoffHour}
	}
	cal := drawcal.NewWithPolicy(cfg.Draw.Holidays, policy)

	refDate, err := drawcal.ParseLocalDate(cfg.Draw.ContestRefDate)
	if err != nil {
		return nil, drawcal.ContestRef{}, err
	}
	ref := drawcal.ContestRef{Date: refDate, Number: cfg.Draw.ContestRefNumber}
	return cal, ref, nil
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
