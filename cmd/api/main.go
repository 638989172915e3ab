package main

import (
	"context"
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/database/postgres"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/integrator/llm"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/repository"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/api"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/config"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/scheduler"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/ads"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/analytics"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/chatting"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/performance"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Base principal: anúncios e concorrentes
	mainConn := pgconn(ctx, cfg.MainDatabase.DSN, "main")
	defer mainConn.Close()

	// Base growth: métricas de marketing
	growthConn := pgconn(ctx, cfg.GrowthDatabase.DSN, "growth")
	defer growthConn.Close()

	adRepo := repository.NewAdRepository(mainConn)
	competitorRepo := repository.NewCompetitorRepository(mainConn)
	performanceRepo := repository.NewPerformanceRepository(growthConn)

	adService := ads.NewService(adRepo, competitorRepo)
	analyticsService := analytics.NewService(adRepo, adService)
	performanceService := performance.NewService(performanceRepo)

	sessionStore := chatting.NewSessionStore(
		time.Duration(cfg.Chat.SessionTTLMinutes)*time.Minute,
		cfg.Chat.MaxHistoryMessages,
	)
	llmClient := llm.NewClient(cfg)
	chatService := chatting.NewService(cfg, llmClient, sessionStore)

	sessionSweepService := scheduler.NewSessionSweepService(sessionStore, cfg)
	if err := sessionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	}

	server, err := api.New(
		cfg,
		adService,
		analyticsService,
		performanceService,
		chatService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com um dos projetos Postgres
func pgconn(ctx context.Context, dsn, name string) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dsn)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao conectar ao PostgreSQL (%s)", name)
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatalf("Erro ao testar conexão com PostgreSQL (%s)", name)
	}

	logrus.Infof("Conexão com PostgreSQL (%s) estabelecida com sucesso", name)
	return conn
}
