package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/internal/api"
	"github.com/vfg2006/cafe-analytics-api/internal/config"
	"github.com/vfg2006/cafe-analytics-api/internal/scheduler"
	"github.com/vfg2006/cafe-analytics-api/internal/usecases/recommending"
	"github.com/vfg2006/cafe-analytics-api/internal/usecases/segmenting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	transactionRepo := repository.NewTransactionRepository(pgConn)
	daytimeRepo := repository.NewDaytimeRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	menuItemRepo := repository.NewMenuItemRepository(pgConn)
	segmentRepo := repository.NewRfmSegmentRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)

	segmentingService := segmenting.NewService(transactionRepo, segmentRepo, cfg)
	recommendingService := recommending.NewService(transactionRepo, daytimeRepo, recommendationRepo, cfg)

	// Inicializa os agendadores dos pipelines em lote
	rfmSyncService := scheduler.NewRfmSegmentationSyncService(segmentingService, cfg)
	recommendationsSyncService := scheduler.NewMenuRecommendationsSyncService(recommendingService, cfg)

	// Inicia os agendadores em background
	if err := rfmSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de segmentação RFM")
	} else {
		logrus.Info("Agendador de segmentação RFM iniciado com sucesso")
	}

	if err := recommendationsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recomendações de cardápio")
	} else {
		logrus.Info("Agendador de recomendações de cardápio iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		transactionRepo,
		daytimeRepo,
		userRepo,
		menuItemRepo,
		segmentRepo,
		recommendationRepo,
		rfmSyncService,             // Serviço de sincronização de segmentos RFM
		recommendationsSyncService, // Serviço de sincronização de recomendações
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
