package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyra-app/zyra-api/infrastructure/database/postgres"
	"github.com/zyra-app/zyra-api/infrastructure/integrator/shopify"
	"github.com/zyra-app/zyra-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/zyra-app/zyra-api/infrastructure/repository"
	"github.com/zyra-app/zyra-api/internal/api"
	"github.com/zyra-app/zyra-api/internal/config"
	"github.com/zyra-app/zyra-api/internal/scheduler"
	"github.com/zyra-app/zyra-api/internal/usecases/analytics"
	"github.com/zyra-app/zyra-api/internal/usecases/catalog"
	"github.com/zyra-app/zyra-api/internal/usecases/notifying"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting"
	"github.com/zyra-app/zyra-api/internal/usecases/suggesting"
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

	productRepo := repository.NewProductRepository(pgConn)
	snapshotRepo := repository.NewMetricSnapshotRepository(pgConn)
	notificationRepo := repository.NewNotificationRepository(pgConn)

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	catalogService := catalog.NewService(productRepo, shopifyIntegrator)
	analyticsService := analytics.NewService(snapshotRepo, productRepo)
	suggestionService := suggesting.NewService()
	notificationService := notifying.NewService(notificationRepo)

	reportService := reporting.NewService(
		analyticsService,    // Implementa MetricSource e CampaignSource
		catalogService,      // Implementa ProductSource
		analyticsService,
		notificationService, // Implementa NotificationRecorder
	)

	// Inicializa o agendador de exportação de relatórios
	reportExportService := scheduler.NewReportExportService(reportService, cfg)

	if err := reportExportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação de relatórios")
	} else {
		logrus.Info("Agendador de exportação de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		catalogService,
		analyticsService,
		reportService,
		suggestionService,
		notificationService,
		reportExportService,
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
