package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/lwa"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/amazonads"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/amazonads/adsclient"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/spapiclient"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/api"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/scheduler"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/account"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/snapshotting"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
	"github.com/vfg2006/seller-analytics-api/pkg/metrics"
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

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	accountDataRepo := repository.NewAccountDataRepository(pgConn)
	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	renderClient := config.NewRenderClient(cfg)

	tokenManager := lwa.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	spapiClient := spapiclient.NewClient(cfg, tokenManager)
	spapiIntegrator := spapi.New(cfg, spapiClient, tokenManager)

	adsClient := adsclient.NewClient(cfg, tokenManager)
	adsIntegrator := amazonads.New(cfg, adsClient)

	accountService := account.NewService(accountRepo, spapiIntegrator, renderClient, cfg)

	appMetrics := metrics.New()

	// Composição de dashboards e snapshots persistidos
	analyzer := analyzing.NewService(log.L)
	snapshotter := snapshotting.NewService(analyzer, accountRepo, accountDataRepo, snapshotRepo, appMetrics)

	// Inicializa os agendadores de sincronização
	accountDataSyncService := scheduler.NewAccountDataSyncService(
		accountRepo,
		accountDataRepo,
		spapiIntegrator,
		adsIntegrator,
		appMetrics,
		cfg,
	)

	dashboardRefreshService := scheduler.NewDashboardRefreshService(
		accountRepo,
		snapshotter,
		appMetrics,
		cfg,
	)

	// Inicia os agendadores em background
	if err := accountDataSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de payloads das contas")
	} else {
		logrus.Info("Agendador de sincronização de payloads das contas iniciado com sucesso")
	}

	if err := dashboardRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de refresh de dashboards")
	} else {
		logrus.Info("Agendador de refresh de dashboards iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		snapshotter,
		accountService,
		authenticator,
		accountDataSyncService,
		dashboardRefreshService,
		appMetrics,
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
