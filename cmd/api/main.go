package main

import (
	"context"

	"github.com/vfg2006/sales-analyzer-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sales-analyzer-api/internal/api"
	"github.com/vfg2006/sales-analyzer-api/internal/api/handler"
	"github.com/vfg2006/sales-analyzer-api/internal/config"
	"github.com/vfg2006/sales-analyzer-api/internal/scheduler"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/importing"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	analyzerOpts, err := analyzing.OptionsFromConfig(cfg.Analytics)
	if err != nil {
		log.L.WithError(err).Fatal("Configuração de analytics inválida")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewInsightSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	analyzer := analyzing.NewService(saleRepo, analyzerOpts)
	importer := importing.NewService(saleRepo)
	exporter := exporting.NewExporter(cfg.Export.SheetName)

	snapshotSyncService, err := scheduler.NewInsightSnapshotSyncService(userRepo, snapshotRepo, analyzer, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Configuração do agendador de snapshots inválida")
	}

	if err := snapshotSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de snapshots de insight")
	}

	server, err := api.New(cfg, api.Services{
		Analyzer:         analyzer,
		Authenticator:    authenticator,
		Importer:         importer,
		Exporter:         exporter,
		InsightSnapshots: snapshotRepo,
		CronJobs: handler.CronJobServices{
			InsightSnapshotSync: snapshotSyncService,
		},
		Location: analyzerOpts.Location,
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Servidor finalizado com erro")
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
