package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/value-protractor-api/infrastructure/database/postgres"
	"github.com/vfg2006/value-protractor-api/infrastructure/integrator/meta"
	"github.com/vfg2006/value-protractor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository/memcache"
	"github.com/vfg2006/value-protractor-api/internal/api"
	"github.com/vfg2006/value-protractor-api/internal/config"
	"github.com/vfg2006/value-protractor-api/internal/scheduler"
	"github.com/vfg2006/value-protractor-api/internal/usecases/aggregating"
	"github.com/vfg2006/value-protractor-api/internal/usecases/benchmarking"
	"github.com/vfg2006/value-protractor-api/internal/usecases/diagnosing"
	"github.com/vfg2006/value-protractor-api/internal/usecases/overlapping"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricRowRepo := repository.NewMetricRowRepository(pgConn)
	benchmarkRepo := repository.NewBenchmarkRepository(pgConn)

	var overlapCacheRepo repository.OverlapCacheRepository
	if cfg.Overlap.MemoryCache {
		logrus.Info("overlap cache: using in-memory store")
		overlapCacheRepo = memcache.NewOverlapCache(time.Duration(cfg.Overlap.CacheTTLHours) * time.Hour)
	} else {
		overlapCacheRepo = repository.NewOverlapCacheRepository(pgConn)
	}

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	aggregatingService := aggregating.NewService(metricRowRepo)
	benchmarkingService := benchmarking.NewService(benchmarkRepo)
	diagnosingService := diagnosing.NewService(cfg, metricRowRepo, benchmarkingService)
	overlappingService := overlapping.NewService(cfg, metaIntegrator, overlapCacheRepo)

	retentionService := scheduler.NewRetentionService(
		cfg,
		metricRowRepo,
		benchmarkRepo,
		overlapCacheRepo,
	)

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start retention scheduler")
	}

	server, err := api.New(
		cfg,
		aggregatingService,
		diagnosingService,
		overlappingService,
		retentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
