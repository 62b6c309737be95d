package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"dashboard_backend/internal/app/di"
	"dashboard_backend/internal/app/router"
	companyhandler "dashboard_backend/internal/feature/company/transport/handler"
	companyusecase "dashboard_backend/internal/feature/company/usecase"
	datasethandler "dashboard_backend/internal/feature/dataset/transport/handler"
	datasetusecase "dashboard_backend/internal/feature/dataset/usecase"
	overviewhandler "dashboard_backend/internal/feature/overview/transport/handler"
	overviewusecase "dashboard_backend/internal/feature/overview/usecase"
	sectorhandler "dashboard_backend/internal/feature/sector/transport/handler"
	sectorusecase "dashboard_backend/internal/feature/sector/usecase"
	trendshandler "dashboard_backend/internal/feature/trends/transport/handler"
	trendsusecase "dashboard_backend/internal/feature/trends/usecase"
	"dashboard_backend/internal/platform/config"
	"dashboard_backend/internal/platform/metrics"
	platformredis "dashboard_backend/internal/platform/redis"
)

func main() {
	// .env（無ければ環境変数のみで動かす）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found. Using environment variables.")
	}

	// 設定
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// データセット読み込み（失敗した場合は起動しない）
	store, err := di.NewDatasetStore(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("dataset loaded", "records", store.Len(), "path", cfg.DatasetPath)

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisAddr() == "" {
		log.Println("[INFO] REDIS_HOST is not set. Running without cache.")
	} else if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository（Redisが使える場合はフィルタ結果をキャッシュ）
	repo := di.NewDatasetRepository(rdb, store, cfg.CacheTTL)

	// Usecase
	datasetUC := datasetusecase.NewDatasetUsecase(repo)
	overviewUC := overviewusecase.NewOverviewUsecase(repo)
	companyUC := companyusecase.NewCompanyUsecase(repo)
	sectorUC := sectorusecase.NewSectorUsecase(repo)
	trendsUC := trendsusecase.NewTrendsUsecase(repo)

	// Handler
	datasetH := datasethandler.NewDatasetHandler(datasetUC)
	overviewH := overviewhandler.NewOverviewHandler(overviewUC)
	companyH := companyhandler.NewCompanyHandler(companyUC)
	sectorH := sectorhandler.NewSectorHandler(sectorUC)
	trendsH := trendshandler.NewTrendsHandler(trendsUC)

	// メトリクス
	m := metrics.New()
	m.SetDatasetRecords(store.Len())

	// ルータ生成
	r := router.NewRouter(router.Options{
		Snapshot:    store,
		Metrics:     m,
		CORSOrigins: cfg.CORSOrigins,
		LogoPath:    cfg.LogoPath,
	}, datasetH, overviewH, companyH, sectorH, trendsH)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
