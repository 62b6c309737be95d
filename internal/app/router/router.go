package router

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	companyhandler "dashboard_backend/internal/feature/company/transport/handler"
	datasethandler "dashboard_backend/internal/feature/dataset/transport/handler"
	overviewhandler "dashboard_backend/internal/feature/overview/transport/handler"
	sectorhandler "dashboard_backend/internal/feature/sector/transport/handler"
	trendshandler "dashboard_backend/internal/feature/trends/transport/handler"
	httphandler "dashboard_backend/internal/platform/http/handler"
	"dashboard_backend/internal/platform/metrics"
)

// Options はルータ構築に必要なプラットフォーム側の設定をまとめたものです。
type Options struct {
	Snapshot    httphandler.SnapshotSizer
	Metrics     *metrics.Metrics
	CORSOrigins []string
	LogoPath    string
}

func NewRouter(opts Options, dataset *datasethandler.DatasetHandler, overview *overviewhandler.OverviewHandler,
	company *companyhandler.CompanyHandler, sector *sectorhandler.SectorHandler, trends *trendshandler.TrendsHandler) *gin.Engine {
	r := gin.Default()

	// CORS設定（フロントエンドが別オリジンで動くため）
	corsCfg := cors.DefaultConfig()
	if len(opts.CORSOrigins) == 1 && opts.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	// リクエスト数・レイテンシの計測
	r.Use(opts.Metrics.Middleware())

	// 導通確認用
	r.GET("/healthz", httphandler.Health(opts.Snapshot))
	r.HEAD("/healthz", httphandler.Health(opts.Snapshot))
	// Prometheusメトリクス
	r.GET("/metrics", metrics.Handler())

	// ダッシュボードAPI
	// r.Group("/api") でルートグループを作成
	api := r.Group("/api")
	{
		api.GET("/filters", dataset.GetFilterOptionsHandler)
		api.GET("/overview", overview.GetOverviewHandler)
		api.GET("/company", company.GetCompanyHandler)
		api.GET("/sector", sector.GetSectorHandler)
		api.GET("/trends", trends.GetTrendsHandler)
	}

	// ブランドロゴはファイルが存在する場合のみ配信する
	if opts.LogoPath != "" {
		if _, err := os.Stat(opts.LogoPath); err == nil {
			r.StaticFile("/assets/logo.png", opts.LogoPath)
		} else {
			slog.Warn("logo asset not found, /assets/logo.png disabled", "path", opts.LogoPath)
		}
	}

	return r
}
