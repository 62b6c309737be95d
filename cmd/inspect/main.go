package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"dashboard_backend/internal/app/di"
	datasetusecase "dashboard_backend/internal/feature/dataset/usecase"
	"dashboard_backend/internal/platform/config"
)

// デプロイ前のデータ確認用CLI。サーバーと同じローダーでデータセットを読み込み、
// 概要を標準出力に表示します。読み込みに失敗した場合は非ゼロで終了します。
func main() {
	// .env（無ければ環境変数のみで動かす）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found. Using environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	store, err := di.NewDatasetStore(ctx, cfg)
	if err != nil {
		log.Fatal("failed to load dataset: ", err)
	}

	uc := datasetusecase.NewDatasetUsecase(store)
	options, err := uc.GetFilterOptions(ctx)
	if err != nil {
		log.Fatal(err)
	}

	records, err := store.Records(ctx)
	if err != nil {
		log.Fatal(err)
	}
	var total float64
	for _, r := range records {
		total += r.Investment
	}

	fmt.Printf("dataset:    %s\n", cfg.DatasetPath)
	fmt.Printf("records:    %d\n", store.Len())
	fmt.Printf("years:      %d-%d\n", options.MinYear, options.MaxYear)
	fmt.Printf("countries:  %s\n", strings.Join(options.Countries, ", "))
	fmt.Printf("sectors:    %s\n", strings.Join(options.Sectors, ", "))
	fmt.Printf("investment: %.1f (USD millions)\n", total)
}
