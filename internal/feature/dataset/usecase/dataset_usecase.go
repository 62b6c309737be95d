// Package usecase はフィルタ選択肢の算出ロジックを実装します。
package usecase

import (
	"context"

	"dashboard_backend/internal/feature/dataset/domain/entity"
)

// DatasetRepository はデータセット全件の読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DatasetRepository interface {
	// Records はデータセットの全レコードを出現順で返します。
	Records(ctx context.Context) ([]entity.Record, error)
}

// datasetUsecase はフィルタ選択肢の算出ユースケースを定義します。
type datasetUsecase struct {
	dataset DatasetRepository
}

// NewDatasetUsecase はdatasetUsecaseの新しいインスタンスを生成します。
func NewDatasetUsecase(dataset DatasetRepository) *datasetUsecase {
	return &datasetUsecase{dataset: dataset}
}

// GetFilterOptions はサイドバーの各コントロールに提示する選択肢を返します。
// 国とセクターはデータセット上の出現順で重複を除いたリスト、
// 年はデータセット全体の最小値と最大値です。
func (du *datasetUsecase) GetFilterOptions(ctx context.Context) (entity.FilterOptions, error) {
	records, err := du.dataset.Records(ctx)
	if err != nil {
		return entity.FilterOptions{}, err
	}

	options := entity.FilterOptions{}
	seenCountries := make(map[string]bool)
	seenSectors := make(map[string]bool)
	for i, r := range records {
		if !seenCountries[r.Country] {
			seenCountries[r.Country] = true
			options.Countries = append(options.Countries, r.Country)
		}
		if !seenSectors[r.Sector] {
			seenSectors[r.Sector] = true
			options.Sectors = append(options.Sectors, r.Sector)
		}
		if i == 0 || r.Year < options.MinYear {
			options.MinYear = r.Year
		}
		if i == 0 || r.Year > options.MaxYear {
			options.MaxYear = r.Year
		}
	}
	return options, nil
}
