// Package usecase はトレンドビュー（セクター別推移と相関行列）の集計ロジックを提供します。
package usecase

import (
	"context"
	"sort"

	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/feature/trends/domain/entity"
	"dashboard_backend/internal/shared/stats"
)

// DatasetRepository はフィルタ済みデータセットへのアクセスを定義します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DatasetRepository interface {
	Filtered(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error)
}

// trendsUsecase はトレンドビューのユースケース実装です。
type trendsUsecase struct {
	repo DatasetRepository
}

// NewTrendsUsecase は指定されたリポジトリでトレンドユースケースを生成します。
func NewTrendsUsecase(r DatasetRepository) *trendsUsecase {
	return &trendsUsecase{repo: r}
}

// GetTrends はフィルタ結果からセクター別の年次投資推移と数値列の相関行列を集計します。
func (u *trendsUsecase) GetTrends(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error) {
	records, err := u.repo.Filtered(ctx, filter)
	if err != nil {
		return entity.TrendsView{}, err
	}

	view := entity.TrendsView{
		SectorSeries: sectorSeries(records),
		Correlation:  correlation(records),
	}
	return view, nil
}

// sectorSeries は(セクター, 年)ごとに投資額を合計します。
// 結果はセクター名の昇順、同一セクター内は年の昇順に並びます。
func sectorSeries(records []datasetentity.Record) []entity.SectorYearInvestment {
	type sectorYear struct {
		sector string
		year   int
	}

	sums := make(map[sectorYear]float64)
	for _, r := range records {
		sums[sectorYear{sector: r.Sector, year: r.Year}] += r.Investment
	}

	keys := make([]sectorYear, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].sector != keys[j].sector {
			return keys[i].sector < keys[j].sector
		}
		return keys[i].year < keys[j].year
	})

	out := make([]entity.SectorYearInvestment, 0, len(keys))
	for _, k := range keys {
		out = append(out, entity.SectorYearInvestment{Sector: k.sector, Year: k.year, Investment: sums[k]})
	}
	return out
}

// correlation は数値列同士のピアソン相関行列を算出します。
// 分散がゼロの列が絡む要素はNaNのまま返します（JSONではnullになります）。
func correlation(records []datasetentity.Record) entity.CorrelationMatrix {
	columns := datasetentity.NumericColumns()
	series := make([][]float64, len(columns))
	for i := range series {
		series[i] = make([]float64, 0, len(records))
	}
	for _, r := range records {
		for i, column := range columns {
			v, ok := r.NumericValue(column)
			if !ok {
				continue
			}
			series[i] = append(series[i], v)
		}
	}

	m := stats.Correlations(columns, series)
	return entity.CorrelationMatrix{Columns: m.Columns, Values: m.Values}
}
