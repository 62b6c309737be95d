// Package usecase は概要ビューの集計ロジックを実装します。
package usecase

import (
	"context"
	"sort"

	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/feature/overview/domain/entity"
	"dashboard_backend/internal/shared/stats"
)

// TopCompaniesLimit は投資額上位として返す企業数の上限です。
const TopCompaniesLimit = 10

// DatasetRepository はフィルタ済みレコードの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DatasetRepository interface {
	// Filtered はフィルタに一致するレコードをデータセット順で返します。
	Filtered(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error)
}

// overviewUsecase は概要ビューの集計ユースケースを定義します。
type overviewUsecase struct {
	dataset DatasetRepository
}

// NewOverviewUsecase はoverviewUsecaseの新しいインスタンスを生成します。
func NewOverviewUsecase(dataset DatasetRepository) *overviewUsecase {
	return &overviewUsecase{dataset: dataset}
}

// GetOverview はフィルタ済みレコードから概要ビューを集計します。
// 空の選択はエラーではなく、合計0・企業数0・平均NaNのビューになります。
func (ou *overviewUsecase) GetOverview(ctx context.Context, filter datasetentity.Filter) (entity.OverviewView, error) {
	records, err := ou.dataset.Filtered(ctx, filter)
	if err != nil {
		return entity.OverviewView{}, err
	}

	view := entity.OverviewView{}

	companies := make(map[string]bool)
	growths := make([]float64, 0, len(records))
	byYear := make(map[int]float64)
	byCompany := make(map[string]float64)
	bySector := make(map[string]float64)
	for _, r := range records {
		view.TotalInvestment += r.Investment
		companies[r.Company] = true
		growths = append(growths, r.ProfitGrowth)
		byYear[r.Year] += r.Investment
		byCompany[r.Company] += r.Investment
		bySector[r.Sector] += r.Investment
	}

	view.Companies = len(companies)
	view.AvgProfitGrowth = stats.Mean(growths)
	view.InvestmentByYear = yearSeries(byYear)
	view.TopCompanies = topCompanies(byCompany)
	view.SectorShares = sectorShares(bySector)
	return view, nil
}

// yearSeries は年別合計を年昇順の系列に変換します。
func yearSeries(byYear map[int]float64) []entity.YearInvestment {
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]entity.YearInvestment, 0, len(years))
	for _, y := range years {
		out = append(out, entity.YearInvestment{Year: y, Investment: byYear[y]})
	}
	return out
}

// topCompanies は企業別合計の上位TopCompaniesLimit件を投資額降順で返します。
// 同額の場合は企業名昇順という安定した順序で解決します。
func topCompanies(byCompany map[string]float64) []entity.CompanyInvestment {
	out := make([]entity.CompanyInvestment, 0, len(byCompany))
	for name, investment := range byCompany {
		out = append(out, entity.CompanyInvestment{Company: name, Investment: investment})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Company < out[j].Company })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Investment > out[j].Investment })

	if len(out) > TopCompaniesLimit {
		out = out[:TopCompaniesLimit]
	}
	return out
}

// sectorShares はセクター別合計をセクター名昇順で返します。
func sectorShares(bySector map[string]float64) []entity.SectorShare {
	sectors := make([]string, 0, len(bySector))
	for s := range bySector {
		sectors = append(sectors, s)
	}
	sort.Strings(sectors)

	out := make([]entity.SectorShare, 0, len(sectors))
	for _, s := range sectors {
		out = append(out, entity.SectorShare{Sector: s, Investment: bySector[s]})
	}
	return out
}
