// Package usecase は企業別ビューの集計ロジックを実装します。
package usecase

import (
	"context"
	"sort"

	"dashboard_backend/internal/feature/company/domain/entity"
	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/shared/stats"
)

// DatasetRepository はフィルタ済みレコードの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DatasetRepository interface {
	// Filtered はフィルタに一致するレコードをデータセット順で返します。
	Filtered(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error)
}

// companyUsecase は企業別ビューの集計ユースケースを定義します。
type companyUsecase struct {
	dataset DatasetRepository
}

// NewCompanyUsecase はcompanyUsecaseの新しいインスタンスを生成します。
func NewCompanyUsecase(dataset DatasetRepository) *companyUsecase {
	return &companyUsecase{dataset: dataset}
}

// GetCompany はフィルタ済みレコードを1社に絞り込んだビューを集計します。
// companyが空の場合は選択肢の先頭の企業を対象にします。対象企業のレコードが
// フィルタ結果に存在しない場合はNoDataを立て、系列を持たないビューを返します。
func (cu *companyUsecase) GetCompany(ctx context.Context, filter datasetentity.Filter, company string) (entity.CompanyView, error) {
	records, err := cu.dataset.Filtered(ctx, filter)
	if err != nil {
		return entity.CompanyView{}, err
	}

	view := entity.CompanyView{}

	seen := make(map[string]bool)
	for _, r := range records {
		if !seen[r.Company] {
			seen[r.Company] = true
			view.Companies = append(view.Companies, r.Company)
		}
	}

	// 未指定の場合は選択肢の先頭を対象にする
	if company == "" && len(view.Companies) > 0 {
		company = view.Companies[0]
	}
	view.Company = company

	var investments, growths []float64
	counts := make(map[string]int)
	var useCaseOrder []string
	for _, r := range records {
		if r.Company != company {
			continue
		}
		view.Series = append(view.Series, entity.SeriesPoint{
			Year:         r.Year,
			Investment:   r.Investment,
			ProfitGrowth: r.ProfitGrowth,
		})
		investments = append(investments, r.Investment)
		growths = append(growths, r.ProfitGrowth)
		if counts[r.PrimaryUseCase] == 0 {
			useCaseOrder = append(useCaseOrder, r.PrimaryUseCase)
		}
		counts[r.PrimaryUseCase]++
	}

	view.NoData = len(view.Series) == 0
	view.AvgInvestment = stats.Mean(investments)
	view.AvgProfitGrowth = stats.Mean(growths)
	view.UseCases = useCaseCounts(useCaseOrder, counts)
	return view, nil
}

// useCaseCounts は利用用途の頻度を件数降順（同数は出現順）で返します。
func useCaseCounts(order []string, counts map[string]int) []entity.UseCaseCount {
	out := make([]entity.UseCaseCount, 0, len(order))
	for _, uc := range order {
		out = append(out, entity.UseCaseCount{UseCase: uc, Count: counts[uc]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
