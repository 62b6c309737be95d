package usecase_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"dashboard_backend/internal/feature/company/domain/entity"
	"dashboard_backend/internal/feature/company/usecase"
	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
)

// ErrStore はモックと期待値の間で共有されるセンチネルエラーです。
var ErrStore = errors.New("store error")

// mockDatasetRepository はDatasetRepositoryインターフェースのモック実装です。
type mockDatasetRepository struct {
	FilteredFunc func(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error)
}

// Filtered はFilteredFuncが設定されていればそれを呼び出します。
func (m *mockDatasetRepository) Filtered(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error) {
	if m.FilteredFunc != nil {
		return m.FilteredFunc(ctx, filter)
	}
	return nil, errors.New("FilteredFunc is not implemented")
}

// fixedRecords はフィルタに関係なく固定のレコードを返すモック関数を返します。
func fixedRecords(records []datasetentity.Record) func(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error) {
	return func(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error) {
		return records, nil
	}
}

func brazilianBanks() []datasetentity.Record {
	return []datasetentity.Record{
		{Company: "Nubank", Country: "Brasil", Sector: "Finanças", Year: 2020, Investment: 10, ProfitGrowth: 20, PrimaryUseCase: "Chatbots"},
		{Company: "Itaú", Country: "Brasil", Sector: "Finanças", Year: 2020, Investment: 30, ProfitGrowth: 5, PrimaryUseCase: "Análise de crédito"},
		{Company: "Nubank", Country: "Brasil", Sector: "Finanças", Year: 2021, Investment: 20, ProfitGrowth: 30, PrimaryUseCase: "Chatbots"},
		{Company: "Nubank", Country: "Brasil", Sector: "Finanças", Year: 2022, Investment: 30, ProfitGrowth: 10, PrimaryUseCase: "Detecção de fraude"},
	}
}

// TestCompanyUsecase_GetCompany は1社への絞り込みと指標・系列の算出をテストします。
func TestCompanyUsecase_GetCompany(t *testing.T) {
	ctx := context.Background()
	mockRepo := &mockDatasetRepository{FilteredFunc: fixedRecords(brazilianBanks())}
	cu := usecase.NewCompanyUsecase(mockRepo)

	view, err := cu.GetCompany(ctx, datasetentity.Filter{}, "Nubank")
	if err != nil {
		t.Fatalf("GetCompany() error = %v", err)
	}

	if !reflect.DeepEqual(view.Companies, []string{"Nubank", "Itaú"}) {
		t.Errorf("Companies = %v, want appearance order [Nubank Itaú]", view.Companies)
	}
	if view.Company != "Nubank" {
		t.Errorf("Company = %q, want Nubank", view.Company)
	}
	if view.NoData {
		t.Error("NoData = true, want false")
	}
	if view.AvgInvestment != 20 {
		t.Errorf("AvgInvestment = %v, want 20", view.AvgInvestment)
	}
	if view.AvgProfitGrowth != 20 {
		t.Errorf("AvgProfitGrowth = %v, want 20", view.AvgProfitGrowth)
	}

	expectedSeries := []entity.SeriesPoint{
		{Year: 2020, Investment: 10, ProfitGrowth: 20},
		{Year: 2021, Investment: 20, ProfitGrowth: 30},
		{Year: 2022, Investment: 30, ProfitGrowth: 10},
	}
	if !reflect.DeepEqual(view.Series, expectedSeries) {
		t.Errorf("Series = %v, want %v", view.Series, expectedSeries)
	}

	expectedUseCases := []entity.UseCaseCount{
		{UseCase: "Chatbots", Count: 2},
		{UseCase: "Detecção de fraude", Count: 1},
	}
	if !reflect.DeepEqual(view.UseCases, expectedUseCases) {
		t.Errorf("UseCases = %v, want %v", view.UseCases, expectedUseCases)
	}
}

// TestCompanyUsecase_GetCompany_DefaultsToFirstOption は企業未指定の場合に
// 選択肢の先頭が対象になることをテストします。
func TestCompanyUsecase_GetCompany_DefaultsToFirstOption(t *testing.T) {
	ctx := context.Background()
	mockRepo := &mockDatasetRepository{FilteredFunc: fixedRecords(brazilianBanks())}
	cu := usecase.NewCompanyUsecase(mockRepo)

	view, err := cu.GetCompany(ctx, datasetentity.Filter{}, "")
	if err != nil {
		t.Fatalf("GetCompany() error = %v", err)
	}

	if view.Company != "Nubank" {
		t.Errorf("Company = %q, want first option Nubank", view.Company)
	}
	if view.NoData {
		t.Error("NoData = true, want false")
	}
}

// TestCompanyUsecase_GetCompany_NoData はフィルタ結果に対象企業が存在しない場合の
// ビューをテストします。
func TestCompanyUsecase_GetCompany_NoData(t *testing.T) {
	ctx := context.Background()
	mockRepo := &mockDatasetRepository{FilteredFunc: fixedRecords(brazilianBanks())}
	cu := usecase.NewCompanyUsecase(mockRepo)

	view, err := cu.GetCompany(ctx, datasetentity.Filter{}, "Amazon")
	if err != nil {
		t.Fatalf("GetCompany() error = %v", err)
	}

	if !view.NoData {
		t.Error("NoData = false, want true")
	}
	if view.Company != "Amazon" {
		t.Errorf("Company = %q, want Amazon", view.Company)
	}
	if !reflect.DeepEqual(view.Companies, []string{"Nubank", "Itaú"}) {
		t.Errorf("Companies = %v, want the filtered options", view.Companies)
	}
	if !math.IsNaN(view.AvgInvestment) || !math.IsNaN(view.AvgProfitGrowth) {
		t.Errorf("averages = %v/%v, want NaN/NaN", view.AvgInvestment, view.AvgProfitGrowth)
	}
	if len(view.Series) != 0 || len(view.UseCases) != 0 {
		t.Errorf("expected no series for NoData view, got %+v", view)
	}
}

// TestCompanyUsecase_GetCompany_EmptyFilterResult はフィルタ結果自体が空の場合の
// ビューをテストします。
func TestCompanyUsecase_GetCompany_EmptyFilterResult(t *testing.T) {
	ctx := context.Background()
	mockRepo := &mockDatasetRepository{FilteredFunc: fixedRecords(nil)}
	cu := usecase.NewCompanyUsecase(mockRepo)

	view, err := cu.GetCompany(ctx, datasetentity.Filter{}, "")
	if err != nil {
		t.Fatalf("GetCompany() error = %v", err)
	}

	if !view.NoData {
		t.Error("NoData = false, want true")
	}
	if view.Company != "" {
		t.Errorf("Company = %q, want empty", view.Company)
	}
	if len(view.Companies) != 0 {
		t.Errorf("Companies = %v, want empty", view.Companies)
	}
}

// TestCompanyUsecase_GetCompany_UseCaseTies は利用用途の同数時に出現順が保たれることをテストします。
func TestCompanyUsecase_GetCompany_UseCaseTies(t *testing.T) {
	ctx := context.Background()
	records := []datasetentity.Record{
		{Company: "Magalu", Country: "Brasil", Sector: "Varejo", Year: 2020, PrimaryUseCase: "Logística"},
		{Company: "Magalu", Country: "Brasil", Sector: "Varejo", Year: 2021, PrimaryUseCase: "Atendimento"},
		{Company: "Magalu", Country: "Brasil", Sector: "Varejo", Year: 2022, PrimaryUseCase: "Atendimento"},
		{Company: "Magalu", Country: "Brasil", Sector: "Varejo", Year: 2023, PrimaryUseCase: "Precificação"},
	}
	mockRepo := &mockDatasetRepository{FilteredFunc: fixedRecords(records)}
	cu := usecase.NewCompanyUsecase(mockRepo)

	view, err := cu.GetCompany(ctx, datasetentity.Filter{}, "Magalu")
	if err != nil {
		t.Fatalf("GetCompany() error = %v", err)
	}

	expected := []entity.UseCaseCount{
		{UseCase: "Atendimento", Count: 2},
		{UseCase: "Logística", Count: 1},
		{UseCase: "Precificação", Count: 1},
	}
	if !reflect.DeepEqual(view.UseCases, expected) {
		t.Errorf("UseCases = %v, want %v", view.UseCases, expected)
	}
}

// TestCompanyUsecase_GetCompany_RepositoryError はリポジトリのエラーが伝播することをテストします。
func TestCompanyUsecase_GetCompany_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockRepo := &mockDatasetRepository{
		FilteredFunc: func(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error) {
			return nil, ErrStore
		},
	}
	cu := usecase.NewCompanyUsecase(mockRepo)

	_, err := cu.GetCompany(ctx, datasetentity.Filter{}, "Nubank")

	if !errors.Is(err, ErrStore) {
		t.Errorf("GetCompany() error = %v, want %v", err, ErrStore)
	}
}
