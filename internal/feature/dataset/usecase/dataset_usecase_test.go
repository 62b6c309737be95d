package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/feature/dataset/usecase"
)

// ErrStore はモックと期待値の間で共有されるセンチネルエラーです。
var ErrStore = errors.New("store error")

// mockDatasetRepository はDatasetRepositoryインターフェースのモック実装です。
type mockDatasetRepository struct {
	RecordsFunc  func(ctx context.Context) ([]entity.Record, error)
	RecordsCalls int
}

// Records はRecordsFuncが設定されていればそれを呼び出し、呼び出し回数を記録します。
func (m *mockDatasetRepository) Records(ctx context.Context) ([]entity.Record, error) {
	m.RecordsCalls++
	if m.RecordsFunc != nil {
		return m.RecordsFunc(ctx)
	}
	return nil, errors.New("RecordsFunc is not implemented")
}

// TestDatasetUsecase_GetFilterOptions はフィルタ選択肢の算出をテストします。
func TestDatasetUsecase_GetFilterOptions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name            string
		mockRecordsFunc func(ctx context.Context) ([]entity.Record, error)
		expectedOptions entity.FilterOptions
		expectedErr     error
	}{
		{
			name: "success: distinct values in first-appearance order, min/max years",
			mockRecordsFunc: func(ctx context.Context) ([]entity.Record, error) {
				return []entity.Record{
					{Country: "EUA", Sector: "Varejo", Year: 2019},
					{Country: "Brasil", Sector: "Finanças", Year: 2022},
					{Country: "EUA", Sector: "Tecnologia", Year: 2015},
					{Country: "Alemanha", Sector: "Finanças", Year: 2020},
				}, nil
			},
			expectedOptions: entity.FilterOptions{
				Countries: []string{"EUA", "Brasil", "Alemanha"},
				Sectors:   []string{"Varejo", "Finanças", "Tecnologia"},
				MinYear:   2015,
				MaxYear:   2022,
			},
			expectedErr: nil,
		},
		{
			name: "success: single record collapses the year range",
			mockRecordsFunc: func(ctx context.Context) ([]entity.Record, error) {
				return []entity.Record{
					{Country: "Japão", Sector: "Indústria", Year: 2021},
				}, nil
			},
			expectedOptions: entity.FilterOptions{
				Countries: []string{"Japão"},
				Sectors:   []string{"Indústria"},
				MinYear:   2021,
				MaxYear:   2021,
			},
			expectedErr: nil,
		},
		{
			name: "error: repository failure is propagated",
			mockRecordsFunc: func(ctx context.Context) ([]entity.Record, error) {
				return nil, ErrStore
			},
			expectedOptions: entity.FilterOptions{},
			expectedErr:     ErrStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &mockDatasetRepository{RecordsFunc: tc.mockRecordsFunc}
			du := usecase.NewDatasetUsecase(mockRepo)

			options, err := du.GetFilterOptions(ctx)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("GetFilterOptions() error = %v, want %v", err, tc.expectedErr)
			}
			if !reflect.DeepEqual(options, tc.expectedOptions) {
				t.Errorf("GetFilterOptions() = %+v, want %+v", options, tc.expectedOptions)
			}
			if mockRepo.RecordsCalls != 1 {
				t.Errorf("Records called %d times, want 1", mockRepo.RecordsCalls)
			}
		})
	}
}
