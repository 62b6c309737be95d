package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/feature/trends/domain/entity"
	"dashboard_backend/internal/feature/trends/transport/handler"
)

// mockTrendsUsecase はTrendsUsecaseインターフェースのモック実装です。
type mockTrendsUsecase struct {
	GetTrendsFunc func(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error)
}

func (m *mockTrendsUsecase) GetTrends(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error) {
	return m.GetTrendsFunc(ctx, filter)
}

// TestTrendsHandler_GetTrendsHandler はGetTrendsHandlerのHTTPリクエスト/レスポンス処理をテストします。
func TestTrendsHandler_GetTrendsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	nan := math.NaN()

	tests := []struct {
		name           string
		url            string
		mockGetTrends  func(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: filter parameters are bound and NaN correlations render as null",
			url:  "/api/trends?countries=Brasil&sectors=Finan%C3%A7as&sectors=Varejo&year_from=2020&year_to=2022",
			mockGetTrends: func(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error) {
				assert.Equal(t, []string{"Brasil"}, filter.Countries)
				assert.Equal(t, []string{"Finanças", "Varejo"}, filter.Sectors)
				assert.Equal(t, 2020, filter.YearFrom)
				assert.Equal(t, 2022, filter.YearTo)
				return entity.TrendsView{
					SectorSeries: []entity.SectorYearInvestment{
						{Sector: "Finanças", Year: 2020, Investment: 20},
						{Sector: "Finanças", Year: 2021, Investment: 40},
						{Sector: "Varejo", Year: 2021, Investment: 5},
					},
					Correlation: entity.CorrelationMatrix{
						Columns: []string{"ano", "investimento_ia_usd_milhoes"},
						Values: [][]float64{
							{1, 0.5},
							{0.5, nan},
						},
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"sector_series": [
					{"sector": "Finanças", "year": 2020, "investment": 20},
					{"sector": "Finanças", "year": 2021, "investment": 40},
					{"sector": "Varejo", "year": 2021, "investment": 5}
				],
				"correlation": {
					"columns": ["ano", "investimento_ia_usd_milhoes"],
					"values": [[1, 0.5], [0.5, null]]
				}
			}`,
		},
		{
			name: "success: empty selection renders empty series and all-null matrix",
			url:  "/api/trends",
			mockGetTrends: func(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error) {
				assert.Empty(t, filter.Countries)
				assert.Empty(t, filter.Sectors)
				return entity.TrendsView{
					Correlation: entity.CorrelationMatrix{
						Columns: []string{"ano", "investimento_ia_usd_milhoes"},
						Values: [][]float64{
							{nan, nan},
							{nan, nan},
						},
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"sector_series": [],
				"correlation": {
					"columns": ["ano", "investimento_ia_usd_milhoes"],
					"values": [[null, null], [null, null]]
				}
			}`,
		},
		{
			name: "error: usecase returns error",
			url:  "/api/trends?countries=Brasil",
			mockGetTrends: func(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error) {
				return entity.TrendsView{}, errors.New("cache backend unavailable")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"cache backend unavailable"}`,
		},
		{
			name: "error: non-numeric year is rejected",
			url:  "/api/trends?year_to=next",
			mockGetTrends: func(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error) {
				t.Error("usecase should not be called for invalid query")
				return entity.TrendsView{}, nil
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockTrendsUsecase{
				GetTrendsFunc: tt.mockGetTrends,
			}

			h := handler.NewTrendsHandler(mockUC)

			router := gin.New()
			router.GET("/api/trends", h.GetTrendsHandler)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, io.NopCloser(bytes.NewReader(nil)))

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
