// Package handler はtrendsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/api"
	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	datasetdto "dashboard_backend/internal/feature/dataset/transport/http/dto"
	"dashboard_backend/internal/feature/trends/domain/entity"
	"dashboard_backend/internal/feature/trends/transport/http/dto"
)

// TrendsUsecase はトレンドビュー集計のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TrendsUsecase interface {
	GetTrends(ctx context.Context, filter datasetentity.Filter) (entity.TrendsView, error)
}

// TrendsHandler はトレンドビューのHTTPリクエストを処理します。
type TrendsHandler struct {
	uc TrendsUsecase
}

// NewTrendsHandler は指定されたusecaseでTrendsHandlerの新しいインスタンスを生成します。
func NewTrendsHandler(uc TrendsUsecase) *TrendsHandler {
	return &TrendsHandler{uc: uc}
}

// GetTrendsHandler はフィルタ条件を受け取り、トレンドビューをJSONで返します。
//
// エンドポイント例:
// GET /api/trends?countries=Brasil&sectors=Finanças&year_from=2019&year_to=2022
func (h *TrendsHandler) GetTrendsHandler(c *gin.Context) {
	var q datasetdto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	filter := datasetentity.Filter{
		Countries: q.Countries,
		Sectors:   q.Sectors,
		YearFrom:  q.YearFrom,
		YearTo:    q.YearTo,
	}

	view, err := h.uc.GetTrends(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := dto.TrendsResponse{
		SectorSeries: make([]dto.SectorYearItem, 0, len(view.SectorSeries)),
		Correlation: dto.CorrelationMatrixResponse{
			Columns: make([]string, 0, len(view.Correlation.Columns)),
			Values:  make([][]api.NullableFloat, 0, len(view.Correlation.Values)),
		},
	}
	for _, p := range view.SectorSeries {
		out.SectorSeries = append(out.SectorSeries, dto.SectorYearItem{Sector: p.Sector, Year: p.Year, Investment: p.Investment})
	}
	out.Correlation.Columns = append(out.Correlation.Columns, view.Correlation.Columns...)
	for _, row := range view.Correlation.Values {
		vals := make([]api.NullableFloat, 0, len(row))
		for _, v := range row {
			vals = append(vals, api.NullableFloat(v))
		}
		out.Correlation.Values = append(out.Correlation.Values, vals)
	}

	c.JSON(http.StatusOK, out)
}
