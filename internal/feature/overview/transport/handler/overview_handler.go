// Package handler はoverviewフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/api"
	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	datasetdto "dashboard_backend/internal/feature/dataset/transport/http/dto"
	"dashboard_backend/internal/feature/overview/domain/entity"
	"dashboard_backend/internal/feature/overview/transport/http/dto"
)

// OverviewUsecase は概要ビュー集計のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type OverviewUsecase interface {
	GetOverview(ctx context.Context, filter datasetentity.Filter) (entity.OverviewView, error)
}

// OverviewHandler は概要ビューのHTTPリクエストを処理します。
type OverviewHandler struct {
	uc OverviewUsecase
}

// NewOverviewHandler は指定されたusecaseでOverviewHandlerの新しいインスタンスを生成します。
func NewOverviewHandler(uc OverviewUsecase) *OverviewHandler {
	return &OverviewHandler{uc: uc}
}

// GetOverviewHandler はフィルタ条件を受け取り、概要ビューをJSONで返します。
//
// エンドポイント例:
// GET /api/overview?countries=Brasil&countries=EUA&sectors=Finanças&year_from=2019&year_to=2022
func (h *OverviewHandler) GetOverviewHandler(c *gin.Context) {
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

	view, err := h.uc.GetOverview(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := dto.OverviewResponse{
		TotalInvestment:  view.TotalInvestment,
		Companies:        view.Companies,
		AvgProfitGrowth:  api.NullableFloat(view.AvgProfitGrowth),
		InvestmentByYear: make([]dto.YearInvestmentItem, 0, len(view.InvestmentByYear)),
		TopCompanies:     make([]dto.CompanyInvestmentItem, 0, len(view.TopCompanies)),
		SectorShares:     make([]dto.SectorShareItem, 0, len(view.SectorShares)),
	}
	for _, p := range view.InvestmentByYear {
		out.InvestmentByYear = append(out.InvestmentByYear, dto.YearInvestmentItem{Year: p.Year, Investment: p.Investment})
	}
	for _, p := range view.TopCompanies {
		out.TopCompanies = append(out.TopCompanies, dto.CompanyInvestmentItem{Company: p.Company, Investment: p.Investment})
	}
	for _, p := range view.SectorShares {
		out.SectorShares = append(out.SectorShares, dto.SectorShareItem{Sector: p.Sector, Investment: p.Investment})
	}

	c.JSON(http.StatusOK, out)
}
