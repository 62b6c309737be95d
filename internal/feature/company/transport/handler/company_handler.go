// Package handler はcompanyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/api"
	"dashboard_backend/internal/feature/company/domain/entity"
	"dashboard_backend/internal/feature/company/transport/http/dto"
	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	datasetdto "dashboard_backend/internal/feature/dataset/transport/http/dto"
)

// CompanyUsecase は企業別ビュー集計のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CompanyUsecase interface {
	GetCompany(ctx context.Context, filter datasetentity.Filter, company string) (entity.CompanyView, error)
}

// CompanyHandler は企業別ビューのHTTPリクエストを処理します。
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler は指定されたusecaseでCompanyHandlerの新しいインスタンスを生成します。
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetCompanyHandler はフィルタ条件と企業名を受け取り、企業別ビューをJSONで返します。
// companyが未指定の場合はフィルタ結果の先頭の企業が選択されます。
//
// エンドポイント例:
// GET /api/company?company=Nubank&countries=Brasil&year_from=2019&year_to=2022
func (h *CompanyHandler) GetCompanyHandler(c *gin.Context) {
	var q datasetdto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	company := c.DefaultQuery("company", "")

	filter := datasetentity.Filter{
		Countries: q.Countries,
		Sectors:   q.Sectors,
		YearFrom:  q.YearFrom,
		YearTo:    q.YearTo,
	}

	view, err := h.uc.GetCompany(c.Request.Context(), filter, company)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := dto.CompanyResponse{
		Companies:       make([]string, 0, len(view.Companies)),
		Company:         view.Company,
		NoData:          view.NoData,
		AvgInvestment:   api.NullableFloat(view.AvgInvestment),
		AvgProfitGrowth: api.NullableFloat(view.AvgProfitGrowth),
		Series:          make([]dto.SeriesPointResponse, 0, len(view.Series)),
		UseCases:        make([]dto.UseCaseCountResponse, 0, len(view.UseCases)),
	}
	out.Companies = append(out.Companies, view.Companies...)
	for _, p := range view.Series {
		out.Series = append(out.Series, dto.SeriesPointResponse{Year: p.Year, Investment: p.Investment, ProfitGrowth: p.ProfitGrowth})
	}
	for _, u := range view.UseCases {
		out.UseCases = append(out.UseCases, dto.UseCaseCountResponse{UseCase: u.UseCase, Count: u.Count})
	}

	c.JSON(http.StatusOK, out)
}
