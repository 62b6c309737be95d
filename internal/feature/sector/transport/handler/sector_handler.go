package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/api"
	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	datasetdto "dashboard_backend/internal/feature/dataset/transport/http/dto"
	"dashboard_backend/internal/feature/sector/domain/entity"
	"dashboard_backend/internal/feature/sector/transport/http/dto"
)

// SectorUsecase はセクター別ビュー集計のユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SectorUsecase interface {
	GetSector(ctx context.Context, filter datasetentity.Filter, sector string) (entity.SectorView, error)
}

// SectorHandler はセクター別ビューに関するHTTPリクエストを処理します。
type SectorHandler struct {
	uc SectorUsecase
}

// NewSectorHandler は新しい SectorHandler を作成します。
func NewSectorHandler(uc SectorUsecase) *SectorHandler {
	return &SectorHandler{uc: uc}
}

// GetSectorHandler はフィルタ条件とセクター名を受け取り、セクター別ビューをJSONで返します。
// sectorが未指定の場合はフィルタ結果の先頭のセクターが選択されます。
//
// エンドポイント例:
// GET /api/sector?sector=Finanças&countries=Brasil&year_from=2019&year_to=2022
func (h *SectorHandler) GetSectorHandler(c *gin.Context) {
	var q datasetdto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	sector := c.DefaultQuery("sector", "")

	filter := datasetentity.Filter{
		Countries: q.Countries,
		Sectors:   q.Sectors,
		YearFrom:  q.YearFrom,
		YearTo:    q.YearTo,
	}

	view, err := h.uc.GetSector(c.Request.Context(), filter, sector)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := dto.SectorResponse{
		Sectors:         make([]string, 0, len(view.Sectors)),
		Sector:          view.Sector,
		NoData:          view.NoData,
		TotalInvestment: view.TotalInvestment,
		Companies:       view.Companies,
		AvgInnovation:   api.NullableFloat(view.AvgInnovation),
		Scatter:         make([]dto.ScatterPointResponse, 0, len(view.Scatter)),
		Impacts:         make([]dto.ImpactCountResponse, 0, len(view.Impacts)),
	}
	out.Sectors = append(out.Sectors, view.Sectors...)
	for _, p := range view.Scatter {
		out.Scatter = append(out.Scatter, dto.ScatterPointResponse{
			Company:         p.Company,
			Investment:      p.Investment,
			ProfitGrowth:    p.ProfitGrowth,
			InnovationScore: p.InnovationScore,
		})
	}
	for _, i := range view.Impacts {
		out.Impacts = append(out.Impacts, dto.ImpactCountResponse{Impact: i.Impact, Count: i.Count})
	}

	c.JSON(http.StatusOK, out)
}
