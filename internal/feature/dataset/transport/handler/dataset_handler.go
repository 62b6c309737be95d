// Package handler はdatasetフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard_backend/internal/api"
	"dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/feature/dataset/transport/http/dto"
)

// DatasetUsecase はフィルタ選択肢算出のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type DatasetUsecase interface {
	GetFilterOptions(ctx context.Context) (entity.FilterOptions, error)
}

// DatasetHandler はフィルタ選択肢のHTTPリクエストを処理します。
type DatasetHandler struct {
	uc DatasetUsecase
}

// NewDatasetHandler は指定されたusecaseでDatasetHandlerの新しいインスタンスを生成します。
func NewDatasetHandler(uc DatasetUsecase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// GetFilterOptionsHandler はフィルタの選択肢をJSONで返します。
//
// エンドポイント例:
// GET /api/filters
func (h *DatasetHandler) GetFilterOptionsHandler(c *gin.Context) {
	options, err := h.uc.GetFilterOptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := dto.FilterOptionsResponse{
		Countries: make([]string, 0, len(options.Countries)),
		Sectors:   make([]string, 0, len(options.Sectors)),
		MinYear:   options.MinYear,
		MaxYear:   options.MaxYear,
	}
	out.Countries = append(out.Countries, options.Countries...)
	out.Sectors = append(out.Sectors, options.Sectors...)

	c.JSON(http.StatusOK, out)
}
