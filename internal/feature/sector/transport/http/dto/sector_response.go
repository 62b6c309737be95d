// Package dto defines the request/response payloads for the sector endpoints.
package dto

import "dashboard_backend/internal/api"

// ScatterPointResponse is one record of the selected sector for the
// investment vs. profit growth scatter chart.
type ScatterPointResponse struct {
	Company         string  `json:"company"`
	Investment      float64 `json:"investment"`
	ProfitGrowth    float64 `json:"profit_growth"`
	InnovationScore float64 `json:"innovation_score"`
}

// ImpactCountResponse is one operational impact level and its frequency.
type ImpactCountResponse struct {
	Impact string `json:"impact"`
	Count  int    `json:"count"`
}

// SectorResponse is the payload for GET /api/sector.
// AvgInnovation is null when the selected sector has no rows in the filtered set.
type SectorResponse struct {
	Sectors         []string               `json:"sectors"`
	Sector          string                 `json:"sector"`
	NoData          bool                   `json:"no_data"`
	TotalInvestment float64                `json:"total_investment"`
	Companies       int                    `json:"companies"`
	AvgInnovation   api.NullableFloat      `json:"avg_innovation"`
	Scatter         []ScatterPointResponse `json:"scatter"`
	Impacts         []ImpactCountResponse  `json:"impacts"`
}
