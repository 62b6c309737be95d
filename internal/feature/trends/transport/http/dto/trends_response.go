// Package dto defines the request/response payloads for the trends endpoints.
package dto

import "dashboard_backend/internal/api"

// SectorYearItem is one (sector, year) bucket of summed investment.
type SectorYearItem struct {
	Sector     string  `json:"sector"`
	Year       int     `json:"year"`
	Investment float64 `json:"investment"`
}

// CorrelationMatrixResponse carries the Pearson correlation of the numeric
// columns. Values is square and indexed like Columns; entries involving a
// zero-variance column are null.
type CorrelationMatrixResponse struct {
	Columns []string              `json:"columns"`
	Values  [][]api.NullableFloat `json:"values"`
}

// TrendsResponse is the payload for GET /api/trends.
type TrendsResponse struct {
	SectorSeries []SectorYearItem          `json:"sector_series"`
	Correlation  CorrelationMatrixResponse `json:"correlation"`
}
