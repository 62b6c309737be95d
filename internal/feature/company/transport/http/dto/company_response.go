// Package dto defines the request/response payloads for the company endpoints.
package dto

import "dashboard_backend/internal/api"

// SeriesPointResponse is one year of the selected company's trajectory.
type SeriesPointResponse struct {
	Year         int     `json:"year"`
	Investment   float64 `json:"investment"`
	ProfitGrowth float64 `json:"profit_growth"`
}

// UseCaseCountResponse is one AI use case and how often the company reported it.
type UseCaseCountResponse struct {
	UseCase string `json:"use_case"`
	Count   int    `json:"count"`
}

// CompanyResponse is the payload for GET /api/company.
// Averages are null when the selected company has no rows in the filtered set.
type CompanyResponse struct {
	Companies       []string               `json:"companies"`
	Company         string                 `json:"company"`
	NoData          bool                   `json:"no_data"`
	AvgInvestment   api.NullableFloat      `json:"avg_investment"`
	AvgProfitGrowth api.NullableFloat      `json:"avg_profit_growth"`
	Series          []SeriesPointResponse  `json:"series"`
	UseCases        []UseCaseCountResponse `json:"use_cases"`
}
