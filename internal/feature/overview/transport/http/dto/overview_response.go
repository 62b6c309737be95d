// Package dto defines data transfer objects for the overview HTTP API.
package dto

import "dashboard_backend/internal/api"

// YearInvestmentItem is one point of the investment-by-year series.
type YearInvestmentItem struct {
	Year       int     `json:"year"`
	Investment float64 `json:"investment"`
}

// CompanyInvestmentItem is one entry of the top-companies ranking.
type CompanyInvestmentItem struct {
	Company    string  `json:"company"`
	Investment float64 `json:"investment"`
}

// SectorShareItem is one slice of the investment-by-sector breakdown.
type SectorShareItem struct {
	Sector     string  `json:"sector"`
	Investment float64 `json:"investment"`
}

// OverviewResponse represents the overview endpoint's response body.
// avg_profit_growth is null when the selection holds no records.
type OverviewResponse struct {
	TotalInvestment  float64                 `json:"total_investment"`
	Companies        int                     `json:"companies"`
	AvgProfitGrowth  api.NullableFloat       `json:"avg_profit_growth"`
	InvestmentByYear []YearInvestmentItem    `json:"investment_by_year"`
	TopCompanies     []CompanyInvestmentItem `json:"top_companies"`
	SectorShares     []SectorShareItem       `json:"sector_shares"`
}
