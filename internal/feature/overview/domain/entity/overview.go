// Package entity defines the view models for the overview feature.
package entity

// YearInvestment is one point of the investment-by-year series.
type YearInvestment struct {
	Year       int
	Investment float64
}

// CompanyInvestment is one entry of the top-companies ranking.
type CompanyInvestment struct {
	Company    string
	Investment float64
}

// SectorShare is one slice of the investment-by-sector breakdown. The values
// are absolute investment sums, so they add up to TotalInvestment.
type SectorShare struct {
	Sector     string
	Investment float64
}

// OverviewView aggregates the filtered records for the dashboard's
// "Visão Geral" page: headline indicators plus the series behind its charts.
type OverviewView struct {
	TotalInvestment  float64
	Companies        int
	AvgProfitGrowth  float64             // NaN when the selection is empty
	InvestmentByYear []YearInvestment    // ascending by year
	TopCompanies     []CompanyInvestment // descending by investment, at most ten
	SectorShares     []SectorShare       // ascending by sector name
}
