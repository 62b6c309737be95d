// Package entity defines the aggregated view returned by the trends endpoint.
package entity

// SectorYearInvestment is one (sector, year) bucket of summed investment
// for the multi-line trend chart.
type SectorYearInvestment struct {
	Sector     string
	Year       int
	Investment float64
}

// CorrelationMatrix is the pairwise Pearson correlation of the numeric
// dataset columns. Values is square and symmetric, indexed like Columns;
// entries involving a zero-variance column are NaN, including the diagonal.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// TrendsView aggregates the filtered dataset for the "Tendências e Correlações" page.
type TrendsView struct {
	SectorSeries []SectorYearInvestment
	Correlation  CorrelationMatrix
}
