// Package entity defines the view models for the company feature.
package entity

// SeriesPoint is one company-year observation, carrying both measures of the
// dual-axis chart (investment bars, profit growth line).
type SeriesPoint struct {
	Year         int
	Investment   float64
	ProfitGrowth float64
}

// UseCaseCount is the frequency of one AI use-case category.
type UseCaseCount struct {
	UseCase string
	Count   int
}

// CompanyView narrows the filtered records to a single company for the
// "Análise por Empresa" page.
//
// Companies always lists the selectable options found in the filtered set,
// so the client can keep its select control in sync with the filter. NoData
// reports that the analyzed company has no records under the current filter;
// the view then carries no series and NaN averages.
type CompanyView struct {
	Companies       []string // distinct companies in the filtered set, appearance order
	Company         string   // the company analyzed
	NoData          bool
	AvgInvestment   float64
	AvgProfitGrowth float64
	Series          []SeriesPoint  // per-record, dataset order
	UseCases        []UseCaseCount // by count descending, ties in appearance order
}
