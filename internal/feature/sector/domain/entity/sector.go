// Package entity defines the aggregated view returned by the sector endpoint.
package entity

// ScatterPoint is one dataset row of the selected sector, plotted as
// investment vs. profit growth with the innovation score as point size.
type ScatterPoint struct {
	Company         string
	Investment      float64
	ProfitGrowth    float64
	InnovationScore float64
}

// ImpactCount is one reported operational impact and its frequency
// within the selected sector.
type ImpactCount struct {
	Impact string
	Count  int
}

// SectorView aggregates the filtered dataset for one sector.
// Sectors carries the select-box options; Sector is the resolved selection.
type SectorView struct {
	Sectors         []string
	Sector          string
	NoData          bool
	TotalInvestment float64
	Companies       int
	AvgInnovation   float64
	Scatter         []ScatterPoint
	Impacts         []ImpactCount
}
