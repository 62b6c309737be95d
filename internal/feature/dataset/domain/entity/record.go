// Package entity defines the domain models for the dataset feature.
package entity

// Column names of the source dataset file. The file is the published
// artifact of the original study, so the Portuguese headers are the
// canonical schema and are reported verbatim on the API (e.g. as the
// correlation matrix labels).
const (
	ColumnCompany      = "empresa"
	ColumnCountry      = "pais_sede"
	ColumnSector       = "setor"
	ColumnYear         = "ano"
	ColumnInvestment   = "investimento_ia_usd_milhoes"
	ColumnProfitGrowth = "crescimento_lucro_%"
	ColumnInnovation   = "nota_inovacao"
	ColumnUseCase      = "principais_usos_ia"
	ColumnImpact       = "impacto_operacional"
)

// Record represents one company-year observation of corporate AI adoption.
// The dataset is an ordered collection of records, immutable after load;
// all analysis is read-only projection and aggregation over it.
type Record struct {
	Company           string  // Company name (e.g. "Amazon")
	Country           string  // Headquarters country
	Sector            string  // Economic sector (e.g. "Finanças", "Varejo")
	Year              int     // Observation year
	Investment        float64 // AI investment in USD millions
	ProfitGrowth      float64 // Profit growth in percent
	InnovationScore   float64 // Innovation rating
	PrimaryUseCase    string  // Dominant AI use case (categorical)
	OperationalImpact string  // Operational impact level (Alto/Médio/Baixo)
}

// NumericColumns lists the dataset columns carrying numeric values, in
// schema order. This is the column set the trends correlation matrix is
// computed over.
func NumericColumns() []string {
	return []string{ColumnYear, ColumnInvestment, ColumnProfitGrowth, ColumnInnovation}
}

// NumericValue returns the record's value for a numeric dataset column.
// The second return is false for non-numeric or unknown columns.
func (r Record) NumericValue(column string) (float64, bool) {
	switch column {
	case ColumnYear:
		return float64(r.Year), true
	case ColumnInvestment:
		return r.Investment, true
	case ColumnProfitGrowth:
		return r.ProfitGrowth, true
	case ColumnInnovation:
		return r.InnovationScore, true
	}
	return 0, false
}
