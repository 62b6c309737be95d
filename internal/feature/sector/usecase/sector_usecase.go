// Package usecase implements the business logic for the sector analysis view.
package usecase

import (
	"context"
	"sort"

	datasetentity "dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/feature/sector/domain/entity"
	"dashboard_backend/internal/shared/stats"
)

// DatasetRepository abstracts access to the filtered dataset.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type DatasetRepository interface {
	Filtered(ctx context.Context, filter datasetentity.Filter) ([]datasetentity.Record, error)
}

// SectorUsecase provides business logic for sector-level aggregation.
type SectorUsecase struct {
	repo DatasetRepository
}

// NewSectorUsecase creates a new SectorUsecase with the given repository.
func NewSectorUsecase(r DatasetRepository) *SectorUsecase {
	return &SectorUsecase{repo: r}
}

// GetSector aggregates the filtered dataset for one sector. An empty sector
// name selects the first sector of the filtered set, matching the select-box
// default of the dashboard.
func (u *SectorUsecase) GetSector(ctx context.Context, filter datasetentity.Filter, sector string) (entity.SectorView, error) {
	records, err := u.repo.Filtered(ctx, filter)
	if err != nil {
		return entity.SectorView{}, err
	}

	view := entity.SectorView{
		Sectors: make([]string, 0),
		Scatter: make([]entity.ScatterPoint, 0),
		Impacts: make([]entity.ImpactCount, 0),
	}

	seen := make(map[string]bool)
	for _, r := range records {
		if !seen[r.Sector] {
			seen[r.Sector] = true
			view.Sectors = append(view.Sectors, r.Sector)
		}
	}
	if sector == "" && len(view.Sectors) > 0 {
		sector = view.Sectors[0]
	}
	view.Sector = sector

	companies := make(map[string]bool)
	innovations := make([]float64, 0)
	impactCounts := make(map[string]int)
	impactOrder := make([]string, 0)
	for _, r := range records {
		if r.Sector != sector {
			continue
		}
		view.TotalInvestment += r.Investment
		companies[r.Company] = true
		innovations = append(innovations, r.InnovationScore)
		view.Scatter = append(view.Scatter, entity.ScatterPoint{
			Company:         r.Company,
			Investment:      r.Investment,
			ProfitGrowth:    r.ProfitGrowth,
			InnovationScore: r.InnovationScore,
		})
		if _, ok := impactCounts[r.OperationalImpact]; !ok {
			impactOrder = append(impactOrder, r.OperationalImpact)
		}
		impactCounts[r.OperationalImpact]++
	}

	view.NoData = len(view.Scatter) == 0
	view.Companies = len(companies)
	view.AvgInnovation = stats.Mean(innovations)
	view.Impacts = sortedImpacts(impactOrder, impactCounts)

	return view, nil
}

// sortedImpacts orders impact frequencies by descending count. The stable
// sort keeps ties in first-appearance order.
func sortedImpacts(order []string, counts map[string]int) []entity.ImpactCount {
	out := make([]entity.ImpactCount, 0, len(order))
	for _, impact := range order {
		out = append(out, entity.ImpactCount{Impact: impact, Count: counts[impact]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
