package orchestrator

import (
	"sort"

	"defaultvpc/internal/models"
)

// Aggregate folds region outcomes into an InvocationResult. Failures are
// counted, never raised. Details are sorted by region code.
func Aggregate(outcomes []models.RegionOutcome) *models.InvocationResult {
	result := &models.InvocationResult{
		Processed: len(outcomes),
		Regions:   make([]models.RegionOutcome, len(outcomes)),
	}
	copy(result.Regions, outcomes)

	sort.SliceStable(result.Regions, func(i, j int) bool {
		return result.Regions[i].Region < result.Regions[j].Region
	})

	for _, o := range result.Regions {
		switch o.Status {
		case models.StatusDeleted:
			result.Deleted++
		case models.StatusDryRunSimulated:
			result.Simulated++
		case models.StatusNoDefaultVPC:
			result.Skipped++
		case models.StatusFailed:
			result.Failed++
		}
	}

	return result
}
