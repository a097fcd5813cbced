package teardown

import (
	"strings"

	"defaultvpc/internal/models"
)

// IsEligible reports whether a region with the given opt-in status should be
// processed. Status strings arrive with inconsistent casing across SDK
// versions, so this is the only place statuses are compared and it compares
// case-insensitively.
func IsEligible(status models.OptInStatus) bool {
	s := strings.TrimSpace(string(status))
	return strings.EqualFold(s, string(models.OptInNotRequired)) ||
		strings.EqualFold(s, string(models.OptedIn))
}

// EligibleRegions filters regions down to the eligible ones, dropping
// duplicate region codes. The first occurrence of a code wins.
func EligibleRegions(regions []models.Region) []models.Region {
	seen := make(map[string]struct{}, len(regions))
	eligible := make([]models.Region, 0, len(regions))

	for _, r := range regions {
		if r.Code == "" || !IsEligible(r.OptInStatus) {
			continue
		}
		if _, ok := seen[r.Code]; ok {
			continue
		}
		seen[r.Code] = struct{}{}
		eligible = append(eligible, r)
	}

	return eligible
}

// RegionCodes returns the codes of regions in order.
func RegionCodes(regions []models.Region) []string {
	codes := make([]string, len(regions))
	for i, r := range regions {
		codes[i] = r.Code
	}
	return codes
}
