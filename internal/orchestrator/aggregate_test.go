package orchestrator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"defaultvpc/internal/models"
)

func TestAggregate(t *testing.T) {
	outcomes := []models.RegionOutcome{
		{Region: "us-west-2", Status: models.StatusNoDefaultVPC},
		{Region: "eu-west-1", Status: models.StatusFailed, Err: errors.New("boom")},
		{Region: "us-east-1", Status: models.StatusDeleted, DeletedResourceIDs: []string{"vpc-1"}},
		{Region: "ap-east-1", Status: models.StatusDryRunSimulated},
	}

	result := Aggregate(outcomes)

	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 1, result.Simulated)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Failed)

	var order []string
	for _, r := range result.Regions {
		order = append(order, r.Region)
	}
	assert.Equal(t, []string{"ap-east-1", "eu-west-1", "us-east-1", "us-west-2"}, order)
	assert.Equal(t, "us-west-2", outcomes[0].Region, "Input should not be reordered")
}

func TestAggregate_Empty(t *testing.T) {
	result := Aggregate(nil)

	assert.Equal(t, 0, result.Processed)
	assert.Empty(t, result.Regions)
	assert.False(t, result.HasFailures())
}
