package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"defaultvpc/internal/models"
	"defaultvpc/internal/teardown"
	"defaultvpc/pkg/logging"
)

// RegionCatalog lists the regions of an account that can be processed
type RegionCatalog struct {
	newEC2 EC2ClientFactory
	logger logging.Logger
}

// NewRegionCatalog creates a RegionCatalog using the given client factory
func NewRegionCatalog(newEC2 EC2ClientFactory, logger logging.Logger) *RegionCatalog {
	return &RegionCatalog{
		newEC2: newEC2,
		logger: logger,
	}
}

// ListRegions returns every region whose opt-in status is
// opt-in-not-required or opted-in, queried from the session's home region.
func (c *RegionCatalog) ListRegions(ctx context.Context, session *Session) ([]models.Region, error) {
	client := c.newEC2(session.ConfigForRegion(session.HomeRegion))

	resp, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(true),
	})
	if err != nil {
		return nil, teardown.NewDiscoveryError(session.HomeRegion, "failed to describe regions",
			ClassifyAWSError(err, ResourceTypeRegion, ""))
	}

	all := make([]models.Region, 0, len(resp.Regions))
	for _, r := range resp.Regions {
		all = append(all, models.Region{
			Code:        aws.ToString(r.RegionName),
			OptInStatus: models.OptInStatus(aws.ToString(r.OptInStatus)),
		})
	}

	eligible := teardown.EligibleRegions(all)
	c.logger.Info("Account %s has %d eligible regions out of %d", session.AccountID, len(eligible), len(all))
	c.logger.Debug("Eligible regions: %v", teardown.RegionCodes(eligible))

	if len(eligible) == 0 {
		c.logger.Warn("No eligible regions found for account %s", session.AccountID)
	}

	return eligible, nil
}
