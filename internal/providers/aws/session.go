package aws

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// DefaultHomeRegion is used when the base configuration has no region.
const DefaultHomeRegion = "us-east-1"

// Session is the assumed-role identity in the target account. Its
// credentials are static for the whole run and are never written anywhere.
// A Session is read-only once built and safe to share between region workers.
type Session struct {
	AccountID string
	RoleARN   string
	Partition string

	// HomeRegion is where account-wide calls such as DescribeRegions go.
	HomeRegion string

	// Expires is when the temporary credentials stop working.
	Expires time.Time

	cfg aws.Config
}

// NewSession wraps cfg, which must already carry the assumed credentials.
func NewSession(accountID, roleARN, partition string, cfg aws.Config) *Session {
	home := cfg.Region
	if home == "" {
		home = DefaultHomeRegion
	}

	return &Session{
		AccountID:  accountID,
		RoleARN:    roleARN,
		Partition:  partition,
		HomeRegion: home,
		cfg:        cfg,
	}
}

// ConfigForRegion returns a copy of the session config with Region set.
// Use it to construct region-scoped SDK clients.
func (s *Session) ConfigForRegion(region string) aws.Config {
	regional := s.cfg.Copy()
	regional.Region = region
	return regional
}
