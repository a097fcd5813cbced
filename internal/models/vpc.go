package models

import "time"

// OptInStatus is the opt-in state AWS reports for a region.
type OptInStatus string

const (
	OptInNotRequired OptInStatus = "opt-in-not-required"
	OptedIn          OptInStatus = "opted-in"
	NotOptedIn       OptInStatus = "not-opted-in"
)

// Region describes one AWS region as returned by the region catalog.
type Region struct {
	Code        string      `json:"region"`
	OptInStatus OptInStatus `json:"opt_in_status"`
}

// DefaultVPC identifies the default VPC of a region.
type DefaultVPC struct {
	ID     string `json:"vpc_id"`
	Region string `json:"region"`
}

// RouteTable is a non-main route table together with the explicit subnet
// associations that must be removed before it can be deleted.
type RouteTable struct {
	ID             string   `json:"route_table_id"`
	AssociationIDs []string `json:"association_ids,omitempty"`
}

// ResourceGraph holds the deletable children of a default VPC. It is rebuilt
// from live API state on every run.
type ResourceGraph struct {
	VPC              DefaultVPC   `json:"vpc"`
	InternetGateways []string     `json:"internet_gateways,omitempty"`
	Subnets          []string     `json:"subnets,omitempty"`
	RouteTables      []RouteTable `json:"route_tables,omitempty"` // non-main only
	NetworkACLs      []string     `json:"network_acls,omitempty"` // non-default only
	SecurityGroups   []string     `json:"security_groups,omitempty"`
}

// OutcomeStatus is the terminal state of a region after processing.
type OutcomeStatus string

const (
	StatusNoDefaultVPC    OutcomeStatus = "NO_DEFAULT_VPC"
	StatusDeleted         OutcomeStatus = "DELETED"
	StatusDryRunSimulated OutcomeStatus = "DRY_RUN_SIMULATED"
	StatusFailed          OutcomeStatus = "FAILED"
)

// RegionOutcome is produced exactly once per processed region.
type RegionOutcome struct {
	Region             string
	Status             OutcomeStatus
	VPCID              string
	DeletedResourceIDs []string
	Err                error
}

// InvocationResult is the aggregated report returned to the caller.
type InvocationResult struct {
	AccountID  string
	DryRun     bool
	Processed  int
	Deleted    int
	Simulated  int
	Skipped    int
	Failed     int
	Regions    []RegionOutcome
	StartedAt  time.Time
	FinishedAt time.Time
}

// HasFailures reports whether any region ended in FAILED.
func (r *InvocationResult) HasFailures() bool {
	return r != nil && r.Failed > 0
}
