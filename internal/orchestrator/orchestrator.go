package orchestrator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"defaultvpc/internal/config"
	"defaultvpc/internal/models"
	aws "defaultvpc/internal/providers/aws"
	"defaultvpc/internal/teardown"
	"defaultvpc/pkg/logging"
)

// Service runs the default VPC teardown for one account.
type Service struct {
	broker        CredentialBroker
	catalog       RegionCatalog
	newVPCService VPCServiceFactory
	logger        logging.Logger
	now           func() time.Time
}

// NewService creates a new orchestrator service with the given dependencies.
func NewService(
	broker CredentialBroker,
	catalog RegionCatalog,
	newVPCService VPCServiceFactory,
	logger logging.Logger,
) *Service {
	return &Service{
		broker:        broker,
		catalog:       catalog,
		newVPCService: newVPCService,
		logger:        logger,
		now:           time.Now,
	}
}

// NewDefaultService creates a new service with default implementations of dependencies
func NewDefaultService(ctx context.Context, sessionName string, logger logging.Logger) (*Service, error) {
	broker, err := aws.NewCredentialBrokerWithDefaultConfig(ctx, sessionName, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS credential broker: %w", err)
	}

	newVPCService := func(session *aws.Session, region string) VPCService {
		return aws.NewVPCServiceWithClient(aws.NewEC2Client(session.ConfigForRegion(region)), region, logger)
	}

	return NewService(broker, aws.NewRegionCatalog(aws.NewEC2Client, logger), newVPCService, logger), nil
}

// Run executes the teardown workflow for req. Usage and auth errors, and a
// failure to list regions, abort the run before any region is touched.
// Region failures are recorded in the result and never returned.
func (s *Service) Run(ctx context.Context, req config.Request) (*models.InvocationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startedAt := s.now()
	mode := "live"
	if req.DryRun {
		mode = "dry run"
	}
	s.logger.Info("Starting default VPC teardown for account %s (%s, %d workers)", req.TargetAccountID, mode, req.MaxWorkers)

	session, err := s.broker.Assume(ctx, req.TargetAccountID, req.Role, req.STSEndpointMode)
	if err != nil {
		return nil, err
	}

	regions, err := s.regionsFor(ctx, session, req)
	if err != nil {
		return nil, err
	}

	outcomes := s.processRegions(ctx, session, regions, req)

	result := Aggregate(outcomes)
	result.AccountID = req.TargetAccountID
	result.DryRun = req.DryRun
	result.StartedAt = startedAt
	result.FinishedAt = s.now()

	s.logSummary(result)

	return result, nil
}

// regionsFor returns the explicit region restriction of req when set and the
// eligible catalog regions otherwise.
func (s *Service) regionsFor(ctx context.Context, session *aws.Session, req config.Request) ([]string, error) {
	if len(req.Regions) > 0 {
		s.logger.Info("Processing restricted to regions %v", req.Regions)
		return req.Regions, nil
	}

	regions, err := s.catalog.ListRegions(ctx, session)
	if err != nil {
		return nil, err
	}
	return teardown.RegionCodes(regions), nil
}

// processRegions runs one task per region with at most req.MaxWorkers in
// flight and waits for all of them. Each task writes only its own slot.
func (s *Service) processRegions(ctx context.Context, session *aws.Session, regions []string, req config.Request) []models.RegionOutcome {
	outcomes := make([]models.RegionOutcome, len(regions))

	// A plain Group: one region failing must not cancel the others.
	var g errgroup.Group
	g.SetLimit(req.MaxWorkers)

	for i, region := range regions {
		i, region := i, region
		g.Go(func() error {
			outcomes[i] = s.processRegion(ctx, session, region, req.DryRun)
			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

// processRegion locates and deletes the default VPC of a single region.
func (s *Service) processRegion(ctx context.Context, session *aws.Session, region string, dryRun bool) (outcome models.RegionOutcome) {
	outcome = models.RegionOutcome{Region: region}

	defer func() {
		if r := recover(); r != nil {
			outcome.Status = models.StatusFailed
			outcome.Err = teardown.NewInvariantError(teardown.ReasonPanic, region, fmt.Sprintf("region worker panicked: %v", r))
			s.logger.Error("%s: %v", region, outcome.Err)
		}
	}()

	vpcService := s.newVPCService(session, region)

	vpc, err := vpcService.FindDefaultVPC(ctx)
	if err != nil {
		return s.failed(outcome, err)
	}
	if vpc == nil {
		s.logger.Info("%s: no default VPC", region)
		outcome.Status = models.StatusNoDefaultVPC
		return outcome
	}
	outcome.VPCID = vpc.ID

	graph, err := vpcService.DescribeResources(ctx, *vpc)
	if err != nil {
		return s.failed(outcome, err)
	}

	deleted, err := vpcService.DeleteResources(ctx, graph, dryRun)
	outcome.DeletedResourceIDs = deleted
	if err != nil {
		return s.failed(outcome, err)
	}

	if dryRun {
		outcome.Status = models.StatusDryRunSimulated
		s.logger.Info("%s: dry run would delete default VPC %s and %d resources", region, vpc.ID, len(deleted)-1)
	} else {
		outcome.Status = models.StatusDeleted
		s.logger.Info("%s: deleted default VPC %s and %d resources", region, vpc.ID, len(deleted)-1)
	}

	return outcome
}

func (s *Service) failed(outcome models.RegionOutcome, err error) models.RegionOutcome {
	outcome.Status = models.StatusFailed
	outcome.Err = err
	s.logger.Error("%s: %v", outcome.Region, err)
	return outcome
}

// logSummary logs the aggregated counts and every failed region.
func (s *Service) logSummary(result *models.InvocationResult) {
	for _, r := range result.Regions {
		if r.Status == models.StatusFailed {
			s.logger.Warn("Region %s failed: %v", r.Region, r.Err)
		}
	}

	s.logger.Info("Summary for account %s: processed %d regions, %d deleted, %d simulated, %d without default VPC, %d failed",
		result.AccountID, result.Processed, result.Deleted, result.Simulated, result.Skipped, result.Failed)
}
