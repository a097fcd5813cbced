package orchestrator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"defaultvpc/internal/config"
	"defaultvpc/internal/models"
	"defaultvpc/internal/orchestrator/mocks"
	aws "defaultvpc/internal/providers/aws"
	awsMocks "defaultvpc/internal/providers/aws/mocks"
	"defaultvpc/internal/teardown"
	"defaultvpc/pkg/logging"
)

const testAccountID = "111122223333"

func testSession() *aws.Session {
	return aws.NewSession(testAccountID, "arn:aws:iam::111122223333:role/OrganizationAccountAccessRole", "aws",
		awssdk.Config{Region: "us-east-1"})
}

func testRequest(t *testing.T, mutate func(*config.Settings)) config.Request {
	t.Helper()

	s := config.DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}

	req, err := config.NewRequest(testAccountID, config.RoleReference{Name: "OrganizationAccountAccessRole"}, s)
	require.NoError(t, err)
	return req
}

// setupServiceWithMocks creates a Service whose region services come from the
// given map, keyed by region code.
func setupServiceWithMocks(t *testing.T, services map[string]VPCService) (*Service, *mocks.CredentialBroker, *mocks.RegionCatalog) {
	broker := mocks.NewCredentialBroker(t)
	catalog := mocks.NewRegionCatalog(t)

	factory := func(_ *aws.Session, region string) VPCService {
		svc, ok := services[region]
		assert.True(t, ok, "Unexpected region %s", region)
		return svc
	}

	return NewService(broker, catalog, factory, logging.NewMockLogger()), broker, catalog
}

func regionsOf(codes ...string) []models.Region {
	regions := make([]models.Region, len(codes))
	for i, c := range codes {
		regions[i] = models.Region{Code: c, OptInStatus: models.OptInNotRequired}
	}
	return regions
}

// TestRun_EndToEnd drives the real locator and deleter against mocked EC2
// clients: one region with a default VPC and one without.
func TestRun_EndToEnd(t *testing.T) {
	east := awsMocks.NewEC2ClientAPI(t)
	west := awsMocks.NewEC2ClientAPI(t)

	east.On("DescribeVpcs", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeVpcsOutput{
		Vpcs: []types.Vpc{{VpcId: awssdk.String("vpc-east"), IsDefault: awssdk.Bool(true)}},
	}, nil)
	east.On("DescribeInternetGateways", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeInternetGatewaysOutput{
		InternetGateways: []types.InternetGateway{{InternetGatewayId: awssdk.String("igw-1")}},
	}, nil)
	east.On("DescribeSubnets", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeSubnetsOutput{
		Subnets: []types.Subnet{{SubnetId: awssdk.String("subnet-1")}},
	}, nil)
	east.On("DescribeRouteTables", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeRouteTablesOutput{
		RouteTables: []types.RouteTable{{
			RouteTableId: awssdk.String("rtb-main"),
			Associations: []types.RouteTableAssociation{{Main: awssdk.Bool(true), RouteTableAssociationId: awssdk.String("rtbassoc-main")}},
		}},
	}, nil)
	east.On("DescribeNetworkAcls", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeNetworkAclsOutput{}, nil)
	east.On("DescribeSecurityGroups", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeSecurityGroupsOutput{
		SecurityGroups: []types.SecurityGroup{
			{GroupId: awssdk.String("sg-default"), GroupName: awssdk.String("default")},
			{GroupId: awssdk.String("sg-web"), GroupName: awssdk.String("web")},
		},
	}, nil)
	east.On("DetachInternetGateway", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DetachInternetGatewayOutput{}, nil)
	east.On("DeleteInternetGateway", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DeleteInternetGatewayOutput{}, nil)
	east.On("DeleteSubnet", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DeleteSubnetOutput{}, nil)
	east.On("DeleteSecurityGroup", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DeleteSecurityGroupOutput{}, nil)
	east.On("DeleteVpc", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DeleteVpcOutput{}, nil)

	west.On("DescribeVpcs", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeVpcsOutput{}, nil)

	logger := logging.NewMockLogger()
	services := map[string]VPCService{
		"us-east-1": aws.NewVPCServiceWithClient(east, "us-east-1", logger),
		"us-west-2": aws.NewVPCServiceWithClient(west, "us-west-2", logger),
	}
	service, broker, catalog := setupServiceWithMocks(t, services)

	session := testSession()
	broker.On("Assume", mock.Anything, testAccountID, mock.Anything, config.STSRegional).Return(session, nil)
	catalog.On("ListRegions", mock.Anything, session).Return(regionsOf("us-east-1", "us-west-2"), nil)

	req := testRequest(t, func(s *config.Settings) {
		s.DryRun = false
		s.MaxWorkers = 5
	})

	result, err := service.Run(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, testAccountID, result.AccountID)
	assert.False(t, result.DryRun)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, result.Regions, 2)

	deleted := result.Regions[0]
	assert.Equal(t, "us-east-1", deleted.Region)
	assert.Equal(t, models.StatusDeleted, deleted.Status)
	assert.Equal(t, "vpc-east", deleted.VPCID)
	assert.Equal(t, []string{"igw-1", "subnet-1", "sg-web", "vpc-east"}, deleted.DeletedResourceIDs)

	skipped := result.Regions[1]
	assert.Equal(t, "us-west-2", skipped.Region)
	assert.Equal(t, models.StatusNoDefaultVPC, skipped.Status)
	assert.Empty(t, skipped.DeletedResourceIDs)
	west.AssertNotCalled(t, "DeleteVpc", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_UsageErrorMakesNoProviderCalls(t *testing.T) {
	service, broker, catalog := setupServiceWithMocks(t, map[string]VPCService{})

	req := config.Request{
		TargetAccountID: testAccountID,
		DryRun:          true,
		MaxWorkers:      5,
		STSEndpointMode: config.STSRegional,
	}

	result, err := service.Run(context.Background(), req)

	assert.Nil(t, result)
	assert.True(t, teardown.IsKind(err, teardown.KindUsage), "Expected usage error, got %v", err)
	assert.True(t, teardown.HasReason(err, teardown.ReasonInvalidReference))
	broker.AssertNotCalled(t, "Assume", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	catalog.AssertNotCalled(t, "ListRegions", mock.Anything, mock.Anything)
}

func TestRun_AuthErrorAbortsRun(t *testing.T) {
	service, broker, catalog := setupServiceWithMocks(t, map[string]VPCService{})

	authErr := teardown.NewAuthError(teardown.ReasonAssumeRoleFailed, "failed to assume role", errors.New("AccessDenied"))
	broker.On("Assume", mock.Anything, testAccountID, mock.Anything, mock.Anything).Return(nil, authErr)

	result, err := service.Run(context.Background(), testRequest(t, nil))

	assert.Nil(t, result)
	assert.True(t, teardown.IsKind(err, teardown.KindAuth))
	catalog.AssertNotCalled(t, "ListRegions", mock.Anything, mock.Anything)
}

func TestRun_CatalogErrorAbortsRun(t *testing.T) {
	service, broker, catalog := setupServiceWithMocks(t, map[string]VPCService{})

	session := testSession()
	broker.On("Assume", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(session, nil)
	catalog.On("ListRegions", mock.Anything, session).
		Return(nil, teardown.NewDiscoveryError("us-east-1", "failed to describe regions", errors.New("UnauthorizedOperation")))

	result, err := service.Run(context.Background(), testRequest(t, nil))

	assert.Nil(t, result)
	assert.True(t, teardown.IsKind(err, teardown.KindDiscovery))
}

func TestRun_RegionRestrictionSkipsCatalog(t *testing.T) {
	svc := mocks.NewVPCService(t)
	svc.On("FindDefaultVPC", mock.Anything).Return(nil, nil)

	service, broker, catalog := setupServiceWithMocks(t, map[string]VPCService{"ap-east-1": svc})
	broker.On("Assume", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(testSession(), nil)

	req := testRequest(t, nil).WithRegions([]string{"ap-east-1"})
	result, err := service.Run(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, models.StatusNoDefaultVPC, result.Regions[0].Status)
	catalog.AssertNotCalled(t, "ListRegions", mock.Anything, mock.Anything)
}

// TestRun_FailureIsolation checks that invariant and deletion errors stay in
// their own region and every region is still reported.
func TestRun_FailureIsolation(t *testing.T) {
	vpc := &models.DefaultVPC{ID: "vpc-ok", Region: "eu-west-1"}
	graph := &models.ResourceGraph{VPC: *vpc, Subnets: []string{"subnet-1"}}

	invariant := mocks.NewVPCService(t)
	invariant.On("FindDefaultVPC", mock.Anything).
		Return(nil, teardown.NewInvariantError(teardown.ReasonMultipleDefaultVPCs, "ap-south-1", "found 2 default VPCs"))

	deletion := mocks.NewVPCService(t)
	partialVPC := &models.DefaultVPC{ID: "vpc-stuck", Region: "ca-central-1"}
	partialGraph := &models.ResourceGraph{VPC: *partialVPC, Subnets: []string{"subnet-9"}}
	deletion.On("FindDefaultVPC", mock.Anything).Return(partialVPC, nil)
	deletion.On("DescribeResources", mock.Anything, *partialVPC).Return(partialGraph, nil)
	deletion.On("DeleteResources", mock.Anything, partialGraph, false).
		Return([]string{"subnet-9"}, teardown.NewDeletionError("ca-central-1", "vpc-stuck", "failed to delete-vpc", errors.New("DependencyViolation")))

	healthy := mocks.NewVPCService(t)
	healthy.On("FindDefaultVPC", mock.Anything).Return(vpc, nil)
	healthy.On("DescribeResources", mock.Anything, *vpc).Return(graph, nil)
	healthy.On("DeleteResources", mock.Anything, graph, false).Return([]string{"subnet-1", "vpc-ok"}, nil)

	service, broker, catalog := setupServiceWithMocks(t, map[string]VPCService{
		"ap-south-1":   invariant,
		"ca-central-1": deletion,
		"eu-west-1":    healthy,
	})
	session := testSession()
	broker.On("Assume", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(session, nil)
	catalog.On("ListRegions", mock.Anything, session).Return(regionsOf("eu-west-1", "ap-south-1", "ca-central-1"), nil)

	result, err := service.Run(context.Background(), testRequest(t, func(s *config.Settings) { s.DryRun = false }))

	require.NoError(t, err, "Region failures must not fail the run")
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 1, result.Deleted)
	assert.True(t, result.HasFailures())

	byRegion := make(map[string]models.RegionOutcome)
	for _, o := range result.Regions {
		byRegion[o.Region] = o
	}

	assert.Equal(t, models.StatusFailed, byRegion["ap-south-1"].Status)
	assert.True(t, teardown.IsKind(byRegion["ap-south-1"].Err, teardown.KindInvariant))

	stuck := byRegion["ca-central-1"]
	assert.Equal(t, models.StatusFailed, stuck.Status)
	assert.Equal(t, "vpc-stuck", stuck.VPCID)
	assert.Equal(t, []string{"subnet-9"}, stuck.DeletedResourceIDs, "Partial deletions should be preserved")
	assert.True(t, teardown.IsKind(stuck.Err, teardown.KindDeletion))

	assert.Equal(t, models.StatusDeleted, byRegion["eu-west-1"].Status)
}

func TestRun_DryRunStatus(t *testing.T) {
	vpc := &models.DefaultVPC{ID: "vpc-1", Region: "us-east-1"}
	graph := &models.ResourceGraph{VPC: *vpc}

	svc := mocks.NewVPCService(t)
	svc.On("FindDefaultVPC", mock.Anything).Return(vpc, nil)
	svc.On("DescribeResources", mock.Anything, *vpc).Return(graph, nil)
	svc.On("DeleteResources", mock.Anything, graph, true).Return([]string{"vpc-1"}, nil)

	service, broker, catalog := setupServiceWithMocks(t, map[string]VPCService{"us-east-1": svc})
	session := testSession()
	broker.On("Assume", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(session, nil)
	catalog.On("ListRegions", mock.Anything, session).Return(regionsOf("us-east-1"), nil)

	result, err := service.Run(context.Background(), testRequest(t, nil))

	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Simulated)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, models.StatusDryRunSimulated, result.Regions[0].Status)
	assert.Equal(t, []string{"vpc-1"}, result.Regions[0].DeletedResourceIDs)
}

// panickingVPCService blows up on lookup.
type panickingVPCService struct{ VPCService }

func (panickingVPCService) FindDefaultVPC(context.Context) (*models.DefaultVPC, error) {
	panic("nil map")
}

func TestRun_PanicBecomesFailedOutcome(t *testing.T) {
	none := mocks.NewVPCService(t)
	none.On("FindDefaultVPC", mock.Anything).Return(nil, nil)

	service, broker, catalog := setupServiceWithMocks(t, map[string]VPCService{
		"us-east-1": panickingVPCService{},
		"us-east-2": none,
	})
	session := testSession()
	broker.On("Assume", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(session, nil)
	catalog.On("ListRegions", mock.Anything, session).Return(regionsOf("us-east-1", "us-east-2"), nil)

	result, err := service.Run(context.Background(), testRequest(t, nil))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, models.StatusFailed, result.Regions[0].Status)
	assert.True(t, teardown.HasReason(result.Regions[0].Err, teardown.ReasonPanic))
	assert.Equal(t, models.StatusNoDefaultVPC, result.Regions[1].Status)
}

// countingVPCService records how many lookups are in flight at once.
type countingVPCService struct {
	inFlight *atomic.Int32
	peak     *atomic.Int32
	mu       *sync.Mutex
}

func (c countingVPCService) FindDefaultVPC(context.Context) (*models.DefaultVPC, error) {
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	c.mu.Lock()
	if n > c.peak.Load() {
		c.peak.Store(n)
	}
	c.mu.Unlock()

	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

func (countingVPCService) DescribeResources(context.Context, models.DefaultVPC) (*models.ResourceGraph, error) {
	return nil, errors.New("not expected")
}

func (countingVPCService) DeleteResources(context.Context, *models.ResourceGraph, bool) ([]string, error) {
	return nil, errors.New("not expected")
}

func TestRun_ConcurrencyNeverExceedsMaxWorkers(t *testing.T) {
	const maxWorkers = 3

	counter := countingVPCService{inFlight: &atomic.Int32{}, peak: &atomic.Int32{}, mu: &sync.Mutex{}}
	codes := []string{
		"us-east-1", "us-east-2", "us-west-1", "us-west-2", "eu-west-1", "eu-west-2",
		"eu-central-1", "ap-south-1", "ap-northeast-1", "sa-east-1", "ca-central-1", "af-south-1",
	}

	broker := mocks.NewCredentialBroker(t)
	catalog := mocks.NewRegionCatalog(t)
	session := testSession()
	broker.On("Assume", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(session, nil)
	catalog.On("ListRegions", mock.Anything, session).Return(regionsOf(codes...), nil)

	factory := func(*aws.Session, string) VPCService { return counter }
	service := NewService(broker, catalog, factory, logging.NewMockLogger())

	result, err := service.Run(context.Background(), testRequest(t, func(s *config.Settings) { s.MaxWorkers = maxWorkers }))

	require.NoError(t, err)
	assert.Equal(t, len(codes), result.Processed)
	assert.Equal(t, len(codes), result.Skipped)
	assert.LessOrEqual(t, int(counter.peak.Load()), maxWorkers, "In-flight regions exceeded the worker limit")
	assert.Greater(t, int(counter.peak.Load()), 1, "Regions should run concurrently")
}
