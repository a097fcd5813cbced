package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"defaultvpc/internal/models"
	"defaultvpc/internal/providers/aws/mocks"
	"defaultvpc/internal/teardown"
	"defaultvpc/pkg/logging"
)

const testRegion = "us-east-1"

// hasFilter matches inputs carrying filter name=value.
func hasFilter(filters []types.Filter, name, value string) bool {
	for _, f := range filters {
		if aws.ToString(f.Name) != name {
			continue
		}
		for _, v := range f.Values {
			if v == value {
				return true
			}
		}
	}
	return false
}

func newTestVPCService(client EC2ClientAPI) *VPCService {
	return NewVPCServiceWithClient(client, testRegion, logging.NewMockLogger())
}

func TestFindDefaultVPC(t *testing.T) {
	client := mocks.NewEC2ClientAPI(t)
	client.On("DescribeVpcs",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeVpcsInput) bool { return hasFilter(input.Filters, "isDefault", "true") }),
		mock.Anything,
	).Return(&ec2.DescribeVpcsOutput{
		Vpcs: []types.Vpc{{VpcId: aws.String("vpc-1"), IsDefault: aws.Bool(true)}},
	}, nil)

	vpc, err := newTestVPCService(client).FindDefaultVPC(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.DefaultVPC{ID: "vpc-1", Region: testRegion}, vpc)
}

func TestFindDefaultVPC_None(t *testing.T) {
	client := mocks.NewEC2ClientAPI(t)
	client.On("DescribeVpcs", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeVpcsOutput{}, nil)

	vpc, err := newTestVPCService(client).FindDefaultVPC(context.Background())

	assert.NoError(t, err, "A region without a default VPC is not an error")
	assert.Nil(t, vpc)
}

func TestFindDefaultVPC_Paginated(t *testing.T) {
	client := mocks.NewEC2ClientAPI(t)
	client.On("DescribeVpcs",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeVpcsInput) bool { return input.NextToken == nil }),
		mock.Anything,
	).Return(&ec2.DescribeVpcsOutput{NextToken: aws.String("page-2")}, nil).Once()
	client.On("DescribeVpcs",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeVpcsInput) bool { return aws.ToString(input.NextToken) == "page-2" }),
		mock.Anything,
	).Return(&ec2.DescribeVpcsOutput{
		Vpcs: []types.Vpc{{VpcId: aws.String("vpc-2")}},
	}, nil).Once()

	vpc, err := newTestVPCService(client).FindDefaultVPC(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "vpc-2", vpc.ID)
}

func TestFindDefaultVPC_MultipleIsInvariantError(t *testing.T) {
	client := mocks.NewEC2ClientAPI(t)
	client.On("DescribeVpcs", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeVpcsOutput{
		Vpcs: []types.Vpc{{VpcId: aws.String("vpc-1")}, {VpcId: aws.String("vpc-2")}},
	}, nil)

	vpc, err := newTestVPCService(client).FindDefaultVPC(context.Background())

	assert.Nil(t, vpc, "Must not pick one of several default VPCs")
	assert.True(t, teardown.IsKind(err, teardown.KindInvariant))
	assert.True(t, teardown.HasReason(err, teardown.ReasonMultipleDefaultVPCs))
}

func TestFindDefaultVPC_DescribeError(t *testing.T) {
	client := mocks.NewEC2ClientAPI(t)
	client.On("DescribeVpcs", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "AuthFailure"})

	_, err := newTestVPCService(client).FindDefaultVPC(context.Background())

	assert.True(t, teardown.IsKind(err, teardown.KindDiscovery))
}

// expectDescribe sets up every describe call for vpc-1.
func expectDescribe(client *mocks.EC2ClientAPI) {
	client.On("DescribeInternetGateways",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeInternetGatewaysInput) bool {
			return hasFilter(input.Filters, "attachment.vpc-id", "vpc-1")
		}),
		mock.Anything,
	).Return(&ec2.DescribeInternetGatewaysOutput{
		InternetGateways: []types.InternetGateway{{InternetGatewayId: aws.String("igw-1")}},
	}, nil)
	client.On("DescribeSubnets",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeSubnetsInput) bool { return hasFilter(input.Filters, "vpc-id", "vpc-1") }),
		mock.Anything,
	).Return(&ec2.DescribeSubnetsOutput{
		Subnets: []types.Subnet{{SubnetId: aws.String("subnet-a")}, {SubnetId: aws.String("subnet-b")}},
	}, nil)
	client.On("DescribeRouteTables", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeRouteTablesOutput{
		RouteTables: []types.RouteTable{
			{
				RouteTableId: aws.String("rtb-main"),
				Associations: []types.RouteTableAssociation{{Main: aws.Bool(true), RouteTableAssociationId: aws.String("rtbassoc-main")}},
			},
			{
				RouteTableId: aws.String("rtb-custom"),
				Associations: []types.RouteTableAssociation{
					{Main: aws.Bool(false), RouteTableAssociationId: aws.String("rtbassoc-1"), SubnetId: aws.String("subnet-a")},
				},
			},
			{RouteTableId: aws.String("rtb-empty")},
		},
	}, nil)
	client.On("DescribeNetworkAcls",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.DescribeNetworkAclsInput) bool { return hasFilter(input.Filters, "default", "false") }),
		mock.Anything,
	).Return(&ec2.DescribeNetworkAclsOutput{
		NetworkAcls: []types.NetworkAcl{
			{NetworkAclId: aws.String("acl-custom"), IsDefault: aws.Bool(false)},
			{NetworkAclId: aws.String("acl-default"), IsDefault: aws.Bool(true)},
		},
	}, nil)
	client.On("DescribeSecurityGroups", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.DescribeSecurityGroupsOutput{
		SecurityGroups: []types.SecurityGroup{
			{GroupId: aws.String("sg-default"), GroupName: aws.String("default")},
			{GroupId: aws.String("sg-web"), GroupName: aws.String("web")},
			{GroupId: aws.String("sg-db"), GroupName: aws.String("db")},
		},
	}, nil)
}

func TestDescribeResources(t *testing.T) {
	client := mocks.NewEC2ClientAPI(t)
	expectDescribe(client)

	vpc := models.DefaultVPC{ID: "vpc-1", Region: testRegion}
	graph, err := newTestVPCService(client).DescribeResources(context.Background(), vpc)

	require.NoError(t, err)
	assert.Equal(t, &models.ResourceGraph{
		VPC:              vpc,
		InternetGateways: []string{"igw-1"},
		Subnets:          []string{"subnet-a", "subnet-b"},
		RouteTables: []models.RouteTable{
			{ID: "rtb-custom", AssociationIDs: []string{"rtbassoc-1"}},
			{ID: "rtb-empty"},
		},
		NetworkACLs:    []string{"acl-custom"},
		SecurityGroups: []string{"sg-web", "sg-db"},
	}, graph)
}

func TestDescribeResources_FailureFailsWholeLocate(t *testing.T) {
	client := mocks.NewEC2ClientAPI(t)
	client.On("DescribeInternetGateways", mock.Anything, mock.Anything, mock.Anything).
		Return(&ec2.DescribeInternetGatewaysOutput{}, nil)
	client.On("DescribeSubnets", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "RequestLimitExceeded"})

	graph, err := newTestVPCService(client).DescribeResources(context.Background(), models.DefaultVPC{ID: "vpc-1"})

	assert.Nil(t, graph, "No partial graph may be returned")
	assert.True(t, teardown.IsKind(err, teardown.KindDiscovery))
	assert.True(t, IsErrorCategory(err, ErrThrottling))
	client.AssertNotCalled(t, "DescribeRouteTables", mock.Anything, mock.Anything, mock.Anything)
}
