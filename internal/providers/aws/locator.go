package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"defaultvpc/internal/models"
	"defaultvpc/internal/teardown"
	"defaultvpc/pkg/logging"
)

// defaultSecurityGroupName is the group AWS creates with every VPC. It cannot
// be deleted and goes away with the VPC.
const defaultSecurityGroupName = "default"

// VPCService handles interactions with the default VPC of one region
type VPCService struct {
	client EC2ClientAPI
	region string
	logger logging.Logger
}

// NewEC2Client is the production EC2ClientFactory
func NewEC2Client(cfg aws.Config) EC2ClientAPI {
	return ec2.NewFromConfig(cfg)
}

// NewVPCServiceWithClient creates a new VPCService with a provided client
func NewVPCServiceWithClient(client EC2ClientAPI, region string, logger logging.Logger) *VPCService {
	return &VPCService{
		client: client,
		region: region,
		logger: logger,
	}
}

// FindDefaultVPC returns the default VPC of the region, or nil when the
// region has none.
func (s *VPCService) FindDefaultVPC(ctx context.Context) (*models.DefaultVPC, error) {
	var vpcIDs []string

	paginator := ec2.NewDescribeVpcsPaginator(s.client, &ec2.DescribeVpcsInput{
		Filters: []types.Filter{filter("isDefault", "true")},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, teardown.NewDiscoveryError(s.region, "failed to describe VPCs",
				ClassifyAWSError(err, ResourceTypeVPC, ""))
		}
		for _, vpc := range page.Vpcs {
			vpcIDs = append(vpcIDs, aws.ToString(vpc.VpcId))
		}
	}

	switch len(vpcIDs) {
	case 0:
		s.logger.Debug("No default VPC in %s", s.region)
		return nil, nil
	case 1:
		s.logger.Debug("Default VPC in %s is %s", s.region, vpcIDs[0])
		return &models.DefaultVPC{ID: vpcIDs[0], Region: s.region}, nil
	default:
		return nil, teardown.NewInvariantError(teardown.ReasonMultipleDefaultVPCs, s.region,
			fmt.Sprintf("found %d default VPCs: %v", len(vpcIDs), vpcIDs))
	}
}

// DescribeResources enumerates the deletable children of vpc. Any failed
// enumeration fails the whole call since deleting from a partial graph
// would leave the VPC undeletable.
func (s *VPCService) DescribeResources(ctx context.Context, vpc models.DefaultVPC) (*models.ResourceGraph, error) {
	graph := &models.ResourceGraph{VPC: vpc}
	var err error

	if graph.InternetGateways, err = s.internetGateways(ctx, vpc.ID); err != nil {
		return nil, s.describeError(ResourceTypeInternetGateway, vpc.ID, err)
	}
	if graph.Subnets, err = s.subnets(ctx, vpc.ID); err != nil {
		return nil, s.describeError(ResourceTypeSubnet, vpc.ID, err)
	}
	if graph.RouteTables, err = s.routeTables(ctx, vpc.ID); err != nil {
		return nil, s.describeError(ResourceTypeRouteTable, vpc.ID, err)
	}
	if graph.NetworkACLs, err = s.networkACLs(ctx, vpc.ID); err != nil {
		return nil, s.describeError(ResourceTypeNetworkACL, vpc.ID, err)
	}
	if graph.SecurityGroups, err = s.securityGroups(ctx, vpc.ID); err != nil {
		return nil, s.describeError(ResourceTypeSecurityGroup, vpc.ID, err)
	}

	s.logger.Debug("Default VPC %s in %s: %d internet gateways, %d subnets, %d route tables, %d network ACLs, %d security groups",
		vpc.ID, s.region, len(graph.InternetGateways), len(graph.Subnets), len(graph.RouteTables),
		len(graph.NetworkACLs), len(graph.SecurityGroups))

	return graph, nil
}

func (s *VPCService) describeError(resourceType, vpcID string, err error) error {
	return teardown.NewDiscoveryError(s.region,
		fmt.Sprintf("failed to describe %s resources of %s", resourceType, vpcID),
		ClassifyAWSError(err, resourceType, ""))
}

func (s *VPCService) internetGateways(ctx context.Context, vpcID string) ([]string, error) {
	var ids []string
	paginator := ec2.NewDescribeInternetGatewaysPaginator(s.client, &ec2.DescribeInternetGatewaysInput{
		Filters: []types.Filter{filter("attachment.vpc-id", vpcID)},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, igw := range page.InternetGateways {
			ids = append(ids, aws.ToString(igw.InternetGatewayId))
		}
	}
	return ids, nil
}

func (s *VPCService) subnets(ctx context.Context, vpcID string) ([]string, error) {
	var ids []string
	paginator := ec2.NewDescribeSubnetsPaginator(s.client, &ec2.DescribeSubnetsInput{
		Filters: []types.Filter{filter("vpc-id", vpcID)},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, subnet := range page.Subnets {
			ids = append(ids, aws.ToString(subnet.SubnetId))
		}
	}
	return ids, nil
}

// routeTables skips the main route table, which is removed with the VPC.
func (s *VPCService) routeTables(ctx context.Context, vpcID string) ([]models.RouteTable, error) {
	var tables []models.RouteTable
	paginator := ec2.NewDescribeRouteTablesPaginator(s.client, &ec2.DescribeRouteTablesInput{
		Filters: []types.Filter{filter("vpc-id", vpcID)},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, rt := range page.RouteTables {
			if isMainRouteTable(rt) {
				continue
			}
			table := models.RouteTable{ID: aws.ToString(rt.RouteTableId)}
			for _, assoc := range rt.Associations {
				if assoc.RouteTableAssociationId != nil {
					table.AssociationIDs = append(table.AssociationIDs, aws.ToString(assoc.RouteTableAssociationId))
				}
			}
			tables = append(tables, table)
		}
	}
	return tables, nil
}

// networkACLs skips the default ACL, which is removed with the VPC.
func (s *VPCService) networkACLs(ctx context.Context, vpcID string) ([]string, error) {
	var ids []string
	paginator := ec2.NewDescribeNetworkAclsPaginator(s.client, &ec2.DescribeNetworkAclsInput{
		Filters: []types.Filter{filter("vpc-id", vpcID), filter("default", "false")},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, acl := range page.NetworkAcls {
			if aws.ToBool(acl.IsDefault) {
				continue
			}
			ids = append(ids, aws.ToString(acl.NetworkAclId))
		}
	}
	return ids, nil
}

func (s *VPCService) securityGroups(ctx context.Context, vpcID string) ([]string, error) {
	var ids []string
	paginator := ec2.NewDescribeSecurityGroupsPaginator(s.client, &ec2.DescribeSecurityGroupsInput{
		Filters: []types.Filter{filter("vpc-id", vpcID)},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, sg := range page.SecurityGroups {
			if aws.ToString(sg.GroupName) == defaultSecurityGroupName {
				continue
			}
			ids = append(ids, aws.ToString(sg.GroupId))
		}
	}
	return ids, nil
}

func isMainRouteTable(rt types.RouteTable) bool {
	for _, assoc := range rt.Associations {
		if aws.ToBool(assoc.Main) {
			return true
		}
	}
	return false
}

func filter(name string, values ...string) types.Filter {
	return types.Filter{Name: aws.String(name), Values: values}
}
