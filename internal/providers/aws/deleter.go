package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"defaultvpc/internal/models"
	"defaultvpc/internal/teardown"
)

// DeleteResources removes everything in graph, VPC last, and returns the IDs
// of the deleted resources in deletion order. With dryRun set no mutating
// call is made and the returned IDs are those a real run would delete.
//
// A resource that is already gone counts as deleted. Any other failure stops
// the region: the IDs deleted so far are returned with a deletion error.
func (s *VPCService) DeleteResources(ctx context.Context, graph *models.ResourceGraph, dryRun bool) ([]string, error) {
	plan := teardown.BuildPlan(graph)
	if len(plan) == 0 {
		return nil, nil
	}

	if dryRun {
		for _, step := range plan {
			s.logger.Info("[dry run] %s: would %s %s", s.region, step.Action, step.ResourceID)
		}
		return teardown.DeletedIDs(plan), nil
	}

	deleted := make([]string, 0, len(plan))
	for _, step := range plan {
		if err := s.apply(ctx, step); err != nil {
			classified := ClassifyAWSError(err, resourceTypeOf(step.Action), step.ResourceID)
			if !isAlreadyGone(step.Action, classified) {
				return deleted, teardown.NewDeletionError(s.region, step.ResourceID,
					fmt.Sprintf("failed to %s", step.Action), classified)
			}
			s.logger.Debug("%s: %s already gone (%s)", s.region, step.ResourceID, classified.Code)
		} else {
			s.logger.Info("%s: %s %s", s.region, step.Action, step.ResourceID)
		}

		if step.Deletes() {
			deleted = append(deleted, step.ResourceID)
		}
	}

	return deleted, nil
}

func (s *VPCService) apply(ctx context.Context, step teardown.Step) error {
	id := aws.String(step.ResourceID)

	var err error
	switch step.Action {
	case teardown.ActionDetachInternetGateway:
		_, err = s.client.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
			InternetGatewayId: id,
			VpcId:             aws.String(step.ParentID),
		})
	case teardown.ActionDeleteInternetGateway:
		_, err = s.client.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{InternetGatewayId: id})
	case teardown.ActionDisassociateRoute:
		_, err = s.client.DisassociateRouteTable(ctx, &ec2.DisassociateRouteTableInput{AssociationId: id})
	case teardown.ActionDeleteRouteTable:
		_, err = s.client.DeleteRouteTable(ctx, &ec2.DeleteRouteTableInput{RouteTableId: id})
	case teardown.ActionDeleteSubnet:
		_, err = s.client.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{SubnetId: id})
	case teardown.ActionDeleteNetworkACL:
		_, err = s.client.DeleteNetworkAcl(ctx, &ec2.DeleteNetworkAclInput{NetworkAclId: id})
	case teardown.ActionDeleteSecurityGroup:
		_, err = s.client.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{GroupId: id})
	case teardown.ActionDeleteVPC:
		_, err = s.client.DeleteVpc(ctx, &ec2.DeleteVpcInput{VpcId: id})
	default:
		err = fmt.Errorf("unknown action %q", step.Action)
	}
	return err
}

// isAlreadyGone reports whether err means the step's goal is already met.
func isAlreadyGone(action teardown.Action, err *Error) bool {
	if err.Category == ErrResourceNotFound {
		return true
	}
	return action == teardown.ActionDetachInternetGateway && err.Category == ErrNotAttached
}

func resourceTypeOf(action teardown.Action) string {
	switch action {
	case teardown.ActionDetachInternetGateway, teardown.ActionDeleteInternetGateway:
		return ResourceTypeInternetGateway
	case teardown.ActionDisassociateRoute, teardown.ActionDeleteRouteTable:
		return ResourceTypeRouteTable
	case teardown.ActionDeleteSubnet:
		return ResourceTypeSubnet
	case teardown.ActionDeleteNetworkACL:
		return ResourceTypeNetworkACL
	case teardown.ActionDeleteSecurityGroup:
		return ResourceTypeSecurityGroup
	default:
		return ResourceTypeVPC
	}
}
