package teardown

import "defaultvpc/internal/models"

// Action is a single provider mutation in a deletion plan.
type Action string

const (
	ActionDetachInternetGateway Action = "detach-internet-gateway"
	ActionDeleteInternetGateway Action = "delete-internet-gateway"
	ActionDisassociateRoute     Action = "disassociate-route-table"
	ActionDeleteRouteTable      Action = "delete-route-table"
	ActionDeleteSubnet          Action = "delete-subnet"
	ActionDeleteNetworkACL      Action = "delete-network-acl"
	ActionDeleteSecurityGroup   Action = "delete-security-group"
	ActionDeleteVPC             Action = "delete-vpc"
)

// Step is one ordered action of a deletion plan.
type Step struct {
	Action Action

	// ResourceID is the target of the action. For disassociation it is the
	// association ID.
	ResourceID string

	// ParentID is the VPC for a detach and the route table for a
	// disassociation. Empty otherwise.
	ParentID string
}

// Deletes reports whether the step removes a resource and so contributes its
// ID to the deleted resource list.
func (s Step) Deletes() bool {
	switch s.Action {
	case ActionDetachInternetGateway, ActionDisassociateRoute:
		return false
	default:
		return true
	}
}

// BuildPlan orders the mutations needed to remove a default VPC. AWS refuses
// to delete a resource still referenced by another, so the order is fixed:
// internet gateways (detach, then delete), non-main route tables, subnets,
// non-default network ACLs, non-default security groups, and the VPC last.
func BuildPlan(graph *models.ResourceGraph) []Step {
	if graph == nil || graph.VPC.ID == "" {
		return nil
	}

	vpcID := graph.VPC.ID
	steps := make([]Step, 0, planSize(graph))

	for _, igw := range graph.InternetGateways {
		steps = append(steps,
			Step{Action: ActionDetachInternetGateway, ResourceID: igw, ParentID: vpcID},
			Step{Action: ActionDeleteInternetGateway, ResourceID: igw},
		)
	}

	for _, rt := range graph.RouteTables {
		for _, assoc := range rt.AssociationIDs {
			steps = append(steps, Step{Action: ActionDisassociateRoute, ResourceID: assoc, ParentID: rt.ID})
		}
		steps = append(steps, Step{Action: ActionDeleteRouteTable, ResourceID: rt.ID})
	}

	for _, subnet := range graph.Subnets {
		steps = append(steps, Step{Action: ActionDeleteSubnet, ResourceID: subnet})
	}

	for _, acl := range graph.NetworkACLs {
		steps = append(steps, Step{Action: ActionDeleteNetworkACL, ResourceID: acl})
	}

	for _, sg := range graph.SecurityGroups {
		steps = append(steps, Step{Action: ActionDeleteSecurityGroup, ResourceID: sg})
	}

	return append(steps, Step{Action: ActionDeleteVPC, ResourceID: vpcID})
}

// DeletedIDs returns, in order, the resource IDs a plan removes. This is the
// list a dry run reports.
func DeletedIDs(steps []Step) []string {
	ids := make([]string, 0, len(steps))
	for _, s := range steps {
		if s.Deletes() {
			ids = append(ids, s.ResourceID)
		}
	}
	return ids
}

func planSize(graph *models.ResourceGraph) int {
	n := 2*len(graph.InternetGateways) + len(graph.Subnets) + len(graph.NetworkACLs) + len(graph.SecurityGroups) + 1
	for _, rt := range graph.RouteTables {
		n += 1 + len(rt.AssociationIDs)
	}
	return n
}
