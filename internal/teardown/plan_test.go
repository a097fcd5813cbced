package teardown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"defaultvpc/internal/models"
)

func TestBuildPlan_Order(t *testing.T) {
	graph := &models.ResourceGraph{
		VPC:              models.DefaultVPC{ID: "vpc-1", Region: "us-east-1"},
		InternetGateways: []string{"igw-1"},
		Subnets:          []string{"subnet-a", "subnet-b"},
		RouteTables: []models.RouteTable{
			{ID: "rtb-1", AssociationIDs: []string{"rtbassoc-1"}},
		},
		NetworkACLs:    []string{"acl-1"},
		SecurityGroups: []string{"sg-1"},
	}

	plan := BuildPlan(graph)

	expected := []Step{
		{Action: ActionDetachInternetGateway, ResourceID: "igw-1", ParentID: "vpc-1"},
		{Action: ActionDeleteInternetGateway, ResourceID: "igw-1"},
		{Action: ActionDisassociateRoute, ResourceID: "rtbassoc-1", ParentID: "rtb-1"},
		{Action: ActionDeleteRouteTable, ResourceID: "rtb-1"},
		{Action: ActionDeleteSubnet, ResourceID: "subnet-a"},
		{Action: ActionDeleteSubnet, ResourceID: "subnet-b"},
		{Action: ActionDeleteNetworkACL, ResourceID: "acl-1"},
		{Action: ActionDeleteSecurityGroup, ResourceID: "sg-1"},
		{Action: ActionDeleteVPC, ResourceID: "vpc-1"},
	}
	assert.Equal(t, expected, plan, "Plan should follow the fixed dependency order")
	assert.Equal(t, planSize(graph), len(plan), "Plan capacity estimate should be exact")
}

func TestBuildPlan_VPCOnly(t *testing.T) {
	plan := BuildPlan(&models.ResourceGraph{VPC: models.DefaultVPC{ID: "vpc-9"}})

	assert.Equal(t, []Step{{Action: ActionDeleteVPC, ResourceID: "vpc-9"}}, plan)
}

func TestBuildPlan_NoVPC(t *testing.T) {
	assert.Nil(t, BuildPlan(nil))
	assert.Nil(t, BuildPlan(&models.ResourceGraph{}))
}

func TestDeletedIDs_SkipsDetachAndDisassociate(t *testing.T) {
	graph := &models.ResourceGraph{
		VPC:              models.DefaultVPC{ID: "vpc-1"},
		InternetGateways: []string{"igw-1"},
		RouteTables:      []models.RouteTable{{ID: "rtb-1", AssociationIDs: []string{"rtbassoc-1", "rtbassoc-2"}}},
		Subnets:          []string{"subnet-a"},
		SecurityGroups:   []string{"sg-1"},
	}

	ids := DeletedIDs(BuildPlan(graph))

	assert.Equal(t, []string{"igw-1", "rtb-1", "subnet-a", "sg-1", "vpc-1"}, ids)
}

func TestStepDeletes(t *testing.T) {
	tests := []struct {
		action  Action
		deletes bool
	}{
		{ActionDetachInternetGateway, false},
		{ActionDisassociateRoute, false},
		{ActionDeleteInternetGateway, true},
		{ActionDeleteRouteTable, true},
		{ActionDeleteSubnet, true},
		{ActionDeleteNetworkACL, true},
		{ActionDeleteSecurityGroup, true},
		{ActionDeleteVPC, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.deletes, Step{Action: tt.action}.Deletes())
		})
	}
}
