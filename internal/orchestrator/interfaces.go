package orchestrator

import (
	"context"

	"defaultvpc/internal/config"
	"defaultvpc/internal/models"
	aws "defaultvpc/internal/providers/aws"
)

// CredentialBroker exchanges an account and role reference for a session
//
//go:generate mockery --name=CredentialBroker --output=./mocks
type CredentialBroker interface {
	Assume(ctx context.Context, accountID string, role config.RoleReference, mode config.STSEndpointMode) (*aws.Session, error)
}

// RegionCatalog lists the regions eligible for processing
//
//go:generate mockery --name=RegionCatalog --output=./mocks
type RegionCatalog interface {
	ListRegions(ctx context.Context, session *aws.Session) ([]models.Region, error)
}

// VPCService locates and deletes the default VPC of one region
//
//go:generate mockery --name=VPCService --output=./mocks
type VPCService interface {
	FindDefaultVPC(ctx context.Context) (*models.DefaultVPC, error)
	DescribeResources(ctx context.Context, vpc models.DefaultVPC) (*models.ResourceGraph, error)
	DeleteResources(ctx context.Context, graph *models.ResourceGraph, dryRun bool) ([]string, error)
}

// VPCServiceFactory returns the VPC service for one region of a session.
type VPCServiceFactory func(session *aws.Session, region string) VPCService
