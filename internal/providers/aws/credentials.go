package aws

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"defaultvpc/internal/config"
	"defaultvpc/internal/teardown"
	"defaultvpc/pkg/logging"
)

// globalSTSRegion makes the STS endpoint resolver pick sts.amazonaws.com.
const globalSTSRegion = "aws-global"

// maxSessionNameLength is the STS limit on RoleSessionName.
const maxSessionNameLength = 64

// CredentialBroker assumes a role in the target account.
type CredentialBroker struct {
	baseConfig  aws.Config
	newSTS      STSClientFactory
	sessionName string
	logger      logging.Logger
}

// NewCredentialBrokerWithDefaultConfig creates a CredentialBroker from the
// default AWS SDK configuration of the running process.
func NewCredentialBrokerWithDefaultConfig(ctx context.Context, sessionName string, logger logging.Logger) (*CredentialBroker, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	// Fall back to us-east-1 so STS and EC2 clients can always be built.
	if cfg.Region == "" {
		cfg.Region = DefaultHomeRegion
	}

	return NewCredentialBroker(cfg, NewSTSClient, sessionName, logger), nil
}

// NewCredentialBroker creates a CredentialBroker with a provided STS factory
func NewCredentialBroker(cfg aws.Config, newSTS STSClientFactory, sessionName string, logger logging.Logger) *CredentialBroker {
	return &CredentialBroker{
		baseConfig:  cfg,
		newSTS:      newSTS,
		sessionName: sessionName,
		logger:      logger,
	}
}

// NewSTSClient is the production STSClientFactory. Legacy mode resolves the
// global endpoint, which does not accept sessions for opt-in regions.
func NewSTSClient(cfg aws.Config, mode config.STSEndpointMode) STSClientAPI {
	return sts.NewFromConfig(cfg, func(o *sts.Options) {
		if mode == config.STSLegacy {
			o.Region = globalSTSRegion
		}
	})
}

// Assume exchanges accountID and role for temporary credentials. Every
// failure is an auth error; there is no retry beyond the SDK's own.
func (b *CredentialBroker) Assume(ctx context.Context, accountID string, role config.RoleReference, mode config.STSEndpointMode) (*Session, error) {
	if err := role.Validate(); err != nil {
		return nil, teardown.NewAuthError(teardown.ReasonInvalidReference, "invalid role reference", err)
	}

	client := b.newSTS(b.baseConfig, mode)

	roleARN, partition, err := b.resolveRoleARN(ctx, client, accountID, role)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("Assuming role %s (session %s, STS endpoint mode %s)", roleARN, b.sessionName, mode)

	out, err := client.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(b.sessionName),
	})
	if err != nil {
		return nil, teardown.NewAuthError(teardown.ReasonAssumeRoleFailed,
			fmt.Sprintf("failed to assume role %s", roleARN),
			ClassifyAWSError(err, ResourceTypeRole, roleARN))
	}
	if out.Credentials == nil {
		return nil, teardown.NewAuthError(teardown.ReasonAssumeRoleFailed,
			fmt.Sprintf("assume role %s returned no credentials", roleARN), nil)
	}

	if out.AssumedRoleUser != nil {
		b.logger.Debug("Assumed identity for account %s is %s", accountID, aws.ToString(out.AssumedRoleUser.Arn))
	}

	creds := out.Credentials
	cfg := b.baseConfig.Copy()
	cfg.Credentials = credentials.NewStaticCredentialsProvider(
		aws.ToString(creds.AccessKeyId),
		aws.ToString(creds.SecretAccessKey),
		aws.ToString(creds.SessionToken),
	)

	session := NewSession(accountID, roleARN, partition, cfg)
	session.Expires = aws.ToTime(creds.Expiration)
	return session, nil
}

// resolveRoleARN returns the full role ARN and its partition. A bare role
// name is qualified with the partition of the caller's own identity.
func (b *CredentialBroker) resolveRoleARN(ctx context.Context, client STSClientAPI, accountID string, role config.RoleReference) (string, string, error) {
	if role.ARN != "" {
		parsed, err := arn.Parse(role.ARN)
		if err != nil {
			return "", "", teardown.NewAuthError(teardown.ReasonInvalidReference, "invalid role ARN", err)
		}
		if parsed.AccountID != accountID {
			return "", "", teardown.NewAuthError(teardown.ReasonInvalidReference,
				fmt.Sprintf("role ARN %s belongs to account %s, not target account %s", role.ARN, parsed.AccountID, accountID), nil)
		}
		return role.ARN, parsed.Partition, nil
	}

	identity, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", "", teardown.NewAuthError(teardown.ReasonAssumeRoleFailed,
			"failed to resolve caller identity", ClassifyAWSError(err, ResourceTypeRole, ""))
	}

	callerARN := aws.ToString(identity.Arn)
	b.logger.Debug("Main identity is %s", callerARN)

	parsed, err := arn.Parse(callerARN)
	if err != nil {
		return "", "", teardown.NewAuthError(teardown.ReasonAssumeRoleFailed,
			fmt.Sprintf("caller identity %q is not an ARN", callerARN), err)
	}

	return RoleARN(parsed.Partition, accountID, role.Name), parsed.Partition, nil
}

// RoleARN builds arn:<partition>:iam::<account>:role/<name>.
func RoleARN(partition, accountID, roleName string) string {
	return arn.ARN{
		Partition: partition,
		Service:   "iam",
		AccountID: accountID,
		Resource:  "role/" + roleName,
	}.String()
}

var sessionNameInvalidChars = regexp.MustCompile(`[^\w+=,.@-]`)

// SessionName derives an STS role session name from the calling function or
// binary name and a timestamp.
func SessionName(caller string, now time.Time) string {
	caller = sessionNameInvalidChars.ReplaceAllString(strings.TrimSpace(caller), "-")
	if caller == "" {
		caller = "defaultvpc"
	}

	suffix := "-" + now.UTC().Format("20060102T150405Z")
	if len(caller)+len(suffix) > maxSessionNameLength {
		caller = caller[:maxSessionNameLength-len(suffix)]
	}
	return caller + suffix
}
