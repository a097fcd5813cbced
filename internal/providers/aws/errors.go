package aws

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

type ErrorCategory string

// Error categories for better error classification and handling
const (
	// ErrResourceNotFound is returned when a requested AWS resource doesn't exist
	ErrResourceNotFound ErrorCategory = "resource_not_found"

	// ErrNotAttached is returned when detaching a gateway that is already detached
	ErrNotAttached ErrorCategory = "not_attached"

	// ErrDependencyViolation is returned when a resource is still referenced
	ErrDependencyViolation ErrorCategory = "dependency_violation"

	// ErrPermissionDenied is returned when AWS API access is denied
	ErrPermissionDenied ErrorCategory = "permission_denied"

	// ErrRegionDisabled is returned when calling into a region the account has not enabled
	ErrRegionDisabled ErrorCategory = "region_disabled"

	// ErrThrottling is returned when AWS API throttles the request
	ErrThrottling ErrorCategory = "request_throttled"

	// ErrConfigurationError is returned when there's an issue with AWS configuration
	ErrConfigurationError ErrorCategory = "configuration_error"

	// ErrNetworkError is returned for network-related errors accessing AWS API
	ErrNetworkError ErrorCategory = "network_error"

	// ErrInvalidInput is returned when invalid input is provided
	ErrInvalidInput ErrorCategory = "invalid_input"

	// ErrInternalError is returned for unexpected internal errors
	ErrInternalError ErrorCategory = "internal_error"
)

// Resource types used in error context and log lines
const (
	ResourceTypeRegion          = "region"
	ResourceTypeRole            = "iam-role"
	ResourceTypeVPC             = "vpc"
	ResourceTypeInternetGateway = "internet-gateway"
	ResourceTypeRouteTable      = "route-table"
	ResourceTypeSubnet          = "subnet"
	ResourceTypeNetworkACL      = "network-acl"
	ResourceTypeSecurityGroup   = "security-group"
)

// Error represents an error that occurred during AWS operations with
// additional context about what went wrong.
type Error struct {
	// Category for programmatic error handling
	Category ErrorCategory

	// Code is the AWS error code when the SDK reported one
	Code string

	// ResourceType identifies the AWS resource type (e.g., vpc, subnet)
	ResourceType string

	// ResourceID identifies the specific resource ID when applicable
	ResourceID string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns a formatted error message
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Category, e.Message)
	if e.ResourceID != "" {
		msg = fmt.Sprintf("%s [resource: %s/%s]", msg, e.ResourceType, e.ResourceID)
	} else if e.ResourceType != "" {
		msg = fmt.Sprintf("%s [resource type: %s]", msg, e.ResourceType)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewAWSError creates a new AWS error with the specified details
func NewAWSError(category ErrorCategory, resourceType, resourceID, message string, underlying error) *Error {
	return &Error{
		Category:     category,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
		Underlying:   underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific error category
func IsErrorCategory(err error, category ErrorCategory) bool {
	if err == nil {
		return false
	}

	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr.Category == category
	}

	return false
}

// ClassifyAWSError classifies an AWS error using the API error code when the
// SDK provides one, falling back to the error message.
func ClassifyAWSError(err error, resourceType, resourceID string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}

	code := ""
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.ErrorCode()
	}

	classified := classify(code, err.Error(), resourceType, resourceID, err)
	classified.Code = code
	return classified
}

func classify(code, errMsg, resourceType, resourceID string, err error) *Error {
	// Reference: https://docs.aws.amazon.com/AWSEC2/latest/APIReference/errors-overview.html
	subject := code
	if subject == "" {
		subject = errMsg
	}

	switch {
	case strings.HasSuffix(code, ".NotFound") ||
		contains(subject, ".NotFound", "InvalidResource"):
		return NewAWSError(ErrResourceNotFound, resourceType, resourceID,
			"Resource not found", err)

	case contains(subject, "Gateway.NotAttached"):
		return NewAWSError(ErrNotAttached, resourceType, resourceID,
			"Gateway not attached", err)

	case contains(subject, "DependencyViolation"):
		return NewAWSError(ErrDependencyViolation, resourceType, resourceID,
			"Resource has dependent objects", err)

	case contains(subject, "OptInRequired"):
		return NewAWSError(ErrRegionDisabled, resourceType, resourceID,
			"Region is not enabled for the account", err)

	case contains(subject, "UnauthorizedOperation", "AuthFailure", "AccessDenied",
		"InvalidClientTokenId", "ExpiredToken"):
		return NewAWSError(ErrPermissionDenied, resourceType, resourceID,
			"Access denied", err)

	case contains(subject, "RequestLimitExceeded", "Throttling"):
		return NewAWSError(ErrThrottling, resourceType, resourceID,
			"Request throttled", err)

	case contains(subject, "InvalidParameter", "ValidationError", "MalformedQueryString"):
		return NewAWSError(ErrInvalidInput, resourceType, resourceID,
			"Invalid input", err)

		// Fall back to string-based analysis for non-API errors
	case contains(errMsg, "no such host", "connection refused", "timeout"):
		return NewAWSError(ErrNetworkError, resourceType, resourceID,
			"Network error while accessing AWS API", err)

	case contains(errMsg, "could not find region", "failed to retrieve credentials"):
		return NewAWSError(ErrConfigurationError, resourceType, resourceID,
			"AWS SDK configuration error", err)

	default:
		return NewAWSError(ErrInternalError, resourceType, resourceID,
			"Internal error occurred", err)
	}
}

// contains checks if the error message contains any of the provided substrings
func contains(s string, substrings ...string) bool {
	for _, substr := range substrings {
		if strings.Contains(strings.ToLower(s), strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
