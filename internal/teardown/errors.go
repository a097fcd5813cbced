package teardown

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how far it propagates.
type Kind string

const (
	// KindUsage represents malformed or contradictory invocation parameters.
	// Reported before any provider call is made.
	KindUsage Kind = "usage_error"

	// KindAuth represents credential broker failures. Fatal for the invocation.
	KindAuth Kind = "auth_error"

	// KindInvariant represents a provider response that violates an assumed
	// invariant. Fatal for one region only.
	KindInvariant Kind = "invariant_error"

	// KindDeletion represents a failed delete call. Fatal for the remaining
	// steps of one region only.
	KindDeletion Kind = "deletion_error"

	// KindDiscovery represents a failed describe call while listing regions or
	// building a region's resource graph.
	KindDiscovery Kind = "discovery_error"
)

// Reasons attached to errors for programmatic handling
const (
	ReasonInvalidReference    = "invalid_reference"
	ReasonInvalidParameter    = "invalid_parameter"
	ReasonUnsupportedEvent    = "unsupported_event"
	ReasonAssumeRoleFailed    = "assume_role_failed"
	ReasonMultipleDefaultVPCs = "multiple_default_vpcs"
	ReasonDeleteFailed        = "delete_failed"
	ReasonDescribeFailed      = "describe_failed"
	ReasonPanic               = "panic"
)

// Error is the structured error carried through the engine and into region
// outcomes.
type Error struct {
	// Kind decides propagation
	Kind Kind

	// Reason narrows the kind
	Reason string

	// Region is set for region-scoped errors
	Region string

	// ResourceID identifies the resource a deletion failed on (if applicable)
	ResourceID string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns the error message
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Region != "" {
		msg = fmt.Sprintf("%s (region: %s)", msg, e.Region)
	}
	if e.ResourceID != "" {
		msg = fmt.Sprintf("%s (resource: %s)", msg, e.ResourceID)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As support)
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewUsageError creates an error for invalid invocation parameters.
func NewUsageError(reason, message string) *Error {
	return &Error{Kind: KindUsage, Reason: reason, Message: message}
}

// NewAuthError creates a credential broker error.
func NewAuthError(reason, message string, underlying error) *Error {
	return &Error{Kind: KindAuth, Reason: reason, Message: message, Underlying: underlying}
}

// NewInvariantError creates a region-scoped invariant violation.
func NewInvariantError(reason, region, message string) *Error {
	return &Error{Kind: KindInvariant, Reason: reason, Region: region, Message: message}
}

// NewDeletionError creates a region-scoped deletion failure.
func NewDeletionError(region, resourceID, message string, underlying error) *Error {
	return &Error{
		Kind:       KindDeletion,
		Reason:     ReasonDeleteFailed,
		Region:     region,
		ResourceID: resourceID,
		Message:    message,
		Underlying: underlying,
	}
}

// NewDiscoveryError creates an error for a failed describe call.
func NewDiscoveryError(region, message string, underlying error) *Error {
	return &Error{
		Kind:       KindDiscovery,
		Reason:     ReasonDescribeFailed,
		Region:     region,
		Message:    message,
		Underlying: underlying,
	}
}

// IsKind checks if an error (or anything it wraps) is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}

// HasReason checks if an error (or anything it wraps) carries reason.
func HasReason(err error, reason string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason == reason
	}
	return false
}
