// Package event turns the EventBridge events that trigger the Lambda
// entrypoint into one of a closed set of typed variants.
package event

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"defaultvpc/internal/teardown"
)

// EventBridge detail types and CloudTrail event names that are handled.
const (
	DetailTypeServiceEvent  = "AWS Service Event via CloudTrail"
	DetailTypeAPICall       = "AWS API Call via CloudTrail"
	DetailTypeRegionOptedIn = "Region Opt-In Status Change"

	EventNameCreateAccountResult = "CreateAccountResult"
	EventNameInviteAccount       = "InviteAccountToOrganization"
)

// Event is a supported trigger. The concrete types are AccountCreated,
// AccountInvited and RegionOptedIn.
type Event interface {
	// Account is the ID of the account to clean up.
	Account() string

	// Regions restricts processing. Nil means every eligible region.
	Regions() []string

	isEvent()
}

// AccountCreated is a successful CreateAccount in the organization.
type AccountCreated struct {
	AccountID string
}

func (e AccountCreated) Account() string   { return e.AccountID }
func (e AccountCreated) Regions() []string { return nil }
func (AccountCreated) isEvent()            {}

// AccountInvited is an existing account invited to the organization.
type AccountInvited struct {
	AccountID string
}

func (e AccountInvited) Account() string   { return e.AccountID }
func (e AccountInvited) Regions() []string { return nil }
func (AccountInvited) isEvent()            {}

// RegionOptedIn is an account enabling an opt-in region. Only that region
// is processed.
type RegionOptedIn struct {
	AccountID string
	Region    string
}

func (e RegionOptedIn) Account() string   { return e.AccountID }
func (e RegionOptedIn) Regions() []string { return []string{e.Region} }
func (RegionOptedIn) isEvent()            {}

// cloudTrailDetail holds the detail fields read from CloudTrail events.
type cloudTrailDetail struct {
	EventName           string `json:"eventName"`
	ServiceEventDetails struct {
		CreateAccountStatus struct {
			AccountID string `json:"accountId"`
		} `json:"createAccountStatus"`
	} `json:"serviceEventDetails"`
	RequestParameters struct {
		Target struct {
			ID string `json:"id"`
		} `json:"target"`
	} `json:"requestParameters"`
}

// regionOptInDetail holds the detail fields of a region opt-in event.
type regionOptInDetail struct {
	AccountID  string `json:"accountId"`
	RegionName string `json:"regionName"`
}

// Parse maps e to its variant. Unsupported or incomplete events are usage
// errors.
func Parse(e events.CloudWatchEvent) (Event, error) {
	switch e.DetailType {
	case DetailTypeServiceEvent, DetailTypeAPICall:
		return parseCloudTrail(e)
	case DetailTypeRegionOptedIn:
		return parseRegionOptIn(e)
	default:
		return nil, unsupported(fmt.Sprintf("unsupported event detail type %q", e.DetailType))
	}
}

func parseCloudTrail(e events.CloudWatchEvent) (Event, error) {
	var detail cloudTrailDetail
	if err := decodeDetail(e, &detail); err != nil {
		return nil, err
	}

	switch detail.EventName {
	case EventNameCreateAccountResult:
		id := strings.TrimSpace(detail.ServiceEventDetails.CreateAccountStatus.AccountID)
		if id == "" {
			return nil, unsupported("CreateAccountResult event has no account ID")
		}
		return AccountCreated{AccountID: id}, nil

	case EventNameInviteAccount:
		id := strings.TrimSpace(detail.RequestParameters.Target.ID)
		if id == "" {
			return nil, unsupported("InviteAccountToOrganization event has no target ID")
		}
		return AccountInvited{AccountID: id}, nil

	default:
		return nil, unsupported(fmt.Sprintf("unsupported CloudTrail event %q", detail.EventName))
	}
}

func parseRegionOptIn(e events.CloudWatchEvent) (Event, error) {
	var detail regionOptInDetail
	if err := decodeDetail(e, &detail); err != nil {
		return nil, err
	}

	account := strings.TrimSpace(detail.AccountID)
	if account == "" {
		account = strings.TrimSpace(e.AccountID)
	}
	region := strings.TrimSpace(detail.RegionName)

	if account == "" || region == "" {
		return nil, unsupported("region opt-in event needs an account ID and a region name")
	}
	return RegionOptedIn{AccountID: account, Region: region}, nil
}

func decodeDetail(e events.CloudWatchEvent, v any) error {
	if len(e.Detail) == 0 {
		return unsupported(fmt.Sprintf("%s event has no detail", e.DetailType))
	}
	if err := json.Unmarshal(e.Detail, v); err != nil {
		return unsupported(fmt.Sprintf("malformed %s event detail: %v", e.DetailType, err))
	}
	return nil
}

func unsupported(msg string) error {
	return teardown.NewUsageError(teardown.ReasonUnsupportedEvent, msg)
}
