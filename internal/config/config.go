package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"

	"defaultvpc/internal/teardown"
	"defaultvpc/pkg/logging"
)

// Environment variables read at process start.
const (
	EnvLogLevel        = "LOG_LEVEL"
	EnvDryRun          = "DRY_RUN"
	EnvMaxWorkers      = "MAX_WORKERS"
	EnvAssumeRoleName  = "ASSUME_ROLE_NAME"
	EnvSTSEndpointMode = "AWS_STS_REGIONAL_ENDPOINTS"
)

const (
	DefaultMaxWorkers     = 20
	DefaultAssumeRoleName = "OrganizationAccountAccessRole"
)

// STSEndpointMode selects how the STS endpoint for AssumeRole is resolved.
type STSEndpointMode string

const (
	// STSRegional uses the STS endpoint of the configured region. Required for
	// sessions used in opt-in regions.
	STSRegional STSEndpointMode = "regional"

	// STSLegacy uses the global sts.amazonaws.com endpoint.
	STSLegacy STSEndpointMode = "legacy"
)

// ParseSTSEndpointMode parses mode case-insensitively.
func ParseSTSEndpointMode(mode string) (STSEndpointMode, error) {
	switch STSEndpointMode(strings.ToLower(strings.TrimSpace(mode))) {
	case STSRegional:
		return STSRegional, nil
	case STSLegacy:
		return STSLegacy, nil
	default:
		return "", teardown.NewUsageError(teardown.ReasonInvalidParameter,
			fmt.Sprintf("unsupported STS endpoint mode %q (want regional or legacy)", mode))
	}
}

// LookupFunc matches os.LookupEnv. Injected so nothing below the entrypoints
// reads the process environment.
type LookupFunc func(key string) (string, bool)

// Settings are the process-wide knobs resolved once at start-up from
// defaults, an optional HCL file and the environment.
type Settings struct {
	DryRun          bool
	MaxWorkers      int
	LogLevel        logging.LogLevel
	AssumeRoleName  string
	STSEndpointMode STSEndpointMode
	Regions         []string
}

// DefaultSettings returns the settings used when nothing overrides them.
// Dry run is on by default.
func DefaultSettings() Settings {
	return Settings{
		DryRun:          true,
		MaxWorkers:      DefaultMaxWorkers,
		LogLevel:        logging.INFO,
		AssumeRoleName:  DefaultAssumeRoleName,
		STSEndpointMode: STSRegional,
	}
}

// ApplyFile overlays the attributes present in f.
func (s Settings) ApplyFile(f *FileSettings) (Settings, error) {
	if f == nil {
		return s, nil
	}

	if f.DryRun != nil {
		s.DryRun = *f.DryRun
	}
	if f.MaxWorkers != nil {
		s.MaxWorkers = *f.MaxWorkers
	}
	if f.LogLevel != nil {
		level, err := logging.ParseLogLevel(*f.LogLevel)
		if err != nil {
			return s, teardown.NewUsageError(teardown.ReasonInvalidParameter, err.Error())
		}
		s.LogLevel = level
	}
	if f.AssumeRoleName != nil {
		s.AssumeRoleName = strings.TrimSpace(*f.AssumeRoleName)
	}
	if f.STSEndpointMode != nil {
		mode, err := ParseSTSEndpointMode(*f.STSEndpointMode)
		if err != nil {
			return s, err
		}
		s.STSEndpointMode = mode
	}
	if len(f.Regions) > 0 {
		s.Regions = append([]string(nil), f.Regions...)
	}

	return s, s.validate()
}

// ApplyEnv overlays the environment variables that are set.
func (s Settings) ApplyEnv(lookup LookupFunc) (Settings, error) {
	if lookup == nil {
		return s, s.validate()
	}

	if v, ok := lookup(EnvLogLevel); ok {
		// An unknown level falls back to INFO rather than failing start-up.
		s.LogLevel = logging.StringToLogLevel(v)
	}
	if v, ok := lookup(EnvDryRun); ok {
		s.DryRun = strings.EqualFold(strings.TrimSpace(v), "true")
	}
	if v, ok := lookup(EnvMaxWorkers); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return s, teardown.NewUsageError(teardown.ReasonInvalidParameter,
				fmt.Sprintf("%s must be an integer, got %q", EnvMaxWorkers, v))
		}
		s.MaxWorkers = n
	}
	if v, ok := lookup(EnvAssumeRoleName); ok && strings.TrimSpace(v) != "" {
		s.AssumeRoleName = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvSTSEndpointMode); ok && strings.TrimSpace(v) != "" {
		mode, err := ParseSTSEndpointMode(v)
		if err != nil {
			return s, err
		}
		s.STSEndpointMode = mode
	}

	return s, s.validate()
}

// Load resolves settings from defaults, the optional file at path and the
// environment, in increasing order of precedence.
func Load(loader FileLoader, path string, lookup LookupFunc) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		f, err := loader.ParseFile(path)
		if err != nil {
			return s, teardown.NewUsageError(teardown.ReasonInvalidParameter, err.Error())
		}
		if s, err = s.ApplyFile(f); err != nil {
			return s, err
		}
	}

	return s.ApplyEnv(lookup)
}

func (s Settings) validate() error {
	if s.MaxWorkers < 1 {
		return teardown.NewUsageError(teardown.ReasonInvalidParameter,
			fmt.Sprintf("max workers must be at least 1, got %d", s.MaxWorkers))
	}
	return nil
}

// RoleReference names the role to assume: either a bare role name or a full
// role ARN, never both.
type RoleReference struct {
	Name string
	ARN  string
}

// String returns whichever form is set.
func (r RoleReference) String() string {
	if r.ARN != "" {
		return r.ARN
	}
	return r.Name
}

// Validate checks that exactly one form is present and well-formed.
func (r RoleReference) Validate() error {
	name, roleARN := strings.TrimSpace(r.Name), strings.TrimSpace(r.ARN)

	switch {
	case name == "" && roleARN == "":
		return teardown.NewUsageError(teardown.ReasonInvalidReference,
			"one of assume role name or assume role ARN is required")
	case name != "" && roleARN != "":
		return teardown.NewUsageError(teardown.ReasonInvalidReference,
			"assume role name and assume role ARN are mutually exclusive")
	case roleARN != "":
		parsed, err := arn.Parse(roleARN)
		if err != nil || parsed.Service != "iam" || !strings.HasPrefix(parsed.Resource, "role/") {
			return teardown.NewUsageError(teardown.ReasonInvalidReference,
				fmt.Sprintf("%q is not an IAM role ARN", roleARN))
		}
	case strings.ContainsAny(name, ":/ "):
		return teardown.NewUsageError(teardown.ReasonInvalidReference,
			fmt.Sprintf("%q is not a bare IAM role name", name))
	}

	return nil
}

var accountIDPattern = regexp.MustCompile(`^[0-9]{12}$`)

// Request is one validated invocation of the engine. Build it with
// NewRequest and pass it by value.
type Request struct {
	TargetAccountID string
	Role            RoleReference
	DryRun          bool
	MaxWorkers      int
	LogLevel        logging.LogLevel
	STSEndpointMode STSEndpointMode

	// Regions restricts processing to these region codes. Empty means every
	// eligible region in the catalog.
	Regions []string
}

// NewRequest builds a Request for accountID from settings and validates it.
func NewRequest(accountID string, role RoleReference, s Settings) (Request, error) {
	req := Request{
		TargetAccountID: strings.TrimSpace(accountID),
		Role: RoleReference{
			Name: strings.TrimSpace(role.Name),
			ARN:  strings.TrimSpace(role.ARN),
		},
		DryRun:          s.DryRun,
		MaxWorkers:      s.MaxWorkers,
		LogLevel:        s.LogLevel,
		STSEndpointMode: s.STSEndpointMode,
		Regions:         normalizeRegions(s.Regions),
	}

	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// WithRegions returns a copy of r restricted to regions.
func (r Request) WithRegions(regions []string) Request {
	r.Regions = normalizeRegions(regions)
	return r
}

// Validate reports the first problem with r as a usage error.
func (r Request) Validate() error {
	if !accountIDPattern.MatchString(r.TargetAccountID) {
		return teardown.NewUsageError(teardown.ReasonInvalidParameter,
			fmt.Sprintf("target account ID must be 12 digits, got %q", r.TargetAccountID))
	}
	if err := r.Role.Validate(); err != nil {
		return err
	}
	if r.MaxWorkers < 1 {
		return teardown.NewUsageError(teardown.ReasonInvalidParameter,
			fmt.Sprintf("max workers must be at least 1, got %d", r.MaxWorkers))
	}
	if _, err := ParseSTSEndpointMode(string(r.STSEndpointMode)); err != nil {
		return err
	}
	return nil
}

// normalizeRegions trims, lower-cases and deduplicates region codes.
func normalizeRegions(regions []string) []string {
	if len(regions) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(regions))
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		code := strings.ToLower(strings.TrimSpace(r))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}
