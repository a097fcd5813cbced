package config

// FileSettings is the structure of an HCL settings file. Every attribute is
// optional; absent attributes leave the corresponding setting untouched.
// Unknown attributes are rejected by the decoder.
type FileSettings struct {
	DryRun          *bool    `hcl:"dry_run,optional"`
	MaxWorkers      *int     `hcl:"max_workers,optional"`
	LogLevel        *string  `hcl:"log_level,optional"`
	AssumeRoleName  *string  `hcl:"assume_role_name,optional"`
	STSEndpointMode *string  `hcl:"sts_endpoint_mode,optional"`
	Regions         []string `hcl:"regions,optional"`
}
