package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"defaultvpc/internal/config"
	"defaultvpc/internal/models"
	"defaultvpc/internal/orchestrator"
	"defaultvpc/internal/report"
	"defaultvpc/internal/teardown"
	"defaultvpc/internal/version"
	"defaultvpc/pkg/logging"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// runner executes one teardown request
type runner interface {
	Run(ctx context.Context, req config.Request) (*models.InvocationResult, error)
}

// serviceFactory builds the runner once flags and settings are validated.
type serviceFactory func(ctx context.Context, sessionName string, logger logging.Logger) (runner, error)

func defaultServiceFactory(ctx context.Context, sessionName string, logger logging.Logger) (runner, error) {
	return orchestrator.NewDefaultService(ctx, sessionName, logger)
}

// options holds the parsed command-line flags
type options struct {
	targetAccountID string
	roleARN         string
	roleName        string
	dryRun          bool
	debug           bool
	configPath      string
	regions         []string
	maxWorkers      int
	output          string
}

// app wires the root command to its environment so tests can swap it.
type app struct {
	stdout      io.Writer
	stderr      io.Writer
	lookupEnv   config.LookupFunc
	newService  serviceFactory
	sessionName string
	spinner     bool

	// started is set once flag validation passed and the command body runs.
	started bool
}

// execute runs the CLI with args and returns the process exit code.
func (a *app) execute(args []string) int {
	cmd := a.rootCommand()
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case !a.started || teardown.IsKind(err, teardown.KindUsage):
		return exitUsage
	default:
		return exitFailure
	}
}

func (a *app) rootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "defaultvpc",
		Short: "Delete the default VPC in every enabled region of an AWS account",
		Long: `defaultvpc assumes a role in the target account and removes the default VPC
and its dependent resources from every region the account has enabled.

Runs are simulated unless dry run is disabled with --dry-run=false or DRY_RUN=false.`,
		Version: version.String(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.started = true
			// Usage is only useful for flag errors.
			cmd.SilenceUsage = true
			return a.run(cmd, opts)
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.targetAccountID, "target-account-id", "", "12-digit ID of the account to clean up")
	flags.StringVar(&opts.roleARN, "assume-role-arn", "", "Full ARN of the role to assume in the target account")
	flags.StringVar(&opts.roleName, "assume-role-name", "", "Name of the role to assume in the target account")
	flags.BoolVar(&opts.dryRun, "dry-run", true, "Only report what would be deleted")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.configPath, "config", "", "Path to an HCL settings file")
	flags.StringSliceVar(&opts.regions, "regions", nil, "Comma-separated regions to process instead of every enabled region")
	flags.IntVar(&opts.maxWorkers, "max-workers", config.DefaultMaxWorkers, "Maximum number of regions processed concurrently")
	flags.StringVar(&opts.output, "output", "table", "Output format: table or json")

	_ = cmd.MarkFlagRequired("target-account-id")
	cmd.MarkFlagsMutuallyExclusive("assume-role-arn", "assume-role-name")
	cmd.MarkFlagsOneRequired("assume-role-arn", "assume-role-name")

	return cmd
}

// run resolves settings, builds the request and executes it. Precedence is
// flags, then environment, then the settings file, then defaults.
func (a *app) run(cmd *cobra.Command, opts *options) error {
	logger := logging.NewLogger(a.stderr, logging.INFO)

	settings, err := config.Load(config.NewFileLoaderWithLogger(logger), opts.configPath, a.lookupEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		settings.DryRun = opts.dryRun
	}
	if flags.Changed("max-workers") {
		settings.MaxWorkers = opts.maxWorkers
	}
	if flags.Changed("regions") {
		settings.Regions = opts.regions
	}
	if opts.debug {
		settings.LogLevel = logging.DEBUG
	}
	logger.SetLevel(settings.LogLevel)

	role := config.RoleReference{Name: opts.roleName, ARN: opts.roleARN}
	req, err := config.NewRequest(opts.targetAccountID, role, settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	service, err := a.newService(ctx, a.sessionName, logger)
	if err != nil {
		return err
	}

	var sp *spinner.Spinner
	if a.spinner && !opts.debug {
		sp = startSpinner(a.stderr, req)
	}

	result, err := service.Run(ctx, req)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	if err := report.PrintReport(a.stdout, result, report.ParseOutputFormat(opts.output)); err != nil {
		return fmt.Errorf("error generating report: %w", err)
	}

	if result.HasFailures() {
		logger.Warn("%d of %d regions failed; see the report for details", result.Failed, result.Processed)
	}
	return nil
}

// startSpinner creates and starts a spinner for the duration of a run
func startSpinner(w io.Writer, req config.Request) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = fmt.Sprintf(" Removing default VPCs from account %s ...", req.TargetAccountID)
	if req.DryRun {
		s.Suffix = fmt.Sprintf(" Simulating default VPC removal for account %s ...", req.TargetAccountID)
	}
	s.Start()
	return s
}
