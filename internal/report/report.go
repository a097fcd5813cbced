package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"defaultvpc/internal/models"
	"defaultvpc/internal/teardown"
)

// OutputFormatType defines the format types for the invocation report.
type OutputFormatType string

const (
	// OutputFormatTypeJSON represents JSON output format
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeTABLE represents table output format
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
)

// ParseOutputFormat converts a user supplied format name, defaulting to table.
func ParseOutputFormat(format string) OutputFormatType {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case string(OutputFormatTypeJSON):
		return OutputFormatTypeJSON
	default:
		return OutputFormatTypeTABLE
	}
}

// InvocationReport is the structured view of an InvocationResult returned to
// the Lambda runtime and printed by the CLI in JSON mode.
type InvocationReport struct {
	AccountID       string         `json:"account_id"`
	DryRun          bool           `json:"dry_run"`
	Processed       int            `json:"regions_processed"`
	Deleted         int            `json:"regions_deleted"`
	Simulated       int            `json:"regions_simulated"`
	Skipped         int            `json:"regions_without_default_vpc"`
	Failed          int            `json:"regions_failed"`
	Regions         []RegionReport `json:"regions"`
	StartedAt       time.Time      `json:"started_at"`
	FinishedAt      time.Time      `json:"finished_at"`
	DurationSeconds float64        `json:"duration_seconds"`
}

// RegionReport is the outcome of one region.
type RegionReport struct {
	Region             string               `json:"region"`
	Status             models.OutcomeStatus `json:"status"`
	VPCID              string               `json:"vpc_id,omitempty"`
	DeletedResourceIDs []string             `json:"deleted_resource_ids"`
	Error              *ErrorReport         `json:"error,omitempty"`
}

// ErrorReport is the structured form of a region error.
type ErrorReport struct {
	Kind    string `json:"kind,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// NewInvocationReport converts result into its report form.
func NewInvocationReport(result *models.InvocationResult) InvocationReport {
	if result == nil {
		return InvocationReport{Regions: []RegionReport{}}
	}

	report := InvocationReport{
		AccountID:  result.AccountID,
		DryRun:     result.DryRun,
		Processed:  result.Processed,
		Deleted:    result.Deleted,
		Simulated:  result.Simulated,
		Skipped:    result.Skipped,
		Failed:     result.Failed,
		Regions:    make([]RegionReport, 0, len(result.Regions)),
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
	}
	if !result.StartedAt.IsZero() && !result.FinishedAt.IsZero() {
		report.DurationSeconds = result.FinishedAt.Sub(result.StartedAt).Seconds()
	}

	for _, r := range result.Regions {
		ids := r.DeletedResourceIDs
		if ids == nil {
			ids = []string{}
		}
		report.Regions = append(report.Regions, RegionReport{
			Region:             r.Region,
			Status:             r.Status,
			VPCID:              r.VPCID,
			DeletedResourceIDs: ids,
			Error:              newErrorReport(r.Err),
		})
	}

	return report
}

func newErrorReport(err error) *ErrorReport {
	if err == nil {
		return nil
	}

	var tdErr *teardown.Error
	if errors.As(err, &tdErr) {
		return &ErrorReport{Kind: string(tdErr.Kind), Reason: tdErr.Reason, Message: err.Error()}
	}
	return &ErrorReport{Message: err.Error()}
}

// PrintReport writes the report for result to w using the specified output format.
// Supported formats: "json" (machine-readable) and "table" (human-friendly).
func PrintReport(w io.Writer, result *models.InvocationResult, outputFormat OutputFormatType) error {
	report := NewInvocationReport(result)

	switch outputFormat {
	case OutputFormatTypeJSON:
		return printJSONReport(w, report)
	case OutputFormatTypeTABLE:
		return printTableReport(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// printJSONReport prints the report in JSON format
func printJSONReport(w io.Writer, report InvocationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printTableReport prints the report in a human-friendly table format
func printTableReport(w io.Writer, report InvocationReport) error {
	writer := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	mode := "LIVE"
	if report.DryRun {
		mode = "DRY RUN"
	}

	fmt.Fprintf(writer, "\nACCOUNT:\t%s\n", report.AccountID)
	fmt.Fprintf(writer, "MODE:\t%s\n\n", mode)
	fmt.Fprintln(writer, "REGION\tSTATUS\tVPC ID\tDELETED\tERROR")
	fmt.Fprintln(writer, "------\t------\t------\t-------\t-----")

	for _, r := range report.Regions {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			r.Region,
			r.Status,
			valueOrDash(r.VPCID),
			len(r.DeletedResourceIDs),
			errorForTable(r.Error))
	}

	fmt.Fprintln(writer, "")
	fmt.Fprintf(writer, "Summary: %d regions processed, %d deleted, %d simulated, %d without default VPC, %d failed\n",
		report.Processed, report.Deleted, report.Simulated, report.Skipped, report.Failed)
	if !report.StartedAt.IsZero() && !report.FinishedAt.IsZero() {
		fmt.Fprintf(writer, "Elapsed: %s\n", strings.TrimSpace(humanize.RelTime(report.StartedAt, report.FinishedAt, "", "")))
	}

	return writer.Flush()
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// errorForTable keeps table rows on one line.
func errorForTable(e *ErrorReport) string {
	if e == nil {
		return ""
	}
	return strings.ReplaceAll(e.Message, "\n", " ")
}

// DefaultPrinter is the default implementation of the report printer
type DefaultPrinter struct{}

// PrintReport implements the printer interface
func (p DefaultPrinter) PrintReport(w io.Writer, result *models.InvocationResult, format OutputFormatType) error {
	return PrintReport(w, result, format)
}
