// Package handler is the event-triggered entrypoint: it turns an EventBridge
// event into a teardown request and returns the structured report.
package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"defaultvpc/internal/config"
	"defaultvpc/internal/event"
	"defaultvpc/internal/models"
	"defaultvpc/internal/report"
	"defaultvpc/pkg/logging"
)

// Runner executes one teardown request
//
//go:generate mockery --name=Runner --output=./mocks
type Runner interface {
	Run(ctx context.Context, req config.Request) (*models.InvocationResult, error)
}

// Handler serves Lambda invocations with settings resolved at cold start.
type Handler struct {
	settings config.Settings
	runner   Runner
	logger   logging.Logger
}

// New creates a Handler
func New(settings config.Settings, runner Runner, logger logging.Logger) *Handler {
	return &Handler{
		settings: settings,
		runner:   runner,
		logger:   logger,
	}
}

// Handle processes one event. Only the account ID, and for region opt-in
// events the region, are taken from the payload; everything else comes from
// the settings. Region failures are reported, not returned.
func (h *Handler) Handle(ctx context.Context, e events.CloudWatchEvent) (report.InvocationReport, error) {
	h.logger.Debug("Received event %s (%s) from %s", e.ID, e.DetailType, e.Source)

	ev, err := event.Parse(e)
	if err != nil {
		h.logger.Error("Rejected event %s: %v", e.ID, err)
		return report.InvocationReport{}, err
	}
	h.logger.Info("Parsed %T event for account %s", ev, ev.Account())

	req, err := config.NewRequest(ev.Account(), config.RoleReference{Name: h.settings.AssumeRoleName}, h.settings)
	if err != nil {
		h.logger.Error("Invalid request for account %s: %v", ev.Account(), err)
		return report.InvocationReport{}, err
	}
	if regions := ev.Regions(); regions != nil {
		req = req.WithRegions(regions)
	}

	result, err := h.runner.Run(ctx, req)
	if err != nil {
		h.logger.Critical("Default VPC teardown for account %s aborted: %v", req.TargetAccountID, err)
		return report.InvocationReport{}, err
	}

	return report.NewInvocationReport(result), nil
}
