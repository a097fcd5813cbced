package report

import (
	"io"

	"defaultvpc/internal/models"
)

// IPrinter is the interface for generating reports
//
//go:generate mockery --name=IPrinter --output=./mocks
type IPrinter interface {
	PrintReport(w io.Writer, result *models.InvocationResult, format OutputFormatType) error
}
