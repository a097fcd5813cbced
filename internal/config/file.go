package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"defaultvpc/pkg/logging"
)

type DefaultFileLoader struct {
	logger logging.Logger
}

// NewDefaultFileLoader creates a new instance of DefaultFileLoader
func NewDefaultFileLoader() *DefaultFileLoader {
	return NewFileLoaderWithLogger(
		logging.NewDefaultLogger(),
	)
}

// NewFileLoaderWithLogger creates a new instance of DefaultFileLoader with a specific logger
func NewFileLoaderWithLogger(logger logging.Logger) *DefaultFileLoader {
	return &DefaultFileLoader{
		logger: logger,
	}
}

// ParseFile parses an HCL settings file.
func (p DefaultFileLoader) ParseFile(path string) (*FileSettings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)

	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	if file == nil || file.Body == nil {
		return nil, fmt.Errorf("parsed HCL file is empty or invalid: %s", path)
	}

	var settings FileSettings
	diags = gohcl.DecodeBody(file.Body, nil, &settings)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL body %s: %s", path, diags.Error())
	}

	p.logger.Debug("Loaded settings file %s", path)
	return &settings, nil
}
