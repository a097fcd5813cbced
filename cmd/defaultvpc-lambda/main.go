package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"defaultvpc/internal/config"
	"defaultvpc/internal/handler"
	"defaultvpc/internal/orchestrator"
	aws "defaultvpc/internal/providers/aws"
	"defaultvpc/internal/version"
	"defaultvpc/pkg/logging"
)

func main() {
	logger := logging.NewDefaultLogger()

	// Settings are read once per cold start.
	settings, err := config.Load(nil, "", os.LookupEnv)
	if err != nil {
		logger.Critical("Invalid configuration: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(settings.LogLevel)
	logger.Info("Starting defaultvpc %s", version.String())

	sessionName := aws.SessionName(os.Getenv("AWS_LAMBDA_FUNCTION_NAME"), time.Now())
	service, err := orchestrator.NewDefaultService(context.Background(), sessionName, logger)
	if err != nil {
		logger.Critical("Failed to initialize: %v", err)
		os.Exit(1)
	}

	lambda.Start(handler.New(settings, service, logger).Handle)
}
