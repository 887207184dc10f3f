package main

import (
	"context"
	"os"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/command"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/logger"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	logger.BuildLogger(false)

	ctx, cancel := context.WithCancel(context.Background())

	settings, err := telemetry.ParseSettings()
	if err != nil {
		zap.L().Error("Failed to read the telemetry settings", zap.Error(err))
		os.Exit(command.ExitConfigurationError)
	}

	shutdown, err := telemetry.Setup(ctx, settings)
	if err != nil {
		zap.L().Error("Failed to start telemetry", zap.Error(err))
		os.Exit(command.ExitError)
	}

	code := command.Execute(ctx, os.Args[1:])

	if err := shutdown(context.Background()); err != nil {
		zap.L().Warn("Failed to flush telemetry", zap.Error(err))
	}

	_ = zap.L().Sync()
	cancel()
	os.Exit(code)
}
