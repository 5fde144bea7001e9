// main.go
package main

import (
	"github.com/CodeMonkeyCybersecurity/coolifyctl/cmd"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/telemetry"
	"go.uber.org/zap"
)

func main() {
	logger.InitializeWithFallback()

	if err := telemetry.Init("coolifyctl"); err != nil {
		logger.L().Warn("Telemetry initialization failed", zap.Error(err))
	}

	cmd.Execute()
}
