package main

import (
	"fmt"
	"log"
	"os"

	"github.com/k-yomo/dateutil/pkg/clock"
	"go.uber.org/zap"
)

func main() {
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}

func realMain() error {
	zapConfig := zap.NewProductionConfig()
	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("initialize zap: %w", err)
	}
	defer logger.Sync()

	cmd := newRootCmd(logger, zapConfig.Level, clock.System)
	cmd.SetOut(os.Stdout)
	return cmd.Execute()
}
