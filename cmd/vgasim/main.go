package main

import (
	"context"
	"fmt"
	"os"

	"pkt.systems/pslog"

	"github.com/achilleasa/gopher-console/internal/config"
)

func main() {
	loader := config.NewLoader()
	root := NewRootCommand(loader)
	logger := pslog.LoggerFromEnv(pslog.WithEnvWriter(os.Stderr))
	root.SetContext(pslog.ContextWithLogger(context.Background(), logger))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
