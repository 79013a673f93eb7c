// Command edgesaved serves the bookmark application.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/edgesaved"
)

func main() {
	cfg, err := edgesaved.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	if err := edgesaved.Run(context.Background(), cfg, nil); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
