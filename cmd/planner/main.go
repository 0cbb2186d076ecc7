package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/metalflow/scheduler/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		configFile  = flag.String("config", "", "Path to YAML configuration file")
		horizonDays = flag.Int("horizon", 0, "Planning horizon in days (default 4)")
		orderIDs    = flag.String("orders", "", "Comma-separated production order IDs to plan (default all)")
		format      = flag.String("format", "text", "Output format: text, json")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ConfigFile:  *configFile,
		HorizonDays: *horizonDays,
		OrderIDs:    *orderIDs,
		Format:      *format,
		Verbose:     *verbose,
		Help:        *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
