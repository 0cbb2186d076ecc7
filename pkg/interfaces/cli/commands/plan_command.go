package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/metalflow/scheduler/pkg/application/dto"
	"github.com/metalflow/scheduler/pkg/application/services/planner"
	"github.com/metalflow/scheduler/pkg/infrastructure/fixtures"
	"github.com/metalflow/scheduler/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	ConfigFile  string
	HorizonDays int
	OrderIDs    string
	Format      string
	Verbose     bool
	Help        bool
}

// fileConfig is the YAML configuration file schema. Flags take precedence
// over file values only where the flag was set to a non-default.
type fileConfig struct {
	SolveTimeLimit string `yaml:"solve_time_limit"`
	HorizonDays    int    `yaml:"horizon_days"`
}

// PlanCommand handles one planning run over the demo dataset
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	plannerConfig := planner.DefaultConfig()
	horizonDays := c.config.HorizonDays

	if c.config.ConfigFile != "" {
		fc, err := loadConfigFile(c.config.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		if fc.SolveTimeLimit != "" {
			limit, err := time.ParseDuration(fc.SolveTimeLimit)
			if err != nil {
				return fmt.Errorf("invalid solve_time_limit %q: %w", fc.SolveTimeLimit, err)
			}
			plannerConfig.SolveTimeLimit = limit
		}
		if fc.HorizonDays > 0 && horizonDays <= 0 {
			horizonDays = fc.HorizonDays
		}
	}
	if horizonDays <= 0 {
		horizonDays = 4
	}

	orderIDs, err := parseOrderIDs(c.config.OrderIDs)
	if err != nil {
		return fmt.Errorf("invalid order IDs: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Minute)
	dataset := fixtures.DemoDataset(now)

	if c.config.Verbose {
		fmt.Printf("🔧 Planning horizon: %s to %s\n", now.Format("2006-01-02 15:04"), now.AddDate(0, 0, horizonDays).Format("2006-01-02 15:04"))
		fmt.Printf("🔧 Solve time limit: %v\n\n", plannerConfig.SolveTimeLimit)
	}

	p := planner.New(plannerConfig, planner.DataSource{
		Lines:        dataset.Lines,
		WorkCenters:  dataset.WorkCenters,
		Operations:   dataset.Operations,
		Products:     dataset.Products,
		Surplus:      dataset.Surplus,
		Routing:      dataset.Routing,
		Availability: dataset.Availability,
		Orders:       dataset.Orders,
	})

	result := p.Plan(ctx, dto.PlanningInput{
		ProductionOrderIDs: orderIDs,
		HorizonStart:       now,
		HorizonEnd:         now.AddDate(0, 0, horizonDays),
	})

	return output.Generate(result, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	})
}

// loadConfigFile reads and parses the YAML configuration file
func loadConfigFile(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &fc, nil
}

// parseOrderIDs parses a comma-separated list of production order IDs
func parseOrderIDs(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid order ID", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *PlanCommand) showHelp() {
	fmt.Println("Production Planner - CP-SAT batch run scheduling over versioned routings")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  planner [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -config string   Path to YAML configuration file")
	fmt.Println("  -horizon int     Planning horizon in days (default 4)")
	fmt.Println("  -orders string   Comma-separated production order IDs to plan (default all)")
	fmt.Println("  -format string   Output format: text, json (default text)")
	fmt.Println("  -verbose         Enable verbose output")
	fmt.Println("  -help            Show this help message")
	fmt.Println()
	fmt.Println("Configuration file example:")
	fmt.Println("  solve_time_limit: 60s")
	fmt.Println("  horizon_days: 4")
}
