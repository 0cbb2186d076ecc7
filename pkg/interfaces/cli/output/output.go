package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/metalflow/scheduler/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// Generate renders a plan result in the specified format
func Generate(result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.PlanResult, config Config) error {
	fmt.Printf("📊 Production Plan Summary\n")
	fmt.Printf("==========================\n\n")

	fmt.Printf("Solver Status: %s\n", result.SolverStatus)
	fmt.Printf("Solve Time: %v\n", result.SolverSolveTime)
	fmt.Printf("Scheduled Runs: %d\n", len(result.ScheduledRuns))
	fmt.Printf("Unscheduled Items: %d\n", len(result.UnscheduledOrderItems))
	fmt.Printf("Estimated Profit: %s\n", result.EstimatedTotalProfit.StringFixed(2))
	fmt.Printf("Overall Deadline: %s\n", result.PlanOverallDeadline.Format("2006-01-02 15:04"))
	if result.PlanActualCompletion != nil {
		fmt.Printf("Actual Completion: %s\n", result.PlanActualCompletion.Format("2006-01-02 15:04"))
	}
	fmt.Println()

	if len(result.ScheduledRuns) > 0 {
		fmt.Printf("🏭 Scheduled Runs:\n")
		fmt.Printf("%-5s %-10s %-12s %-4s %-16s %-16s %-15s %-8s %-17s %-17s\n",
			"ID", "Order", "Product", "Run", "Line", "Work Center", "Machine", "Qty", "Start", "End")
		fmt.Printf("%-5s %-10s %-12s %-4s %-16s %-16s %-15s %-8s %-17s %-17s\n",
			"-----", "----------", "------------", "----", "----------------", "----------------", "---------------", "--------", "-----------------", "-----------------")

		for _, run := range result.ScheduledRuns {
			fmt.Printf("%-5d %-10s %-12s %-4d %-16s %-16s %-15s %-8s %-17s %-17s\n",
				run.RunID,
				run.ProductionOrderNumber,
				run.ProductName,
				run.RunNumber,
				run.LineName,
				run.WorkCenterName,
				run.OperationName,
				run.QuantityTons.StringFixed(1),
				run.StartTime.Format("2006-01-02 15:04"),
				run.EndTime.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	if len(result.GeneratedSurplus) > 0 {
		fmt.Printf("📦 Generated Surplus:\n")
		fmt.Printf("%-12s %-16s %-10s\n", "Product", "Work Center", "Qty (t)")
		fmt.Printf("%-12s %-16s %-10s\n", "------------", "----------------", "----------")
		for _, s := range result.GeneratedSurplus {
			fmt.Printf("%-12s %-16s %-10s\n", s.ProductName, s.WorkCenterName, s.QuantityTons.StringFixed(1))
		}
		fmt.Println()
	}

	if len(result.UnscheduledOrderItems) > 0 {
		fmt.Printf("⚠️  Unscheduled Items:\n")
		fmt.Printf("%-10s %-8s %-12s %-10s %-17s %s\n",
			"Order", "Item", "Product", "Qty (t)", "Deadline", "Reason")
		fmt.Printf("%-10s %-8s %-12s %-10s %-17s %s\n",
			"----------", "--------", "------------", "----------", "-----------------", "------")
		for _, item := range result.UnscheduledOrderItems {
			fmt.Printf("%-10s %-8d %-12s %-10s %-17s %s\n",
				item.ProductionOrderNumber,
				item.ProductionOrderItemID,
				item.ProductName,
				item.RequiredQuantityTons.StringFixed(1),
				item.OriginalDeadline.Format("2006-01-02 15:04"),
				item.Reason)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput writes the full result as indented JSON to stdout
func generateJSONOutput(result *dto.PlanResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result as JSON: %w", err)
	}
	return nil
}
