package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Solver status values the planner emits for terminal outcomes that never
// reach the solver. Successful runs carry the literal CP-SAT status name
// (OPTIMAL, FEASIBLE, INFEASIBLE, UNKNOWN) instead.
const (
	StatusNotSolved       = "NOT_SOLVED"
	StatusNoItems         = "NO_ITEMS_TO_SCHEDULE"
	StatusModelInvalid    = "MODEL_INVALID"
	StatusSolverException = "SOLVER_EXCEPTION"
	StatusError           = "ERROR"
)

// PlanResult is the complete output of one planning run. It is always
// well-formed: failed runs carry a terminal status and every item listed as
// unscheduled with a reason.
type PlanResult struct {
	PlanOverallDeadline   time.Time
	PlanActualCompletion  *time.Time // nil if nothing was scheduled
	ScheduledRuns         []ScheduledRun
	GeneratedSurplus      []SurplusSummary
	UnscheduledOrderItems []UnscheduledOrderItem
	EstimatedTotalProfit  decimal.Decimal
	SolverStatus          string
	SolverSolveTime       time.Duration
}

// ScheduledRun is one batch-sized execution of a route step for an order item.
type ScheduledRun struct {
	RunID                 int
	ProductionOrderNumber string
	ProductionOrderItemID int
	ProductName           string
	// RunNumber is 1-based within the item.
	RunNumber      int
	LineName       string
	WorkCenterName string
	// OperationName is the concrete machine the run was committed to.
	OperationName string
	QuantityTons  decimal.Decimal
	StartTime     time.Time
	EndTime       time.Time
}

// SurplusSummary reports surplus generated by rounding production up to whole
// batches.
type SurplusSummary struct {
	ProductName    string
	WorkCenterName string
	QuantityTons   decimal.Decimal
}

// UnscheduledOrderItem reports an item the plan could not (or chose not to)
// schedule, with a human-readable reason.
type UnscheduledOrderItem struct {
	ProductionOrderNumber string
	ProductionOrderItemID int
	ProductName           string
	RequiredQuantityTons  decimal.Decimal
	OriginalDeadline      time.Time
	Reason                string
}
