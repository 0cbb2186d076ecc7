package dto

import "time"

// PlanningInput defines the scope and timeframe of one planning run.
type PlanningInput struct {
	// ProductionOrderIDs optionally restricts the run to specific orders.
	// Empty means all pending orders.
	ProductionOrderIDs []int
	// HorizonStart is both the routing effective date and the zero point for
	// all internal time offsets.
	HorizonStart time.Time
	// HorizonEnd is the hard outer bound for all scheduled times.
	HorizonEnd time.Time
}
