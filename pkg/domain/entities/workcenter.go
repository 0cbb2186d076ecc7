package entities

import "github.com/shopspring/decimal"

// WorkCenter groups machines inside a production line. OptimalBatch is the
// quantity one production run at this work center should carry, in tons.
type WorkCenter struct {
	ID           int
	Name         string
	LineID       int
	OptimalBatch decimal.Decimal
	Enabled      bool
}

// Operation is a concrete machine: it lives at one work center, performs one
// operation type, and processes Capacity tons per hour.
type Operation struct {
	ID               int
	Name             string
	WorkCenterID     int
	OperationTypeID  int
	Capacity         float64
	SetupTimeMinutes int
	Enabled          bool
}
