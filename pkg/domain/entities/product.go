package entities

import "github.com/shopspring/decimal"

// Product represents a sellable alloy or material grade.
type Product struct {
	ID              int
	Name            string
	UnitPricePerTon decimal.Decimal
	ProfitMargin    decimal.Decimal
	// Priority orders products for scheduling; lower is more important.
	Priority    int
	PenaltyCost decimal.Decimal
	Enabled     bool
}

// OperationType is a categorical production step (melting, rolling, cutting).
// Routing is expressed in operation types, decoupled from concrete machines.
type OperationType struct {
	ID      int
	Name    string
	Enabled bool
}
