package entities

import "github.com/shopspring/decimal"

// Surplus is stock of a product already sitting at a work center, usable to
// offset new demand before any production run is planned.
type Surplus struct {
	ID           int
	ProductID    int
	WorkCenterID int
	Quantity     decimal.Decimal
	Enabled      bool
}
