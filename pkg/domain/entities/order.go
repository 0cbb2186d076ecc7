package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProductionOrder is a customer order with a hard deadline that applies to
// all of its items.
type ProductionOrder struct {
	ID            int
	OrderNumber   string
	EarliestStart time.Time
	Deadline      time.Time
	Items         []ProductionOrderItem
	Enabled       bool
}

// ProductionOrderItem is one product/quantity pair inside an order.
// Quantity is in tons.
type ProductionOrderItem struct {
	ID                int
	ProductionOrderID int
	ProductID         int
	Quantity          decimal.Decimal
	Enabled           bool
}

// NewProductionOrder creates a validated ProductionOrder.
func NewProductionOrder(id int, orderNumber string, earliestStart, deadline time.Time) (*ProductionOrder, error) {
	if orderNumber == "" {
		return nil, fmt.Errorf("order number cannot be empty")
	}
	if deadline.Before(earliestStart) {
		return nil, fmt.Errorf("deadline %v cannot be before earliest start %v", deadline, earliestStart)
	}
	return &ProductionOrder{
		ID:            id,
		OrderNumber:   orderNumber,
		EarliestStart: earliestStart,
		Deadline:      deadline,
		Enabled:       true,
	}, nil
}

// AddItem appends a validated item to the order.
func (o *ProductionOrder) AddItem(id, productID int, quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return fmt.Errorf("quantity must not be negative, got %s", quantity)
	}
	o.Items = append(o.Items, ProductionOrderItem{
		ID:                id,
		ProductionOrderID: o.ID,
		ProductID:         productID,
		Quantity:          quantity,
		Enabled:           true,
	})
	return nil
}
