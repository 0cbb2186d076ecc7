package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewProductionOrder(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	order, err := NewProductionOrder(1, "PO-001", now, now.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("Failed to create valid order: %v", err)
	}
	if !order.Enabled {
		t.Error("Expected new orders to be enabled")
	}

	if _, err := NewProductionOrder(2, "", now, now.AddDate(0, 0, 3)); err == nil {
		t.Error("Expected error for empty order number, got none")
	}

	if _, err := NewProductionOrder(3, "PO-003", now, now.AddDate(0, 0, -1)); err == nil {
		t.Error("Expected error for deadline before earliest start, got none")
	}
}

func TestProductionOrder_AddItem(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	order, err := NewProductionOrder(1, "PO-001", now, now.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}

	if err := order.AddItem(11, 100, decimal.NewFromInt(80)); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(order.Items))
	}
	if order.Items[0].ProductionOrderID != order.ID {
		t.Errorf("Expected item to reference order %d, got %d", order.ID, order.Items[0].ProductionOrderID)
	}

	if err := order.AddItem(12, 100, decimal.NewFromInt(-5)); err == nil {
		t.Error("Expected error for negative quantity, got none")
	}
	if len(order.Items) != 1 {
		t.Errorf("Rejected item should not be appended, got %d items", len(order.Items))
	}
}
