package repositories

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
)

// ProductionOrderRepository provides access to pending production orders
// with their items.
type ProductionOrderRepository interface {
	PendingOrders(ctx context.Context) ([]*entities.ProductionOrder, error)
}
