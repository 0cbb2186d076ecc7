package memory

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// ProductionOrderRepository provides in-memory production order storage.
type ProductionOrderRepository struct {
	orders []*entities.ProductionOrder
}

// NewProductionOrderRepository creates a new in-memory order repository.
func NewProductionOrderRepository() *ProductionOrderRepository {
	return &ProductionOrderRepository{}
}

// Verify interface compliance
var _ repositories.ProductionOrderRepository = (*ProductionOrderRepository)(nil)

// Add adds an order (with its items) to the repository.
func (r *ProductionOrderRepository) Add(order *entities.ProductionOrder) {
	r.orders = append(r.orders, order)
}

// PendingOrders returns all enabled production orders with their items.
func (r *ProductionOrderRepository) PendingOrders(ctx context.Context) ([]*entities.ProductionOrder, error) {
	var orders []*entities.ProductionOrder
	for _, order := range r.orders {
		if order.Enabled {
			orders = append(orders, order)
		}
	}
	return orders, nil
}
