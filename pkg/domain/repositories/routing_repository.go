package repositories

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
)

// RoutingRepository provides access to the three versioned routing relations.
// Rows of every version are returned; resolving the active version for a
// reference date is the planner's job.
type RoutingRepository interface {
	ProductRoutes(ctx context.Context) ([]*entities.ProductOperationRoute, error)
	LineRoutes(ctx context.Context) ([]*entities.LineWorkCenterRoute, error)
	WorkCenterRoutes(ctx context.Context) ([]*entities.WorkCenterOperationRoute, error)
}

// AvailabilityRepository provides the product-per-line availability links.
type AvailabilityRepository interface {
	AllEnabled(ctx context.Context) ([]*entities.ProductAvailability, error)
}
