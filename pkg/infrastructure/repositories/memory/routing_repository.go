package memory

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// RoutingRepository provides in-memory storage for the three versioned
// routing relations. All versions are returned; active-version resolution
// happens in the planner.
type RoutingRepository struct {
	productRoutes    []*entities.ProductOperationRoute
	lineRoutes       []*entities.LineWorkCenterRoute
	workCenterRoutes []*entities.WorkCenterOperationRoute
}

// NewRoutingRepository creates a new in-memory routing repository.
func NewRoutingRepository() *RoutingRepository {
	return &RoutingRepository{}
}

// Verify interface compliance
var _ repositories.RoutingRepository = (*RoutingRepository)(nil)

// AddProductRoute adds a product operation route row.
func (r *RoutingRepository) AddProductRoute(row entities.ProductOperationRoute) {
	r.productRoutes = append(r.productRoutes, &row)
}

// AddLineRoute adds a line work-center route row.
func (r *RoutingRepository) AddLineRoute(row entities.LineWorkCenterRoute) {
	r.lineRoutes = append(r.lineRoutes, &row)
}

// AddWorkCenterRoute adds a work-center operation route row.
func (r *RoutingRepository) AddWorkCenterRoute(row entities.WorkCenterOperationRoute) {
	r.workCenterRoutes = append(r.workCenterRoutes, &row)
}

// ProductRoutes returns all product operation route rows.
func (r *RoutingRepository) ProductRoutes(ctx context.Context) ([]*entities.ProductOperationRoute, error) {
	return r.productRoutes, nil
}

// LineRoutes returns all line work-center route rows.
func (r *RoutingRepository) LineRoutes(ctx context.Context) ([]*entities.LineWorkCenterRoute, error) {
	return r.lineRoutes, nil
}

// WorkCenterRoutes returns all work-center operation route rows.
func (r *RoutingRepository) WorkCenterRoutes(ctx context.Context) ([]*entities.WorkCenterOperationRoute, error) {
	return r.workCenterRoutes, nil
}
