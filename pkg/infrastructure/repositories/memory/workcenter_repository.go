package memory

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// WorkCenterRepository provides in-memory work center storage.
type WorkCenterRepository struct {
	workCenters []*entities.WorkCenter
}

// NewWorkCenterRepository creates a new in-memory work center repository.
func NewWorkCenterRepository() *WorkCenterRepository {
	return &WorkCenterRepository{}
}

// Verify interface compliance
var _ repositories.WorkCenterRepository = (*WorkCenterRepository)(nil)

// Add adds a work center to the repository.
func (r *WorkCenterRepository) Add(wc entities.WorkCenter) {
	r.workCenters = append(r.workCenters, &wc)
}

// AllEnabled returns all enabled work centers.
func (r *WorkCenterRepository) AllEnabled(ctx context.Context) ([]*entities.WorkCenter, error) {
	var workCenters []*entities.WorkCenter
	for _, wc := range r.workCenters {
		if wc.Enabled {
			workCenters = append(workCenters, wc)
		}
	}
	return workCenters, nil
}
