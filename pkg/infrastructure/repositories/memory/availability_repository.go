package memory

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// AvailabilityRepository provides in-memory product-per-line availability
// storage.
type AvailabilityRepository struct {
	availability []*entities.ProductAvailability
}

// NewAvailabilityRepository creates a new in-memory availability repository.
func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

// Verify interface compliance
var _ repositories.AvailabilityRepository = (*AvailabilityRepository)(nil)

// Add adds an availability link to the repository.
func (r *AvailabilityRepository) Add(avail entities.ProductAvailability) {
	r.availability = append(r.availability, &avail)
}

// AllEnabled returns all enabled availability links.
func (r *AvailabilityRepository) AllEnabled(ctx context.Context) ([]*entities.ProductAvailability, error) {
	var availability []*entities.ProductAvailability
	for _, avail := range r.availability {
		if avail.Enabled {
			availability = append(availability, avail)
		}
	}
	return availability, nil
}
