package memory

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// SurplusRepository provides in-memory surplus storage.
type SurplusRepository struct {
	surplus []*entities.Surplus
}

// NewSurplusRepository creates a new in-memory surplus repository.
func NewSurplusRepository() *SurplusRepository {
	return &SurplusRepository{}
}

// Verify interface compliance
var _ repositories.SurplusRepository = (*SurplusRepository)(nil)

// Add adds a surplus row to the repository.
func (r *SurplusRepository) Add(s entities.Surplus) {
	r.surplus = append(r.surplus, &s)
}

// AllEnabled returns all enabled surplus rows.
func (r *SurplusRepository) AllEnabled(ctx context.Context) ([]*entities.Surplus, error) {
	var surplus []*entities.Surplus
	for _, s := range r.surplus {
		if s.Enabled {
			surplus = append(surplus, s)
		}
	}
	return surplus, nil
}
