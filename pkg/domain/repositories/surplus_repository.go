package repositories

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
)

// SurplusRepository provides surplus stock per product and work center.
type SurplusRepository interface {
	AllEnabled(ctx context.Context) ([]*entities.Surplus, error)
}
