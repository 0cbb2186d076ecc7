package repositories

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
)

// LineRepository provides access to production lines.
type LineRepository interface {
	AllEnabled(ctx context.Context) ([]*entities.Line, error)
}

// WorkCenterRepository provides access to work centers.
type WorkCenterRepository interface {
	AllEnabled(ctx context.Context) ([]*entities.WorkCenter, error)
}

// OperationRepository provides access to concrete machines.
type OperationRepository interface {
	AllEnabled(ctx context.Context) ([]*entities.Operation, error)
}

// ProductRepository provides access to product master data.
type ProductRepository interface {
	AllEnabled(ctx context.Context) ([]*entities.Product, error)
}
