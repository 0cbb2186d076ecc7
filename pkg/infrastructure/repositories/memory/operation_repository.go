package memory

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// OperationRepository provides in-memory machine storage.
type OperationRepository struct {
	operations []*entities.Operation
}

// NewOperationRepository creates a new in-memory operation repository.
func NewOperationRepository() *OperationRepository {
	return &OperationRepository{}
}

// Verify interface compliance
var _ repositories.OperationRepository = (*OperationRepository)(nil)

// Add adds a machine to the repository.
func (r *OperationRepository) Add(op entities.Operation) {
	r.operations = append(r.operations, &op)
}

// AllEnabled returns all enabled machines.
func (r *OperationRepository) AllEnabled(ctx context.Context) ([]*entities.Operation, error) {
	var operations []*entities.Operation
	for _, op := range r.operations {
		if op.Enabled {
			operations = append(operations, op)
		}
	}
	return operations, nil
}
