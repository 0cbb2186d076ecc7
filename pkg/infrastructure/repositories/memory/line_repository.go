// Package memory provides in-memory repository implementations used by tests
// and the demo CLI. They are read-only from the planner's point of view.
package memory

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// LineRepository provides in-memory line storage.
type LineRepository struct {
	lines []*entities.Line
}

// NewLineRepository creates a new in-memory line repository.
func NewLineRepository() *LineRepository {
	return &LineRepository{}
}

// Verify interface compliance
var _ repositories.LineRepository = (*LineRepository)(nil)

// Add adds a line to the repository.
func (r *LineRepository) Add(line entities.Line) {
	r.lines = append(r.lines, &line)
}

// AllEnabled returns all enabled lines.
func (r *LineRepository) AllEnabled(ctx context.Context) ([]*entities.Line, error) {
	var lines []*entities.Line
	for _, line := range r.lines {
		if line.Enabled {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
