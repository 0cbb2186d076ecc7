package memory

import (
	"context"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// ProductRepository provides in-memory product storage.
type ProductRepository struct {
	products []*entities.Product
}

// NewProductRepository creates a new in-memory product repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// Add adds a product to the repository.
func (r *ProductRepository) Add(product entities.Product) {
	r.products = append(r.products, &product)
}

// AllEnabled returns all enabled products.
func (r *ProductRepository) AllEnabled(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	for _, product := range r.products {
		if product.Enabled {
			products = append(products, product)
		}
	}
	return products, nil
}
