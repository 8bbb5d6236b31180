package repository

import (
	"context"
	"fmt"

	"technomaster/internal/kv"
	"technomaster/internal/model"
)

// ProductRepository defines operations for product data
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Add(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	products table[model.Product]
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(store kv.Store) ProductRepository {
	return &productRepository{products: table[model.Product]{store: store, key: ProductsKey}}
}

// List returns all products, newest first. A missing table is seeded and persisted.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	products, exists, err := r.products.load(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		products = seedProducts()
		if err := r.products.persist(ctx, products); err != nil {
			return nil, fmt.Errorf("failed to seed products: %w", err)
		}
	}
	return products, nil
}

// FindByID retrieves a product by its ID
func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil // Not found
}

// Add prepends a product
func (r *productRepository) Add(ctx context.Context, product *model.Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.products.persist(ctx, append([]model.Product{*product}, products...))
}

// Delete removes the product with the given id; an unknown id leaves the table unchanged
func (r *productRepository) Delete(ctx context.Context, id string) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.products.persist(ctx, kept)
}
