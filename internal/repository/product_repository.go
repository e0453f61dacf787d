package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopmart/internal/model"
)

// ProductRepository defines catalog persistence operations. Id assignment
// reads the last inserted row under a lock, so callers wrap
// LastForUpdate + Create in WithTransaction.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	LastForUpdate(ctx context.Context) (*model.Product, error)
	DeleteByID(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// LastForUpdate returns the product with the highest id, row-locked.
// Returns gorm.ErrRecordNotFound on an empty catalog.
func (r *productRepository) LastForUpdate(ctx context.Context) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id DESC").First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteByID removes the product with the given id. Deleting a missing id
// is not an error.
func (r *productRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Where("category = ?", category).
		Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// WithTransaction executes a function within a database transaction.
func (r *productRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &productRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
