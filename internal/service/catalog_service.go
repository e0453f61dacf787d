package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopmart/internal/cache"
	"shopmart/internal/model"
	"shopmart/internal/repository"
)

const (
	catalogCacheKey = "products:all"
	catalogCacheTTL = time.Minute

	newCollectionSize  = 8
	popularInWomenSize = 4
	womenCategory      = "women"
)

// NewProduct carries the caller-supplied fields of a catalog entry.
type NewProduct struct {
	Name     string
	Image    string
	Category string
	NewPrice decimal.Decimal
	OldPrice decimal.Decimal
}

// CatalogService manages products. Ids are assigned sequentially from the
// last inserted product inside a locking transaction, so concurrent adds
// cannot collide.
type CatalogService interface {
	AddProduct(ctx context.Context, fields NewProduct) (*model.Product, error)
	RemoveProduct(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]model.Product, error)
	NewCollection(ctx context.Context) ([]model.Product, error)
	PopularInWomen(ctx context.Context) ([]model.Product, error)
}

type catalogService struct {
	products repository.ProductRepository
	cache    *cache.Client
}

// NewCatalogService builds a CatalogService with repository and cache.
func NewCatalogService(products repository.ProductRepository, cache *cache.Client) CatalogService {
	return &catalogService{products: products, cache: cache}
}

// AddProduct assigns the next catalog id (last inserted id + 1, or 1 for an
// empty catalog) and inserts the product.
func (s *catalogService) AddProduct(ctx context.Context, fields NewProduct) (*model.Product, error) {
	product := &model.Product{
		Name:      fields.Name,
		Image:     fields.Image,
		Category:  fields.Category,
		NewPrice:  fields.NewPrice,
		OldPrice:  fields.OldPrice,
		Available: true,
	}

	err := s.products.WithTransaction(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		last, err := repo.LastForUpdate(ctx)
		switch {
		case err == gorm.ErrRecordNotFound:
			product.ID = 1
		case err != nil:
			return fmt.Errorf("find last product: %w", err)
		default:
			product.ID = last.ID + 1
		}
		return repo.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)
	return product, nil
}

// RemoveProduct deletes by id. A missing id is reported as success, as the
// public API promises.
func (s *catalogService) RemoveProduct(ctx context.Context, id uint) error {
	if err := s.products.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return nil
}

// ListAll returns the catalog in insertion order, read through the cache.
func (s *catalogService) ListAll(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, catalogCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
	}
	return products, nil
}

// NewCollection drops the very first product, then keeps the last 8 of the
// remainder: the most recently added products, excluding the original one.
func (s *catalogService) NewCollection(ctx context.Context) ([]model.Product, error) {
	products, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) <= 1 {
		return []model.Product{}, nil
	}
	rest := products[1:]
	if len(rest) > newCollectionSize {
		rest = rest[len(rest)-newCollectionSize:]
	}
	return rest, nil
}

// PopularInWomen returns the first 4 products in the "women" category.
func (s *catalogService) PopularInWomen(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.ListByCategory(ctx, womenCategory)
	if err != nil {
		return nil, err
	}
	if len(products) > popularInWomenSize {
		products = products[:popularInWomenSize]
	}
	return products, nil
}
