package repositories

import (
	"context"

	"github.com/kavyamurthy/paintsight/internal/models"
)

type ProductRepository interface {
	BulkCreate(ctx context.Context, products []*models.Product) error
	Create(ctx context.Context, product *models.Product) error
	GetAll(ctx context.Context) (map[string]*models.Product, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []*models.Order) error
	Create(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context) ([]*models.Order, error)
	GetByShopID(ctx context.Context, shopID string) ([]*models.Order, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ShopRepository interface {
	BulkCreate(ctx context.Context, shops []*models.Shop) error
	Create(ctx context.Context, shop *models.Shop) error
	GetAll(ctx context.Context) ([]*models.Shop, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
