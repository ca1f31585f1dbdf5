package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kavyamurthy/paintsight/internal/models"
)

type ShopRepository struct {
	pool *pgxpool.Pool
}

func NewShopRepository(pool *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{pool: pool}
}

func (r *ShopRepository) BulkCreate(ctx context.Context, shops []*models.Shop) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"shops"},
		[]string{"id", "name", "address", "phone", "owner_id", "city"},
		pgx.CopyFromSlice(len(shops), func(i int) ([]interface{}, error) {
			return []interface{}{
				shops[i].ID,
				shops[i].Name,
				shops[i].Address,
				shops[i].Phone,
				shops[i].OwnerID,
				shops[i].City,
			}, nil
		}),
	)
	return err
}

func (r *ShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	query := `
        INSERT INTO shops (id, name, address, phone, owner_id, city)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := r.pool.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Address,
		shop.Phone,
		shop.OwnerID,
		shop.City,
	)
	return err
}

func (r *ShopRepository) GetAll(ctx context.Context) ([]*models.Shop, error) {
	query := `SELECT id, name, address, phone, owner_id, city FROM shops`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*models.Shop
	for rows.Next() {
		shop := &models.Shop{}
		err := rows.Scan(
			&shop.ID,
			&shop.Name,
			&shop.Address,
			&shop.Phone,
			&shop.OwnerID,
			&shop.City,
		)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

func (r *ShopRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM shops").Scan(&count)
	return count, err
}

func (r *ShopRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE shops CASCADE")
	return err
}
