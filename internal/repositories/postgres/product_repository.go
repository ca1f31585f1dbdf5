package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kavyamurthy/paintsight/internal/models"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) BulkCreate(ctx context.Context, products []*models.Product) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"products"},
		[]string{
			"id", "color_name", "color_code", "manufactured_date", "expiry_date",
			"price", "quality", "quantity", "texture", "batch", "plant", "brand",
		},
		pgx.CopyFromSlice(len(products), func(i int) ([]interface{}, error) {
			return []interface{}{
				products[i].ID,
				products[i].ColorName,
				products[i].ColorCode,
				products[i].ManufacturedDate,
				products[i].ExpiryDate,
				products[i].Price,
				products[i].Quality,
				products[i].Quantity,
				products[i].Texture,
				products[i].Batch,
				products[i].Plant,
				products[i].Brand,
			}, nil
		}),
	)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
        INSERT INTO products (
            id, color_name, color_code, manufactured_date, expiry_date,
            price, quality, quantity, texture, batch, plant, brand
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
        )
    `

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.ColorName,
		product.ColorCode,
		product.ManufacturedDate,
		product.ExpiryDate,
		product.Price,
		product.Quality,
		product.Quantity,
		product.Texture,
		product.Batch,
		product.Plant,
		product.Brand,
	)
	return err
}

func (r *ProductRepository) GetAll(ctx context.Context) (map[string]*models.Product, error) {
	query := `
        SELECT
            id,
            color_name,
            color_code,
            manufactured_date,
            expiry_date,
            price,
            quality,
            quantity,
            texture,
            batch,
            plant,
            brand
        FROM products
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[string]*models.Product)
	for rows.Next() {
		product := &models.Product{}
		err := rows.Scan(
			&product.ID,
			&product.ColorName,
			&product.ColorCode,
			&product.ManufacturedDate,
			&product.ExpiryDate,
			&product.Price,
			&product.Quality,
			&product.Quantity,
			&product.Texture,
			&product.Batch,
			&product.Plant,
			&product.Brand,
		)
		if err != nil {
			return nil, err
		}
		products[product.ID] = product
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE products CASCADE")
	return err
}
