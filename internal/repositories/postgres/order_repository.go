package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kavyamurthy/paintsight/internal/models"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// line items ride along as jsonb; analytics reads whole orders, never
// individual lines, so a child table buys nothing here
func (r *OrderRepository) BulkCreate(ctx context.Context, orders []*models.Order) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		[]string{
			"id", "items", "customer_name", "customer_phone", "payment_method",
			"order_timestamp", "salesperson_id", "shop_id", "total", "tax", "grand_total",
		},
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			items, err := json.Marshal(orders[i].Items)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal items for order %s: %w", orders[i].ID, err)
			}
			return []interface{}{
				orders[i].ID,
				items,
				orders[i].CustomerName,
				orders[i].CustomerPhone,
				orders[i].PaymentMethod,
				orders[i].Timestamp,
				orders[i].SalespersonID,
				orders[i].ShopID,
				orders[i].Total,
				orders[i].Tax,
				orders[i].GrandTotal,
			}, nil
		}),
	)
	return err
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal items for order %s: %w", order.ID, err)
	}

	query := `
        INSERT INTO orders (
            id, items, customer_name, customer_phone, payment_method,
            order_timestamp, salesperson_id, shop_id, total, tax, grand_total
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
        )
    `

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		items,
		order.CustomerName,
		order.CustomerPhone,
		order.PaymentMethod,
		order.Timestamp,
		order.SalespersonID,
		order.ShopID,
		order.Total,
		order.Tax,
		order.GrandTotal,
	)
	return err
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]*models.Order, error) {
	query := `
        SELECT
            id,
            items,
            customer_name,
            customer_phone,
            payment_method,
            order_timestamp,
            salesperson_id,
            shop_id,
            total,
            tax,
            grand_total
        FROM orders
        ORDER BY order_timestamp
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *OrderRepository) GetByShopID(ctx context.Context, shopID string) ([]*models.Order, error) {
	query := `
        SELECT
            id,
            items,
            customer_name,
            customer_phone,
            payment_method,
            order_timestamp,
            salesperson_id,
            shop_id,
            total,
            tax,
            grand_total
        FROM orders
        WHERE shop_id = $1
        ORDER BY order_timestamp
    `
	rows, err := r.pool.Query(ctx, query, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]*models.Order, error) {
	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		var items []byte
		err := rows.Scan(
			&order.ID,
			&items,
			&order.CustomerName,
			&order.CustomerPhone,
			&order.PaymentMethod,
			&order.Timestamp,
			&order.SalespersonID,
			&order.ShopID,
			&order.Total,
			&order.Tax,
			&order.GrandTotal,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items for order %s: %w", order.ID, err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE orders CASCADE")
	return err
}
