package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error)
	GetOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderLine, error)
	AddShippedQtyTx(ctx context.Context, tx *sqlx.Tx, orderLineID uint64, qty decimal.Decimal) error
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status int) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	row := tx.QueryRowxContext(ctx, "SELECT id, ref, status FROM `order` WHERE id = ?", orderID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) GetOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderLine, error) {
	q := "SELECT id, order_id, COALESCE(product_id, 0) AS product_id, COALESCE(description, '') AS description, qty_ordered, qty_shipped FROM order_line WHERE order_id = ? ORDER BY id"
	rows, err := tx.QueryxContext(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]model.OrderLine, 0)
	for rows.Next() {
		var l model.OrderLine
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *SQL) AddShippedQtyTx(ctx context.Context, tx *sqlx.Tx, orderLineID uint64, qty decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, "UPDATE order_line SET qty_shipped = qty_shipped + ? WHERE id = ?", qty, orderLineID)
	return err
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status int) error {
	_, err := tx.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ?", status, orderID)
	return err
}
