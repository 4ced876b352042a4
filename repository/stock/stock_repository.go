package stock

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

type StockRepository interface {
	FindBatchRecordsTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, batchLabel string) ([]model.StockBatchRecord, error)
	GetWarehouseStockTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64) (decimal.Decimal, error)
	DeductWarehouseStockTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, qty decimal.Decimal, allowNegative bool) error
	DeductBatchStockTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty decimal.Decimal, allowNegative bool) error
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

// FindBatchRecordsTx returns every stock batch matching the (product, label)
// pair. A zero warehouseID leaves the lookup unscoped; callers decide what to
// do with zero or multiple matches.
func (r *SQL) FindBatchRecordsTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, batchLabel string) ([]model.StockBatchRecord, error) {
	q := "SELECT id, product_id, warehouse_id, batch_label, qty AS available_qty FROM stock_batch WHERE product_id = ? AND batch_label = ?"
	args := []interface{}{productID, batchLabel}
	if warehouseID != 0 {
		q += " AND warehouse_id = ?"
		args = append(args, warehouseID)
	}
	q += " ORDER BY id"

	rows, err := tx.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.StockBatchRecord, 0)
	for rows.Next() {
		var rec model.StockBatchRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQL) GetWarehouseStockTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64) (decimal.Decimal, error) {
	var qty decimal.NullDecimal
	q := "SELECT SUM(ws.stock) FROM warehouse_stock ws JOIN warehouse w ON ws.warehouse_id = w.id WHERE ws.product_id = ? AND ws.warehouse_id = ? AND w.status = ?"
	if err := tx.GetContext(ctx, &qty, q, productID, warehouseID, constant.WarehouseStatusActive); err != nil {
		return decimal.Zero, err
	}
	if !qty.Valid {
		return decimal.Zero, nil
	}
	return qty.Decimal, nil
}

// DeductWarehouseStockTx locks the stock row for the (product, warehouse)
// pair and decrements it. The lock is the storage-level line of defense
// against concurrent shipments draining the same row.
func (r *SQL) DeductWarehouseStockTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, qty decimal.Decimal, allowNegative bool) error {
	var current decimal.Decimal
	q := "SELECT stock FROM warehouse_stock WHERE product_id = ? AND warehouse_id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &current, q, productID, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrBatchNotFound)
		}
		return err
	}
	if current.LessThan(qty) && !allowNegative {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	_, err := tx.ExecContext(ctx, "UPDATE warehouse_stock SET stock = stock - ? WHERE product_id = ? AND warehouse_id = ?", qty, productID, warehouseID)
	return err
}

func (r *SQL) DeductBatchStockTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty decimal.Decimal, allowNegative bool) error {
	var current decimal.Decimal
	if err := tx.GetContext(ctx, &current, "SELECT qty FROM stock_batch WHERE id = ? FOR UPDATE", batchID); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrBatchNotFound)
		}
		return err
	}
	if current.LessThan(qty) && !allowNegative {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	_, err := tx.ExecContext(ctx, "UPDATE stock_batch SET qty = qty - ? WHERE id = ?", qty, batchID)
	return err
}
