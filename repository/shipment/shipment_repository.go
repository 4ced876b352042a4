package shipment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ShipmentRepository interface {
	InsertShipmentTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertShipmentTxItem) (uint64, error)
	InsertShipmentLineTx(ctx context.Context, tx *sqlx.Tx, line *model.ShipmentDetailLine) (uint64, error)
	GetShipmentByID(ctx context.Context, shipmentID uint64) (*model.Shipment, error)
	GetShipmentLines(ctx context.Context, shipmentID uint64) ([]model.ShipmentDetailLine, error)
	ListShipmentsByOrder(ctx context.Context, orderID uint64) ([]model.Shipment, error)
}

func NewShipmentRepository(conn *sqlx.DB) ShipmentRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertShipmentTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertShipmentTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO shipment (order_id, ref, status, created_at) VALUES (?, ?, ?, NOW())", req.OrderID, req.Ref, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertShipmentLineTx(ctx context.Context, tx *sqlx.Tx, line *model.ShipmentDetailLine) (uint64, error) {
	q := "INSERT INTO shipment_line (shipment_id, order_line_id, product_id, warehouse_id, batch_id, batch_label, qty) VALUES (?, ?, ?, ?, NULLIF(?, 0), ?, ?)"
	res, err := tx.ExecContext(ctx, q, line.ShipmentID, line.OrderLineID, line.ProductID, line.WarehouseID, line.BatchID, line.BatchLabel, line.Quantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetShipmentByID(ctx context.Context, shipmentID uint64) (*model.Shipment, error) {
	var s model.Shipment
	row := r.conn.QueryRowxContext(ctx, "SELECT id, order_id, ref, status, created_at FROM shipment WHERE id = ?", shipmentID)
	if err := row.StructScan(&s); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQL) GetShipmentLines(ctx context.Context, shipmentID uint64) ([]model.ShipmentDetailLine, error) {
	q := "SELECT id, shipment_id, order_line_id, product_id, warehouse_id, COALESCE(batch_id, 0) AS batch_id, COALESCE(batch_label, '') AS batch_label, qty FROM shipment_line WHERE shipment_id = ? ORDER BY id"
	rows, err := r.conn.QueryxContext(ctx, q, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]model.ShipmentDetailLine, 0)
	for rows.Next() {
		var l model.ShipmentDetailLine
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *SQL) ListShipmentsByOrder(ctx context.Context, orderID uint64) ([]model.Shipment, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, order_id, ref, status, created_at FROM shipment WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]model.Shipment, 0)
	for rows.Next() {
		var s model.Shipment
		if err := rows.StructScan(&s); err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, rows.Err()
}
