package model

import (
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint64                `db:"id"`
	Ref         string                `db:"ref"`
	Label       string                `db:"label"`
	StatusBatch constant.TrackingMode `db:"status_batch"`
}

// StockBatchRecord is one resolved physical inventory unit: a lot or serial
// in one warehouse with a known remaining quantity.
type StockBatchRecord struct {
	BatchID      uint64          `db:"id"`
	ProductID    uint64          `db:"product_id"`
	WarehouseID  uint64          `db:"warehouse_id"`
	BatchLabel   string          `db:"batch_label"`
	AvailableQty decimal.Decimal `db:"available_qty"`
}
