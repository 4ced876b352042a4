package model

import (
	"time"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/shopspring/decimal"
)

type Shipment struct {
	ID        uint64                  `db:"id" json:"id"`
	OrderID   uint64                  `db:"order_id" json:"order_id"`
	Ref       string                  `db:"ref" json:"ref"`
	Status    constant.ShipmentStatus `db:"status" json:"status"`
	CreatedAt time.Time               `db:"created_at" json:"created_at"`
}

// ShipmentDetailLine is one persisted allocation entry: a quantity of one
// product leaving one warehouse, optionally tied to a lot/serial batch.
type ShipmentDetailLine struct {
	ID          uint64          `db:"id" json:"id"`
	ShipmentID  uint64          `db:"shipment_id" json:"shipment_id"`
	OrderLineID uint64          `db:"order_line_id" json:"order_line_id"`
	ProductID   uint64          `db:"product_id" json:"product_id"`
	WarehouseID uint64          `db:"warehouse_id" json:"warehouse_id"`
	BatchID     uint64          `db:"batch_id" json:"batch_id,omitempty"`
	BatchLabel  string          `db:"batch_label" json:"batch_label,omitempty"`
	Quantity    decimal.Decimal `db:"qty" json:"qty"`
}

type InsertShipmentTxItem struct {
	OrderID uint64
	Ref     string
	Status  constant.ShipmentStatus
}

type ShipmentRequest struct {
	DefaultWarehouseID uint64              `json:"default_warehouse_id"`
	ShipAll            bool                `json:"ship_all"`
	Lines              []RawLineSubmission `json:"lines" validate:"required,dive"`
}

type ShipmentResponse struct {
	ShipmentID uint64               `json:"shipment_id"`
	Ref        string               `json:"ref"`
	Lines      []ShipmentDetailLine `json:"lines"`
}

type ShipmentDetailResponse struct {
	Shipment Shipment             `json:"shipment"`
	Lines    []ShipmentDetailLine `json:"lines"`
}
