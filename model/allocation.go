package model

import (
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/shopspring/decimal"
)

type EntryKind int

const (
	EntrySimple EntryKind = iota
	EntryWarehouseSplit
	EntryLot
	EntrySerial
)

// AllocationEntry is one quantity+location (+batch) assignment contributing
// to an order line's shipped quantity. BatchID is filled in once the entry
// has been resolved against stock.
type AllocationEntry struct {
	Kind        EntryKind
	Quantity    decimal.Decimal
	WarehouseID uint64
	BatchLabel  string
	BatchID     uint64
}

// AllocationRequest is the parsed per-line intent: which product ships, in
// which tracking mode, split into entries.
type AllocationRequest struct {
	OrderLineID  uint64
	ProductID    uint64
	TrackingMode constant.TrackingMode
	MORef        string
	Entries      []AllocationEntry
}

// TotalQuantity sums the entry quantities of the request.
func (r *AllocationRequest) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.Entries {
		total = total.Add(e.Quantity)
	}
	return total
}

// WarehouseQtyInput is one (warehouse, quantity) pair of a multi-warehouse
// split. Quantities arrive as strings, the way form values do.
type WarehouseQtyInput struct {
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Quantity    string `json:"qty"`
}

type LotInput struct {
	LotNumber   string `json:"lot_number"`
	Quantity    string `json:"qty"`
	WarehouseID uint64 `json:"warehouse_id"`
}

type SerialInput struct {
	SerialNumber string `json:"serial_number"`
	WarehouseID  uint64 `json:"warehouse_id"`
}

// RawLineSubmission is the typed boundary value for one order line of a
// shipment submission. Exactly one of the four shapes is expected to be
// populated; which one is authoritative depends on the line's tracking mode.
type RawLineSubmission struct {
	OrderLineID uint64              `json:"order_line_id" validate:"required"`
	Quantity    string              `json:"qty"`
	Warehouses  []WarehouseQtyInput `json:"warehouses" validate:"dive"`
	Lots        []LotInput          `json:"lots"`
	Serials     []SerialInput       `json:"serials"`
}

// LineError is one collected validation failure, attributable to an order
// line so the caller can annotate the originating form.
type LineError struct {
	OrderLineID uint64             `json:"order_line_id"`
	ErrType     constant.ErrorType `json:"-"`
	Code        string             `json:"code"`
	Message     string             `json:"message"`
}

func NewLineError(orderLineID uint64, errType constant.ErrorType, message string) LineError {
	if message == "" {
		message = constant.ErrorTypeMessage[errType]
	}
	return LineError{
		OrderLineID: orderLineID,
		ErrType:     errType,
		Code:        constant.ErrorTypeCode[errType],
		Message:     message,
	}
}
