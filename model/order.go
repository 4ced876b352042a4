package model

import (
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/shopspring/decimal"
)

type OrderDetail struct {
	ID     uint64               `db:"id"`
	Ref    string               `db:"ref"`
	Status constant.OrderStatus `db:"status"`
}

// OrderLine is one line of the source sales order. ProductID zero means the
// line is free text (possibly backed by a manufacturing order, see the
// allocation classifier).
type OrderLine struct {
	ID          uint64          `db:"id"`
	OrderID     uint64          `db:"order_id"`
	ProductID   uint64          `db:"product_id"`
	Description string          `db:"description"`
	QtyOrdered  decimal.Decimal `db:"qty_ordered"`
	QtyShipped  decimal.Decimal `db:"qty_shipped"`
}

// RemainingQty is the quantity still to ship for the line.
func (l *OrderLine) RemainingQty() decimal.Decimal {
	return l.QtyOrdered.Sub(l.QtyShipped)
}
