package allocation

import (
	"fmt"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/shopspring/decimal"
)

type lotKey struct {
	productID   uint64
	batchLabel  string
	warehouseID uint64
}

type serialKey struct {
	productID  uint64
	batchLabel string
}

// Ledger tracks which physical stock has already been claimed by earlier
// lines of the same shipment request. It lives for one request only and is
// never persisted.
//
// A serial is a unique physical unit: its (product, label) key may be
// consumed once, regardless of warehouse. A lot may be drawn from several
// times, as long as the cumulative draw per (product, label, warehouse) stays
// within the resolved availability.
type Ledger struct {
	lots    map[lotKey]decimal.Decimal
	serials map[serialKey]bool
}

func NewLedger() *Ledger {
	return &Ledger{
		lots:    make(map[lotKey]decimal.Decimal),
		serials: make(map[serialKey]bool),
	}
}

// ConsumeItem is one resolved lot/serial entry offered to the ledger,
// together with the availability snapshot it was resolved against.
type ConsumeItem struct {
	ProductID    uint64
	BatchLabel   string
	WarehouseID  uint64
	Quantity     decimal.Decimal
	Serial       bool
	AvailableQty decimal.Decimal
}

// TryConsumeLine validates every item of one order line and applies them all
// or none: a failing item leaves the ledger exactly as it was, so a rejected
// line cannot poison the allocation of the lines after it.
func (l *Ledger) TryConsumeLine(orderLineID uint64, items []ConsumeItem, allowNegative bool) []model.LineError {
	var errs []model.LineError
	stagedLots := make(map[lotKey]decimal.Decimal)
	stagedSerials := make(map[serialKey]bool)

	for _, item := range items {
		if item.Serial {
			key := serialKey{productID: item.ProductID, batchLabel: item.BatchLabel}
			if l.serials[key] || stagedSerials[key] {
				errs = append(errs, model.NewLineError(orderLineID, constant.ErrSerialAlreadyAllocated,
					fmt.Sprintf("serial %q of product %d is already used on this shipment", item.BatchLabel, item.ProductID)))
				continue
			}
			stagedSerials[key] = true
			continue
		}

		key := lotKey{productID: item.ProductID, batchLabel: item.BatchLabel, warehouseID: item.WarehouseID}
		consumed := l.lots[key].Add(stagedLots[key]).Add(item.Quantity)
		if consumed.GreaterThan(item.AvailableQty) && !allowNegative {
			errs = append(errs, model.NewLineError(orderLineID, constant.ErrInsufficientStock,
				fmt.Sprintf("lot %q of product %d in warehouse %d has %s available, %s requested in total",
					item.BatchLabel, item.ProductID, item.WarehouseID, item.AvailableQty.String(), consumed.String())))
			continue
		}
		stagedLots[key] = stagedLots[key].Add(item.Quantity)
	}

	if len(errs) > 0 {
		return errs
	}
	for key, qty := range stagedLots {
		l.lots[key] = l.lots[key].Add(qty)
	}
	for key := range stagedSerials {
		l.serials[key] = true
	}
	return nil
}

// SerialConsumed reports whether a serial key is present in the ledger.
func (l *Ledger) SerialConsumed(productID uint64, batchLabel string) bool {
	return l.serials[serialKey{productID: productID, batchLabel: batchLabel}]
}

// LotConsumed returns the cumulative quantity drawn from a lot key.
func (l *Ledger) LotConsumed(productID uint64, batchLabel string, warehouseID uint64) decimal.Decimal {
	return l.lots[lotKey{productID: productID, batchLabel: batchLabel, warehouseID: warehouseID}]
}
