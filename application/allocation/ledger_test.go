package allocation_test

import (
	"testing"

	"github.com/muhammadheryan/fulfillment/application/allocation"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func serialItem(productID uint64, label string, warehouseID uint64) allocation.ConsumeItem {
	return allocation.ConsumeItem{
		ProductID:    productID,
		BatchLabel:   label,
		WarehouseID:  warehouseID,
		Quantity:     decimal.NewFromInt(1),
		Serial:       true,
		AvailableQty: decimal.NewFromInt(1),
	}
}

func lotItem(productID uint64, label string, warehouseID uint64, qty, available int64) allocation.ConsumeItem {
	return allocation.ConsumeItem{
		ProductID:    productID,
		BatchLabel:   label,
		WarehouseID:  warehouseID,
		Quantity:     decimal.NewFromInt(qty),
		AvailableQty: decimal.NewFromInt(available),
	}
}

func TestLedger_SerialConsumedOncePerRequest(t *testing.T) {
	ledger := allocation.NewLedger()

	errs := ledger.TryConsumeLine(10, []allocation.ConsumeItem{serialItem(5, "SN-1", 3)}, false)
	assert.Empty(t, errs)
	assert.True(t, ledger.SerialConsumed(5, "SN-1"))

	// Same serial from a different warehouse on another line: still one
	// physical unit, must be rejected.
	errs = ledger.TryConsumeLine(11, []allocation.ConsumeItem{serialItem(5, "SN-1", 4)}, false)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, constant.ErrSerialAlreadyAllocated, errs[0].ErrType)
		assert.Equal(t, uint64(11), errs[0].OrderLineID)
	}
}

func TestLedger_DuplicateSerialWithinLine(t *testing.T) {
	ledger := allocation.NewLedger()

	errs := ledger.TryConsumeLine(10, []allocation.ConsumeItem{
		serialItem(5, "SN-1", 3),
		serialItem(5, "SN-1", 3),
	}, false)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, constant.ErrSerialAlreadyAllocated, errs[0].ErrType)
	}
	// The failing line must not leave partial claims behind.
	assert.False(t, ledger.SerialConsumed(5, "SN-1"))
}

func TestLedger_LotCumulativeAvailability(t *testing.T) {
	ledger := allocation.NewLedger()

	errs := ledger.TryConsumeLine(10, []allocation.ConsumeItem{lotItem(5, "LOT-A", 3, 6, 10)}, false)
	assert.Empty(t, errs)

	// 6 + 3 stays within the 10 available.
	errs = ledger.TryConsumeLine(11, []allocation.ConsumeItem{lotItem(5, "LOT-A", 3, 3, 10)}, false)
	assert.Empty(t, errs)
	assert.True(t, ledger.LotConsumed(5, "LOT-A", 3).Equal(decimal.NewFromInt(9)))

	// 9 + 2 exceeds it.
	errs = ledger.TryConsumeLine(12, []allocation.ConsumeItem{lotItem(5, "LOT-A", 3, 2, 10)}, false)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, constant.ErrInsufficientStock, errs[0].ErrType)
	}
	assert.True(t, ledger.LotConsumed(5, "LOT-A", 3).Equal(decimal.NewFromInt(9)))
}

func TestLedger_NegativeTransferPolicy(t *testing.T) {
	ledger := allocation.NewLedger()

	errs := ledger.TryConsumeLine(10, []allocation.ConsumeItem{lotItem(5, "LOT-A", 3, 15, 10)}, true)
	assert.Empty(t, errs)
	assert.True(t, ledger.LotConsumed(5, "LOT-A", 3).Equal(decimal.NewFromInt(15)))
}

func TestLedger_SameLotDifferentWarehouses(t *testing.T) {
	ledger := allocation.NewLedger()

	// Lot keys are per warehouse, so the same label in another warehouse has
	// its own availability.
	errs := ledger.TryConsumeLine(10, []allocation.ConsumeItem{
		lotItem(5, "LOT-A", 3, 10, 10),
		lotItem(5, "LOT-A", 4, 10, 10),
	}, false)
	assert.Empty(t, errs)
}

func TestLedger_FailingLineLeavesLedgerUntouched(t *testing.T) {
	ledger := allocation.NewLedger()

	errs := ledger.TryConsumeLine(10, []allocation.ConsumeItem{serialItem(5, "SN-1", 3)}, false)
	assert.Empty(t, errs)

	// Line 11 mixes a valid lot draw with an already-used serial: the whole
	// line fails and the lot draw is not recorded.
	errs = ledger.TryConsumeLine(11, []allocation.ConsumeItem{
		lotItem(6, "LOT-B", 3, 4, 10),
		serialItem(5, "SN-1", 3),
	}, false)
	assert.Len(t, errs, 1)
	assert.True(t, ledger.LotConsumed(6, "LOT-B", 3).IsZero())
}
