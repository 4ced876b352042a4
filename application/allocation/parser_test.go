package allocation_test

import (
	"testing"

	"github.com/muhammadheryan/fulfillment/application/allocation"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testLine(id, productID uint64, ordered, shipped int64) *model.OrderLine {
	return &model.OrderLine{
		ID:         id,
		OrderID:    1,
		ProductID:  productID,
		QtyOrdered: decimal.NewFromInt(ordered),
		QtyShipped: decimal.NewFromInt(shipped),
	}
}

func TestParser_Serials(t *testing.T) {
	parser := allocation.NewParser()
	line := testLine(11, 7, 3, 0)
	cls := allocation.Classification{ProductID: 7, TrackingMode: constant.TrackingSerial}
	policy := allocation.Policy{DefaultWarehouseID: 3}

	t.Run("serial count wins over submitted quantity", func(t *testing.T) {
		raw := &model.RawLineSubmission{
			OrderLineID: 11,
			Quantity:    "5",
			Serials: []model.SerialInput{
				{SerialNumber: "SN-1", WarehouseID: 4},
				{SerialNumber: "SN-2"},
			},
		}
		req, errs := parser.Parse(line, cls, raw, policy)
		assert.Empty(t, errs)
		if assert.Len(t, req.Entries, 2) {
			assert.Equal(t, model.EntrySerial, req.Entries[0].Kind)
			assert.Equal(t, "SN-1", req.Entries[0].BatchLabel)
			assert.Equal(t, uint64(4), req.Entries[0].WarehouseID)
			// Missing warehouse falls back to the default.
			assert.Equal(t, uint64(3), req.Entries[1].WarehouseID)
			assert.True(t, req.TotalQuantity().Equal(decimal.NewFromInt(2)))
		}
	})

	t.Run("blank serials are skipped", func(t *testing.T) {
		raw := &model.RawLineSubmission{
			OrderLineID: 11,
			Serials: []model.SerialInput{
				{SerialNumber: "  "},
				{SerialNumber: "SN-9"},
				{SerialNumber: ""},
			},
		}
		req, errs := parser.Parse(line, cls, raw, policy)
		assert.Empty(t, errs)
		if assert.Len(t, req.Entries, 1) {
			assert.Equal(t, "SN-9", req.Entries[0].BatchLabel)
		}
	})

	t.Run("quantity without serials is an error", func(t *testing.T) {
		raw := &model.RawLineSubmission{OrderLineID: 11, Quantity: "2"}
		req, errs := parser.Parse(line, cls, raw, policy)
		assert.Empty(t, req.Entries)
		if assert.Len(t, errs, 1) {
			assert.Equal(t, constant.ErrRequiredFieldMissing, errs[0].ErrType)
		}
	})

	t.Run("no serials and no quantity ships nothing", func(t *testing.T) {
		raw := &model.RawLineSubmission{OrderLineID: 11}
		req, errs := parser.Parse(line, cls, raw, policy)
		assert.Empty(t, errs)
		assert.Empty(t, req.Entries)
	})
}

func TestParser_Lots(t *testing.T) {
	parser := allocation.NewParser()
	line := testLine(12, 8, 10, 4)
	cls := allocation.Classification{ProductID: 8, TrackingMode: constant.TrackingLot}
	policy := allocation.Policy{DefaultWarehouseID: 3}

	t.Run("lot entries keep their quantities", func(t *testing.T) {
		raw := &model.RawLineSubmission{
			OrderLineID: 12,
			Lots: []model.LotInput{
				{LotNumber: "LOT-A", Quantity: "2.5", WarehouseID: 4},
				{LotNumber: "LOT-B", Quantity: "1"},
			},
		}
		req, errs := parser.Parse(line, cls, raw, policy)
		assert.Empty(t, errs)
		if assert.Len(t, req.Entries, 2) {
			assert.Equal(t, model.EntryLot, req.Entries[0].Kind)
			assert.True(t, req.Entries[0].Quantity.Equal(decimal.RequireFromString("2.5")))
			assert.Equal(t, uint64(4), req.Entries[0].WarehouseID)
			assert.Equal(t, uint64(3), req.Entries[1].WarehouseID)
		}
	})

	t.Run("sole zero-quantity lot ships remaining under ship-all", func(t *testing.T) {
		raw := &model.RawLineSubmission{
			OrderLineID: 12,
			Lots:        []model.LotInput{{LotNumber: "LOT-A"}},
		}
		req, errs := parser.Parse(line, cls, raw, allocation.Policy{ShipAll: true, DefaultWarehouseID: 3})
		assert.Empty(t, errs)
		if assert.Len(t, req.Entries, 1) {
			assert.True(t, req.Entries[0].Quantity.Equal(decimal.NewFromInt(6)))
		}
	})

	t.Run("zero-quantity lot is dropped without ship-all", func(t *testing.T) {
		raw := &model.RawLineSubmission{
			OrderLineID: 12,
			Lots:        []model.LotInput{{LotNumber: "LOT-A"}},
		}
		req, errs := parser.Parse(line, cls, raw, policy)
		assert.Empty(t, errs)
		assert.Empty(t, req.Entries)
	})

	t.Run("quantity without lots is an error", func(t *testing.T) {
		raw := &model.RawLineSubmission{OrderLineID: 12, Quantity: "3"}
		req, errs := parser.Parse(line, cls, raw, policy)
		assert.Empty(t, req.Entries)
		if assert.Len(t, errs, 1) {
			assert.Equal(t, constant.ErrRequiredFieldMissing, errs[0].ErrType)
		}
	})

	t.Run("unparseable lot quantity is collected", func(t *testing.T) {
		raw := &model.RawLineSubmission{
			OrderLineID: 12,
			Lots: []model.LotInput{
				{LotNumber: "LOT-A", Quantity: "abc"},
				{LotNumber: "LOT-B", Quantity: "2"},
			},
		}
		req, errs := parser.Parse(line, cls, raw, policy)
		if assert.Len(t, errs, 1) {
			assert.Equal(t, constant.ErrInvalidRequest, errs[0].ErrType)
		}
		assert.Len(t, req.Entries, 1)
	})
}

func TestParser_Untracked(t *testing.T) {
	parser := allocation.NewParser()
	line := testLine(10, 5, 20, 0)
	cls := allocation.Classification{ProductID: 5, TrackingMode: constant.TrackingNone}

	t.Run("simple quantity with default warehouse", func(t *testing.T) {
		raw := &model.RawLineSubmission{OrderLineID: 10, Quantity: "20"}
		req, errs := parser.Parse(line, cls, raw, allocation.Policy{DefaultWarehouseID: 3})
		assert.Empty(t, errs)
		if assert.Len(t, req.Entries, 1) {
			assert.Equal(t, model.EntrySimple, req.Entries[0].Kind)
			assert.Equal(t, uint64(3), req.Entries[0].WarehouseID)
			assert.True(t, req.Entries[0].Quantity.Equal(decimal.NewFromInt(20)))
		}
	})

	t.Run("quantity without any warehouse is an error", func(t *testing.T) {
		raw := &model.RawLineSubmission{OrderLineID: 10, Quantity: "20"}
		req, errs := parser.Parse(line, cls, raw, allocation.Policy{})
		assert.Empty(t, req.Entries)
		if assert.Len(t, errs, 1) {
			assert.Equal(t, constant.ErrRequiredFieldMissing, errs[0].ErrType)
		}
	})

	t.Run("warehouse split", func(t *testing.T) {
		raw := &model.RawLineSubmission{
			OrderLineID: 10,
			Warehouses: []model.WarehouseQtyInput{
				{WarehouseID: 3, Quantity: "12"},
				{WarehouseID: 4, Quantity: "8"},
				{WarehouseID: 5, Quantity: "0"},
			},
		}
		req, errs := parser.Parse(line, cls, raw, allocation.Policy{DefaultWarehouseID: 3})
		assert.Empty(t, errs)
		if assert.Len(t, req.Entries, 2) {
			assert.Equal(t, model.EntryWarehouseSplit, req.Entries[0].Kind)
			assert.True(t, req.TotalQuantity().Equal(decimal.NewFromInt(20)))
		}
	})

	t.Run("ship-all fills remaining quantity", func(t *testing.T) {
		partial := testLine(10, 5, 20, 15)
		raw := &model.RawLineSubmission{OrderLineID: 10}
		req, errs := parser.Parse(partial, cls, raw, allocation.Policy{ShipAll: true, DefaultWarehouseID: 3})
		assert.Empty(t, errs)
		if assert.Len(t, req.Entries, 1) {
			assert.True(t, req.Entries[0].Quantity.Equal(decimal.NewFromInt(5)))
		}
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		raw := &model.RawLineSubmission{OrderLineID: 10, Quantity: "-2"}
		req, errs := parser.Parse(line, cls, raw, allocation.Policy{DefaultWarehouseID: 3})
		assert.Empty(t, req.Entries)
		if assert.Len(t, errs, 1) {
			assert.Equal(t, constant.ErrInvalidRequest, errs[0].ErrType)
		}
	})
}

func TestParser_FreeText(t *testing.T) {
	parser := allocation.NewParser()
	line := testLine(13, 0, 2, 0)
	line.Description = "Installation on site"
	cls := allocation.Classification{}

	// Free-text lines never touch stock, so no warehouse is required.
	raw := &model.RawLineSubmission{OrderLineID: 13, Quantity: "2"}
	req, errs := parser.Parse(line, cls, raw, allocation.Policy{})
	assert.Empty(t, errs)
	if assert.Len(t, req.Entries, 1) {
		assert.Equal(t, uint64(0), req.Entries[0].WarehouseID)
		assert.True(t, req.Entries[0].Quantity.Equal(decimal.NewFromInt(2)))
	}
}
