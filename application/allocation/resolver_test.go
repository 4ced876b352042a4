package allocation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/application/allocation"
	"github.com/muhammadheryan/fulfillment/constant"
	mockStockRepository "github.com/muhammadheryan/fulfillment/mocks/repository/stock"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	tx := &sqlx.Tx{}

	t.Run("single match", func(t *testing.T) {
		stockRepo := mockStockRepository.NewStockRepository(t)
		stockRepo.On("FindBatchRecordsTx", ctx, tx, uint64(5), uint64(3), "LOT-A").
			Return([]model.StockBatchRecord{
				{BatchID: 501, ProductID: 5, WarehouseID: 3, BatchLabel: "LOT-A", AvailableQty: decimal.NewFromInt(10)},
			}, nil)

		resolver := allocation.NewResolver(stockRepo)
		rec, err := resolver.Resolve(ctx, tx, 5, 3, "LOT-A")
		assert.NoError(t, err)
		assert.Equal(t, uint64(501), rec.BatchID)
	})

	t.Run("no match", func(t *testing.T) {
		stockRepo := mockStockRepository.NewStockRepository(t)
		stockRepo.On("FindBatchRecordsTx", ctx, tx, uint64(5), uint64(3), "LOT-X").
			Return(nil, nil)

		resolver := allocation.NewResolver(stockRepo)
		_, err := resolver.Resolve(ctx, tx, 5, 3, "LOT-X")
		var entryErr *allocation.EntryError
		if assert.ErrorAs(t, err, &entryErr) {
			assert.Equal(t, constant.ErrBatchNotFound, entryErr.Type)
		}
	})

	t.Run("ambiguous match is never picked from", func(t *testing.T) {
		stockRepo := mockStockRepository.NewStockRepository(t)
		// Unscoped lookup: the same lot label sits in two warehouses.
		stockRepo.On("FindBatchRecordsTx", ctx, tx, uint64(5), uint64(0), "LOT-A").
			Return([]model.StockBatchRecord{
				{BatchID: 501, ProductID: 5, WarehouseID: 3, BatchLabel: "LOT-A"},
				{BatchID: 502, ProductID: 5, WarehouseID: 4, BatchLabel: "LOT-A"},
			}, nil)

		resolver := allocation.NewResolver(stockRepo)
		_, err := resolver.Resolve(ctx, tx, 5, 0, "LOT-A")
		var entryErr *allocation.EntryError
		if assert.ErrorAs(t, err, &entryErr) {
			assert.Equal(t, constant.ErrAmbiguousBatch, entryErr.Type)
		}
	})

	t.Run("infrastructure failure passes through", func(t *testing.T) {
		stockRepo := mockStockRepository.NewStockRepository(t)
		stockRepo.On("FindBatchRecordsTx", ctx, tx, uint64(5), uint64(3), "LOT-A").
			Return(nil, errors.New("connection reset"))

		resolver := allocation.NewResolver(stockRepo)
		_, err := resolver.Resolve(ctx, tx, 5, 3, "LOT-A")
		assert.EqualError(t, err, "connection reset")
	})
}
