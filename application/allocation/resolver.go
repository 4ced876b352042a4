package allocation

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	stockrepo "github.com/muhammadheryan/fulfillment/repository/stock"
)

// Resolver turns a (product, warehouse, lot/serial label) triple into the one
// stock batch record it denotes. It only reads; availability snapshots taken
// here are not re-checked until the storage transaction enforces them.
type Resolver struct {
	stockRepo stockrepo.StockRepository
}

func NewResolver(stockRepo stockrepo.StockRepository) *Resolver {
	return &Resolver{stockRepo: stockRepo}
}

// Resolve requires exactly one match. Zero matches means the label is not in
// stock where the caller looked; more than one is a data-integrity problem
// that is never silently picked from. Both come back as *EntryError; any
// other error is infrastructure failure.
func (r *Resolver) Resolve(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, batchLabel string) (*model.StockBatchRecord, error) {
	records, err := r.stockRepo.FindBatchRecordsTx(ctx, tx, productID, warehouseID, batchLabel)
	if err != nil {
		return nil, err
	}

	switch len(records) {
	case 1:
		return &records[0], nil
	case 0:
		return nil, &EntryError{
			Type:    constant.ErrBatchNotFound,
			Message: fmt.Sprintf("batch %q of product %d not found in %s", batchLabel, productID, warehouseScope(warehouseID)),
		}
	default:
		return nil, &EntryError{
			Type:    constant.ErrAmbiguousBatch,
			Message: fmt.Sprintf("batch %q of product %d matches %d stock records in %s", batchLabel, productID, len(records), warehouseScope(warehouseID)),
		}
	}
}

func warehouseScope(warehouseID uint64) string {
	if warehouseID == 0 {
		return "any warehouse"
	}
	return fmt.Sprintf("warehouse %d", warehouseID)
}
