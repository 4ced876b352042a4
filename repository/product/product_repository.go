package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetProductByIDTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.Product, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetProductByIDTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.Product, error) {
	var p model.Product
	row := tx.QueryRowxContext(ctx, "SELECT id, ref, COALESCE(label, '') AS label, status_batch FROM product WHERE id = ?", productID)
	if err := row.StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
