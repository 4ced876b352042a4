package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/application/allocation"
	"github.com/muhammadheryan/fulfillment/cmd/config"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	orderrepo "github.com/muhammadheryan/fulfillment/repository/order"
	productrepo "github.com/muhammadheryan/fulfillment/repository/product"
	redisrepo "github.com/muhammadheryan/fulfillment/repository/redis"
	shipmentrepo "github.com/muhammadheryan/fulfillment/repository/shipment"
	stockrepo "github.com/muhammadheryan/fulfillment/repository/stock"
	txrepo "github.com/muhammadheryan/fulfillment/repository/tx"
	"github.com/muhammadheryan/fulfillment/thirdparty/rabbitmq"
	cerrors "github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ShipmentApp interface {
	CreateShipment(ctx context.Context, orderID uint64, req *model.ShipmentRequest) (*model.ShipmentResponse, error)
	GetShipment(ctx context.Context, shipmentID uint64) (*model.ShipmentDetailResponse, error)
	ListOrderShipments(ctx context.Context, orderID uint64) ([]model.Shipment, error)
	CloseOrder(ctx context.Context, orderID uint64) error
}

type shipmentAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	orderRepo    orderrepo.OrderRepository
	stockRepo    stockrepo.StockRepository
	shipmentRepo shipmentrepo.ShipmentRepository
	publisher    *rabbitmq.Publisher

	classifier *allocation.Classifier
	parser     *allocation.Parser
	resolver   *allocation.Resolver
}

func NewShipmentApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	orderRepo orderrepo.OrderRepository,
	productRepo productrepo.ProductRepository,
	stockRepo stockrepo.StockRepository,
	shipmentRepo shipmentrepo.ShipmentRepository,
	redisRepo redisrepo.Repository,
	publisher *rabbitmq.Publisher,
) ShipmentApp {
	return &shipmentAppImpl{
		config:       config,
		txRepo:       txRepo,
		orderRepo:    orderRepo,
		stockRepo:    stockRepo,
		shipmentRepo: shipmentRepo,
		publisher:    publisher,
		classifier:   allocation.NewClassifier(productRepo, redisRepo, config.Allocation.TrackingModeCacheTTL),
		parser:       allocation.NewParser(),
		resolver:     allocation.NewResolver(stockRepo),
	}
}

// CreateShipment reconciles a submitted set of ship quantities against the
// order's lines and warehouse stock, then persists the shipment header and
// detail lines as one transaction. Per-line failures are accumulated and the
// whole request is rejected if any line failed; nothing is written in that
// case.
func (s *shipmentAppImpl) CreateShipment(ctx context.Context, orderID uint64, req *model.ShipmentRequest) (*model.ShipmentResponse, error) {
	policy := allocation.Policy{
		ShipAll:            req.ShipAll || s.config.Allocation.ShipAllDefault,
		AllowNegativeStock: s.config.Allocation.AllowNegativeStock,
		VirtualProductID:   s.config.Allocation.VirtualProductID,
		MORefPrefix:        s.config.Allocation.MORefPrefix,
		FabricationMarker:  s.config.Allocation.FabricationMarker,
		DefaultWarehouseID: req.DefaultWarehouseID,
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateShipment] begin tx", zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	b := newBuilder()

	order, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CreateShipment] get order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		b.rollback()
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		b.rollback()
		return nil, cerrors.SetCustomError(constant.ErrNotFound)
	}
	if order.Status != constant.OrderStatusValidated && order.Status != constant.OrderStatusShipping {
		b.rollback()
		return nil, cerrors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	lines, err := s.orderRepo.GetOrderLinesTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CreateShipment] get order lines", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		b.rollback()
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}

	submissions, lineErrs := indexSubmissions(lines, req.Lines)

	// Collecting: classify, parse, resolve and claim stock line by line.
	// Per-line and per-entry failures accumulate so the caller gets the
	// complete error report; only classifier failures abort right away.
	ledger := allocation.NewLedger()
	var allocs []*model.AllocationRequest
	for i := range lines {
		line := &lines[i]
		raw, ok := submissions[line.ID]
		if !ok {
			raw = &model.RawLineSubmission{OrderLineID: line.ID}
		}

		cls, err := s.classifier.Classify(ctx, tx, line, policy)
		if err != nil {
			logger.Error("[CreateShipment] classify line", zap.Uint64("order_line_id", line.ID), zap.String("error", err.Error()))
			b.rollback()
			return nil, err
		}

		alloc, errs := s.parser.Parse(line, cls, raw, policy)
		if len(errs) > 0 {
			lineErrs = append(lineErrs, errs...)
			continue
		}
		if len(alloc.Entries) == 0 {
			continue
		}

		errs, err = s.allocateLine(ctx, tx, ledger, alloc, policy)
		if err != nil {
			b.rollback()
			return nil, err
		}
		if len(errs) > 0 {
			lineErrs = append(lineErrs, errs...)
			continue
		}
		allocs = append(allocs, alloc)
	}

	if err := b.advance(constant.BuilderValidating); err != nil {
		b.rollback()
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	if len(lineErrs) > 0 {
		b.rollback()
		logger.Info("[CreateShipment] submission rejected", zap.Uint64("order_id", orderID), zap.Int("errors", len(lineErrs)))
		return nil, cerrors.SetValidationError(lineErrs)
	}
	if len(allocs) == 0 {
		b.rollback()
		return nil, cerrors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := b.advance(constant.BuilderPersisting); err != nil {
		b.rollback()
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	resp, err := s.persistShipment(ctx, tx, order, allocs, policy)
	if err != nil {
		b.rollback()
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateShipment] commit tx", zap.String("error", err.Error()))
		b.rollback()
		return nil, cerrors.SetCustomError(constant.ErrPersistenceFailure)
	}
	committed = true
	_ = b.advance(constant.BuilderCommitted)

	if s.publisher != nil {
		msg := rabbitmq.ShipmentCreatedMessage{
			ShipmentID: resp.ShipmentID,
			OrderID:    orderID,
			CreatedAt:  time.Now(),
		}
		if err := s.publisher.PublishShipmentCreated(msg); err != nil {
			logger.Error("[CreateShipment] publish shipment created", zap.String("error", err.Error()))
		}
	}

	return resp, nil
}

// allocateLine resolves the lot/serial entries of one parsed line against
// stock and offers them to the cross-line ledger. The returned LineErrors
// are per-entry failures; a non-nil error is fatal infrastructure trouble.
func (s *shipmentAppImpl) allocateLine(ctx context.Context, tx *sqlx.Tx, ledger *allocation.Ledger, alloc *model.AllocationRequest, policy allocation.Policy) ([]model.LineError, error) {
	var errs []model.LineError
	var items []allocation.ConsumeItem

	for i := range alloc.Entries {
		entry := &alloc.Entries[i]
		if entry.Kind != model.EntryLot && entry.Kind != model.EntrySerial {
			continue
		}

		if entry.Kind == model.EntrySerial && alloc.MORef != "" {
			if moErr := allocation.ValidateMOSerial(alloc.MORef, entry.BatchLabel); moErr != nil {
				errs = append(errs, model.NewLineError(alloc.OrderLineID, moErr.Type, moErr.Message))
				continue
			}
		}

		rec, err := s.resolver.Resolve(ctx, tx, alloc.ProductID, entry.WarehouseID, entry.BatchLabel)
		if err != nil {
			if entryErr, ok := err.(*allocation.EntryError); ok {
				errs = append(errs, model.NewLineError(alloc.OrderLineID, entryErr.Type, entryErr.Message))
				continue
			}
			logger.Error("[CreateShipment] resolve batch", zap.Uint64("order_line_id", alloc.OrderLineID), zap.String("error", err.Error()))
			return nil, cerrors.SetCustomError(constant.ErrInternal)
		}

		entry.BatchID = rec.BatchID
		if entry.WarehouseID == 0 {
			entry.WarehouseID = rec.WarehouseID
		}
		items = append(items, allocation.ConsumeItem{
			ProductID:    alloc.ProductID,
			BatchLabel:   entry.BatchLabel,
			WarehouseID:  entry.WarehouseID,
			Quantity:     entry.Quantity,
			Serial:       entry.Kind == model.EntrySerial,
			AvailableQty: rec.AvailableQty,
		})
	}

	// The ledger is only touched once every entry of the line resolved, so a
	// failing line leaves no partial claims behind.
	if len(errs) > 0 {
		return errs, nil
	}
	return ledger.TryConsumeLine(alloc.OrderLineID, items, policy.AllowNegativeStock), nil
}

// persistShipment writes the header and one detail line per allocation entry,
// deducting stock as it goes. Any write failure aborts the whole transaction.
func (s *shipmentAppImpl) persistShipment(ctx context.Context, tx *sqlx.Tx, order *model.OrderDetail, allocs []*model.AllocationRequest, policy allocation.Policy) (*model.ShipmentResponse, error) {
	ref := "SHP-" + strings.ToUpper(uuid.NewString()[:8])
	shipmentID, err := s.shipmentRepo.InsertShipmentTx(ctx, tx, &model.InsertShipmentTxItem{
		OrderID: order.ID,
		Ref:     ref,
		Status:  constant.ShipmentStatusValidated,
	})
	if err != nil {
		logger.Error("[CreateShipment] insert shipment", zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrPersistenceFailure)
	}

	details := make([]model.ShipmentDetailLine, 0)
	for _, alloc := range allocs {
		lineTotal := decimal.Zero
		for _, entry := range alloc.Entries {
			detail := model.ShipmentDetailLine{
				ShipmentID:  shipmentID,
				OrderLineID: alloc.OrderLineID,
				ProductID:   alloc.ProductID,
				WarehouseID: entry.WarehouseID,
				BatchID:     entry.BatchID,
				BatchLabel:  entry.BatchLabel,
				Quantity:    entry.Quantity,
			}
			id, err := s.shipmentRepo.InsertShipmentLineTx(ctx, tx, &detail)
			if err != nil {
				logger.Error("[CreateShipment] insert shipment line", zap.Uint64("order_line_id", alloc.OrderLineID), zap.String("error", err.Error()))
				return nil, cerrors.SetCustomError(constant.ErrPersistenceFailure)
			}
			detail.ID = id

			if err := s.deductStock(ctx, tx, alloc, &entry, policy); err != nil {
				logger.Error("[CreateShipment] deduct stock", zap.Uint64("order_line_id", alloc.OrderLineID), zap.String("error", err.Error()))
				if _, ok := err.(cerrors.CustomError); ok {
					return nil, err
				}
				return nil, cerrors.SetCustomError(constant.ErrPersistenceFailure)
			}

			details = append(details, detail)
			lineTotal = lineTotal.Add(entry.Quantity)
		}

		if lineTotal.IsPositive() {
			if err := s.orderRepo.AddShippedQtyTx(ctx, tx, alloc.OrderLineID, lineTotal); err != nil {
				logger.Error("[CreateShipment] update shipped qty", zap.Uint64("order_line_id", alloc.OrderLineID), zap.String("error", err.Error()))
				return nil, cerrors.SetCustomError(constant.ErrPersistenceFailure)
			}
		}
	}

	if order.Status == constant.OrderStatusValidated {
		if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, order.ID, int(constant.OrderStatusShipping)); err != nil {
			logger.Error("[CreateShipment] update order status", zap.String("error", err.Error()))
			return nil, cerrors.SetCustomError(constant.ErrPersistenceFailure)
		}
	}

	return &model.ShipmentResponse{
		ShipmentID: shipmentID,
		Ref:        ref,
		Lines:      details,
	}, nil
}

func (s *shipmentAppImpl) deductStock(ctx context.Context, tx *sqlx.Tx, alloc *model.AllocationRequest, entry *model.AllocationEntry, policy allocation.Policy) error {
	switch {
	case entry.BatchID != 0:
		return s.stockRepo.DeductBatchStockTx(ctx, tx, entry.BatchID, entry.Quantity, policy.AllowNegativeStock)
	case alloc.ProductID != 0 && entry.WarehouseID != 0:
		return s.stockRepo.DeductWarehouseStockTx(ctx, tx, alloc.ProductID, entry.WarehouseID, entry.Quantity, policy.AllowNegativeStock)
	default:
		// Free-text line: a detail record without stock movement.
		return nil
	}
}

func (s *shipmentAppImpl) GetShipment(ctx context.Context, shipmentID uint64) (*model.ShipmentDetailResponse, error) {
	shipment, err := s.shipmentRepo.GetShipmentByID(ctx, shipmentID)
	if err != nil {
		logger.Error("[GetShipment] get shipment", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	if shipment == nil {
		return nil, cerrors.SetCustomError(constant.ErrNotFound)
	}

	detailLines, err := s.shipmentRepo.GetShipmentLines(ctx, shipmentID)
	if err != nil {
		logger.Error("[GetShipment] get shipment lines", zap.Uint64("shipment_id", shipmentID), zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}

	return &model.ShipmentDetailResponse{
		Shipment: *shipment,
		Lines:    detailLines,
	}, nil
}

func (s *shipmentAppImpl) ListOrderShipments(ctx context.Context, orderID uint64) ([]model.Shipment, error) {
	shipments, err := s.shipmentRepo.ListShipmentsByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[ListOrderShipments] list shipments", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	return shipments, nil
}

// CloseOrder marks an order closed once every line is fully shipped. It is a
// no-op while quantities remain, so the shipment-created consumer can call it
// after every shipment.
func (s *shipmentAppImpl) CloseOrder(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CloseOrder] begin tx", zap.String("error", err.Error()))
		return cerrors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CloseOrder] get order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return cerrors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return cerrors.SetCustomError(constant.ErrNotFound)
	}
	if order.Status != constant.OrderStatusShipping {
		return nil
	}

	lines, err := s.orderRepo.GetOrderLinesTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CloseOrder] get order lines", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return cerrors.SetCustomError(constant.ErrInternal)
	}
	for i := range lines {
		if lines[i].RemainingQty().IsPositive() {
			return nil
		}
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, int(constant.OrderStatusClosed)); err != nil {
		logger.Error("[CloseOrder] update status", zap.String("error", err.Error()))
		return cerrors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CloseOrder] commit tx", zap.String("error", err.Error()))
		return cerrors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[CloseOrder] order fully shipped", zap.Uint64("order_id", orderID))
	return nil
}

// indexSubmissions maps submissions by order line id and flags submissions
// that reference lines the order does not have.
func indexSubmissions(lines []model.OrderLine, submitted []model.RawLineSubmission) (map[uint64]*model.RawLineSubmission, []model.LineError) {
	known := make(map[uint64]bool, len(lines))
	for i := range lines {
		known[lines[i].ID] = true
	}

	byLine := make(map[uint64]*model.RawLineSubmission, len(submitted))
	var errs []model.LineError
	for i := range submitted {
		sub := &submitted[i]
		if !known[sub.OrderLineID] {
			errs = append(errs, model.NewLineError(sub.OrderLineID, constant.ErrInvalidRequest,
				fmt.Sprintf("order has no line %d", sub.OrderLineID)))
			continue
		}
		byLine[sub.OrderLineID] = sub
	}
	return byLine, errs
}
