package allocation

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	productrepo "github.com/muhammadheryan/fulfillment/repository/product"
	redisrepo "github.com/muhammadheryan/fulfillment/repository/redis"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

// Classification is the result of inspecting one order line: which product
// effectively ships, how its stock is tracked, and the manufacturing order
// reference when the line is MO-backed.
type Classification struct {
	ProductID    uint64
	TrackingMode constant.TrackingMode
	MORef        string
}

type Classifier struct {
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
	cacheTTL    time.Duration
}

func NewClassifier(productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository, cacheTTL time.Duration) *Classifier {
	return &Classifier{
		productRepo: productRepo,
		redisRepo:   redisRepo,
		cacheTTL:    cacheTTL,
	}
}

// Classify determines the effective product and tracking mode of an order
// line without mutating it. A failed product lookup is fatal for the whole
// request: the line cannot be allocated at all.
func (c *Classifier) Classify(ctx context.Context, tx *sqlx.Tx, line *model.OrderLine, policy Policy) (Classification, error) {
	if line.ProductID != 0 {
		mode, err := c.trackingMode(ctx, tx, line.ProductID)
		if err != nil {
			return Classification{}, err
		}
		return Classification{ProductID: line.ProductID, TrackingMode: mode}, nil
	}

	if isMOBacked(line.Description, policy) {
		if policy.VirtualProductID == 0 {
			logger.Error("[Classify] no virtual product configured for MO line", zap.Uint64("order_line_id", line.ID))
			return Classification{}, errors.SetCustomError(constant.ErrProductLookupFailed)
		}
		mode, err := c.trackingMode(ctx, tx, policy.VirtualProductID)
		if err != nil {
			return Classification{}, err
		}
		return Classification{
			ProductID:    policy.VirtualProductID,
			TrackingMode: mode,
			MORef:        extractMORef(line.Description),
		}, nil
	}

	// Plain free-text line, nothing to track.
	return Classification{ProductID: 0, TrackingMode: constant.TrackingNone}, nil
}

func (c *Classifier) trackingMode(ctx context.Context, tx *sqlx.Tx, productID uint64) (constant.TrackingMode, error) {
	if mode, ok, err := c.redisRepo.GetTrackingMode(ctx, productID); err == nil && ok {
		return mode, nil
	}

	product, err := c.productRepo.GetProductByIDTx(ctx, tx, productID)
	if err != nil {
		logger.Error("[Classify] get product failed", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrProductLookupFailed)
	}
	if product == nil {
		return 0, errors.SetCustomError(constant.ErrProductLookupFailed)
	}

	if err := c.redisRepo.SetTrackingMode(ctx, productID, product.StatusBatch, c.cacheTTL); err != nil {
		logger.Warn("[Classify] cache tracking mode failed", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
	}
	return product.StatusBatch, nil
}

// isMOBacked reports whether a free-text description encodes a
// manufacturing-order line: it starts with the MO reference prefix and
// carries the fabrication marker somewhere in the text.
func isMOBacked(description string, policy Policy) bool {
	if policy.MORefPrefix == "" || policy.FabricationMarker == "" {
		return false
	}
	return strings.HasPrefix(description, policy.MORefPrefix) &&
		strings.Contains(description, policy.FabricationMarker)
}

// extractMORef takes the leading token of the description, up to the first
// whitespace.
func extractMORef(description string) string {
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
