package allocation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/application/allocation"
	"github.com/muhammadheryan/fulfillment/constant"
	mockProductRepository "github.com/muhammadheryan/fulfillment/mocks/repository/product"
	mockRedisRepository "github.com/muhammadheryan/fulfillment/mocks/repository/redis"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestClassifier_Classify(t *testing.T) {
	ctx := context.Background()
	tx := &sqlx.Tx{}
	cacheTTL := 5 * time.Minute
	policy := allocation.Policy{
		VirtualProductID:  99,
		MORefPrefix:       "Costum",
		FabricationMarker: "Fabrication",
	}

	t.Run("product line, tracking mode from cache", func(t *testing.T) {
		productRepo := mockProductRepository.NewProductRepository(t)
		redisRepo := mockRedisRepository.NewRepository(t)
		redisRepo.On("GetTrackingMode", ctx, uint64(7)).Return(constant.TrackingSerial, true, nil)

		classifier := allocation.NewClassifier(productRepo, redisRepo, cacheTTL)
		cls, err := classifier.Classify(ctx, tx, &model.OrderLine{ID: 11, ProductID: 7}, policy)
		assert.NoError(t, err)
		assert.Equal(t, uint64(7), cls.ProductID)
		assert.Equal(t, constant.TrackingSerial, cls.TrackingMode)
		assert.Empty(t, cls.MORef)
	})

	t.Run("product line, cache miss reads product and backfills", func(t *testing.T) {
		productRepo := mockProductRepository.NewProductRepository(t)
		redisRepo := mockRedisRepository.NewRepository(t)
		redisRepo.On("GetTrackingMode", ctx, uint64(5)).Return(constant.TrackingNone, false, nil)
		productRepo.On("GetProductByIDTx", ctx, tx, uint64(5)).
			Return(&model.Product{ID: 5, StatusBatch: constant.TrackingLot}, nil)
		redisRepo.On("SetTrackingMode", ctx, uint64(5), constant.TrackingLot, cacheTTL).Return(nil)

		classifier := allocation.NewClassifier(productRepo, redisRepo, cacheTTL)
		cls, err := classifier.Classify(ctx, tx, &model.OrderLine{ID: 10, ProductID: 5}, policy)
		assert.NoError(t, err)
		assert.Equal(t, constant.TrackingLot, cls.TrackingMode)
	})

	t.Run("missing product is fatal", func(t *testing.T) {
		productRepo := mockProductRepository.NewProductRepository(t)
		redisRepo := mockRedisRepository.NewRepository(t)
		redisRepo.On("GetTrackingMode", ctx, uint64(5)).Return(constant.TrackingNone, false, nil)
		productRepo.On("GetProductByIDTx", ctx, tx, uint64(5)).Return(nil, nil)

		classifier := allocation.NewClassifier(productRepo, redisRepo, cacheTTL)
		_, err := classifier.Classify(ctx, tx, &model.OrderLine{ID: 10, ProductID: 5}, policy)
		assert.EqualError(t, err, constant.ErrorTypeMessage[constant.ErrProductLookupFailed])
	})

	t.Run("product lookup failure is fatal", func(t *testing.T) {
		productRepo := mockProductRepository.NewProductRepository(t)
		redisRepo := mockRedisRepository.NewRepository(t)
		redisRepo.On("GetTrackingMode", ctx, uint64(5)).Return(constant.TrackingNone, false, nil)
		productRepo.On("GetProductByIDTx", ctx, tx, uint64(5)).Return(nil, errors.New("connection reset"))

		classifier := allocation.NewClassifier(productRepo, redisRepo, cacheTTL)
		_, err := classifier.Classify(ctx, tx, &model.OrderLine{ID: 10, ProductID: 5}, policy)
		assert.EqualError(t, err, constant.ErrorTypeMessage[constant.ErrProductLookupFailed])
	})

	t.Run("manufacturing order line maps to the virtual product", func(t *testing.T) {
		productRepo := mockProductRepository.NewProductRepository(t)
		redisRepo := mockRedisRepository.NewRepository(t)
		redisRepo.On("GetTrackingMode", ctx, uint64(99)).Return(constant.TrackingSerial, true, nil)

		classifier := allocation.NewClassifier(productRepo, redisRepo, cacheTTL)
		line := &model.OrderLine{ID: 11, Description: "Costum-PC-A1-2 (Fabrication)"}
		cls, err := classifier.Classify(ctx, tx, line, policy)
		assert.NoError(t, err)
		assert.Equal(t, uint64(99), cls.ProductID)
		assert.Equal(t, constant.TrackingSerial, cls.TrackingMode)
		assert.Equal(t, "Costum-PC-A1-2", cls.MORef)
	})

	t.Run("manufacturing order line without virtual product is fatal", func(t *testing.T) {
		productRepo := mockProductRepository.NewProductRepository(t)
		redisRepo := mockRedisRepository.NewRepository(t)

		classifier := allocation.NewClassifier(productRepo, redisRepo, cacheTTL)
		line := &model.OrderLine{ID: 11, Description: "Costum-PC-A1-2 (Fabrication)"}
		_, err := classifier.Classify(ctx, tx, line, allocation.Policy{MORefPrefix: "Costum", FabricationMarker: "Fabrication"})
		assert.EqualError(t, err, constant.ErrorTypeMessage[constant.ErrProductLookupFailed])
		productRepo.AssertNotCalled(t, "GetProductByIDTx", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("prefix without fabrication marker stays free text", func(t *testing.T) {
		productRepo := mockProductRepository.NewProductRepository(t)
		redisRepo := mockRedisRepository.NewRepository(t)

		classifier := allocation.NewClassifier(productRepo, redisRepo, cacheTTL)
		line := &model.OrderLine{ID: 13, Description: "Costum cabling, delivered separately"}
		cls, err := classifier.Classify(ctx, tx, line, policy)
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), cls.ProductID)
		assert.Equal(t, constant.TrackingNone, cls.TrackingMode)
	})

	t.Run("plain free text line", func(t *testing.T) {
		productRepo := mockProductRepository.NewProductRepository(t)
		redisRepo := mockRedisRepository.NewRepository(t)

		classifier := allocation.NewClassifier(productRepo, redisRepo, cacheTTL)
		line := &model.OrderLine{ID: 13, Description: "Installation on site"}
		cls, err := classifier.Classify(ctx, tx, line, policy)
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), cls.ProductID)
	})
}
