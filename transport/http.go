package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	shipmentapp "github.com/muhammadheryan/fulfillment/application/shipment"
	"github.com/muhammadheryan/fulfillment/cmd/config"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	utilscontext "github.com/muhammadheryan/fulfillment/utils/context"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	validatorx "github.com/muhammadheryan/fulfillment/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	ShipmentApp shipmentapp.ShipmentApp
}

func NewTransport(cfg *config.Config, ShipmentApp shipmentapp.ShipmentApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ShipmentApp: ShipmentApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Protected routes
	mux.HandleFunc("/v1/order/{orderID}/shipment", rh.CreateShipment).Methods(http.MethodPost)
	mux.HandleFunc("/v1/order/{orderID}/shipments", rh.ListOrderShipments).Methods(http.MethodGet)
	mux.HandleFunc("/v1/shipment/{shipmentID}", rh.GetShipment).Methods(http.MethodGet)

	// Internal routes (service-to-service, static key)
	internal := mux.PathPrefix("/internal/").Subrouter()
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))
	internal.HandleFunc("/v1/order/{orderID}/close", rh.CloseOrder).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(cfg))

	return mux
}

// Health handler
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// CreateShipment handler
// @Summary Create a shipment for an order
// @Description Allocate submitted quantities, lots and serials against stock and persist the shipment
// @Tags Shipment
// @Accept json
// @Produce json
// @Param orderID path int true "Order ID"
// @Param request body model.ShipmentRequest true "Shipment Request"
// @Success 200 {object} model.ShipmentResponse
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/order/{orderID}/shipment [post]
func (s *RestHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.ShipmentApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if userID, ok := utilscontext.GetUserID(ctx); ok {
		logger.Info("[CreateShipment] request", zap.Uint64("order_id", orderID), zap.Uint64("user_id", userID))
	}

	res, err := s.ShipmentApp.CreateShipment(ctx, orderID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetShipment handler
// @Summary Get one shipment
// @Description Shipment header with its detail lines
// @Tags Shipment
// @Produce json
// @Param shipmentID path int true "Shipment ID"
// @Success 200 {object} model.ShipmentDetailResponse
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/shipment/{shipmentID} [get]
func (s *RestHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shipmentID, err := pathID(r, "shipmentID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShipmentApp.GetShipment(ctx, shipmentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListOrderShipments handler
// @Summary List shipments of an order
// @Tags Shipment
// @Produce json
// @Param orderID path int true "Order ID"
// @Success 200 {array} model.Shipment
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/order/{orderID}/shipments [get]
func (s *RestHandler) ListOrderShipments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShipmentApp.ListOrderShipments(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CloseOrder handler, called by the shipment-created consumer
func (s *RestHandler) CloseOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ShipmentApp.CloseOrder(ctx, orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}
