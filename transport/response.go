package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
)

type apiResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  []model.LineError `json:"errors,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch e := err.(type) {
	case *errors.ValidationError:
		// Allocation rejections carry the full per-line error list so the
		// caller can redisplay the form with line-level annotations.
		w.WriteHeader(e.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(apiResponse{
			Code:    e.ErrorCode(),
			Message: e.Error(),
			Errors:  e.Lines,
		})
	case errors.CustomError:
		w.WriteHeader(e.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(apiResponse{
			Code:    e.ErrorCode(),
			Message: e.Error(),
		})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(apiResponse{
			Code:    constant.ErrorTypeCode[constant.ErrInternal],
			Message: constant.ErrorTypeMessage[constant.ErrInternal],
		})
	}
}
