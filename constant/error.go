package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidOrderStatus
	ErrProductLookupFailed
	ErrRequiredFieldMissing
	ErrBatchNotFound
	ErrAmbiguousBatch
	ErrSerialAlreadyAllocated
	ErrSerialBaseMismatch
	ErrSerialSuffixInvalid
	ErrInsufficientStock
	ErrPersistenceFailure
	ErrAllocationRejected
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrInvalidOrderStatus:     "order status does not allow shipment",
	ErrProductLookupFailed:    "product lookup failed",
	ErrRequiredFieldMissing:   "required field missing",
	ErrBatchNotFound:          "batch or serial not found in stock",
	ErrAmbiguousBatch:         "batch or serial is ambiguous in stock",
	ErrSerialAlreadyAllocated: "serial already used on this shipment",
	ErrSerialBaseMismatch:     "serial does not match manufacturing order reference",
	ErrSerialSuffixInvalid:    "serial suffix is not a valid unit index",
	ErrInsufficientStock:      "insufficient stock",
	ErrPersistenceFailure:     "failed to persist shipment",
	ErrAllocationRejected:     "shipment allocation rejected",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusBadRequest,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrInvalidOrderStatus:     http.StatusBadRequest,
	ErrProductLookupFailed:    http.StatusBadRequest,
	ErrRequiredFieldMissing:   http.StatusBadRequest,
	ErrBatchNotFound:          http.StatusBadRequest,
	ErrAmbiguousBatch:         http.StatusConflict,
	ErrSerialAlreadyAllocated: http.StatusBadRequest,
	ErrSerialBaseMismatch:     http.StatusBadRequest,
	ErrSerialSuffixInvalid:    http.StatusBadRequest,
	ErrInsufficientStock:      http.StatusBadRequest,
	ErrPersistenceFailure:     http.StatusInternalServerError,
	ErrAllocationRejected:     http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrInvalidOrderStatus:     "0005",
	ErrProductLookupFailed:    "0006",
	ErrRequiredFieldMissing:   "0007",
	ErrBatchNotFound:          "0008",
	ErrAmbiguousBatch:         "0009",
	ErrSerialAlreadyAllocated: "0010",
	ErrSerialBaseMismatch:     "0011",
	ErrSerialSuffixInvalid:    "0012",
	ErrInsufficientStock:      "0013",
	ErrPersistenceFailure:     "0014",
	ErrAllocationRejected:     "0015",
}
