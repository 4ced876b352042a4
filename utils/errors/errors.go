package errors

import (
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// ValidationError carries every per-line failure collected while parsing and
// allocating one shipment submission, so the caller can redisplay the form
// with line-level annotations instead of a single opaque message.
type ValidationError struct {
	Lines []model.LineError
}

func (v *ValidationError) Error() string {
	return constant.ErrorTypeMessage[constant.ErrAllocationRejected]
}

func (v *ValidationError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrAllocationRejected]
}

func (v *ValidationError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrAllocationRejected]
}

func SetValidationError(lines []model.LineError) *ValidationError {
	return &ValidationError{Lines: lines}
}
