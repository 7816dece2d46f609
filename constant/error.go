package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidState
	ErrIntegrityFault
	ErrOperationInProgress
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrInvalidState:        "invalid state for operation",
	ErrIntegrityFault:      "inventory integrity fault",
	ErrOperationInProgress: "another operation is in progress for this wave",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrInvalidState:        http.StatusConflict,
	ErrIntegrityFault:      http.StatusInternalServerError,
	ErrOperationInProgress: http.StatusLocked,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrInvalidState:        "0005",
	ErrIntegrityFault:      "0006",
	ErrOperationInProgress: "0007",
}
