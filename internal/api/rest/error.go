package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeConflict         ErrorCode = "conflict"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodeValidationFailed ErrorCode = "validation_failed"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeLedgerError   ErrorCode = "ledger_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}
	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondDomainError maps a keeper/query error to its HTTP shape. The
// operation has already been rolled back by the time this runs.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrClassNotFound), errors.Is(err, domain.ErrNFTNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Not found", err.Error())
	case errors.Is(err, domain.ErrClassAlreadyExists), errors.Is(err, domain.ErrNFTAlreadyExists):
		respondWithError(c, http.StatusConflict, errCodeConflict, "Already exists", err.Error())
	case errors.Is(err, domain.ErrPermissionDenied):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Permission denied", err.Error())
	case errors.Is(err, domain.ErrInvalidCursor), errors.Is(err, domain.ErrInvalidArgument):
		respondWithError(c, http.StatusBadRequest, errCodeBadRequest, "Bad request", err.Error())
	case errors.Is(err, domain.ErrLedgerFailure):
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, errCodeLedgerError, "Ledger operation failed")
	default:
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, errCodeInternalError, "Internal server error")
	}
}
