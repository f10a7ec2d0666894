package apis

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kritsada-kn/book-catalog/errors"
)

// WriteErrorJSON maps a service error onto an HTTP status and writes the
// error envelope. Errors outside the coded taxonomy answer 500.
func WriteErrorJSON(ctx *gin.Context, err error) {

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: errors.UnknownError.New(err)})
		return
	}

	var statusCode int

	switch assertedError.Code {
	case errors.ObjectIDNotFoundErrorCode:
		statusCode = http.StatusNotFound
	case errors.StorageUnavailableErrorCode:
		statusCode = http.StatusServiceUnavailable
	case errors.UpstreamUnavailableErrorCode:
		statusCode = http.StatusBadGateway
	default:
		statusCode = http.StatusBadRequest
	}

	ctx.JSON(statusCode, ErrorResponse{Error: assertedError})
}
