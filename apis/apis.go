package apis

import (
	"github.com/kritsada-kn/book-catalog/errors"
)

// ErrorResponse is the envelope every failed request is answered with.
// Successful requests answer with the plain entity body.
type ErrorResponse struct {
	Error errors.BaseError `json:"error"`
}
