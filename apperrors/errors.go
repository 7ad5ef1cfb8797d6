// Package apperrors defines the error taxonomy shared by all controllers and
// maps each class to its HTTP status code in one place.
package apperrors

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrEmptyCart is returned by checkout when the user's cart has no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotFound marks a missing order, variant or delivery location.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an ownership or role violation.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError rejects malformed or missing input before any mutation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps an underlying query or transaction failure.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage failure: " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Err: err}
}

// Status maps an error to its HTTP status code. Anything outside the
// taxonomy is treated as a storage-level failure.
func Status(err error) int {
	switch {
	case IsValidation(err), errors.Is(err, ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the error as {"message": ...} with its mapped status.
// Internal details are logged server-side, never sent to the client.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
