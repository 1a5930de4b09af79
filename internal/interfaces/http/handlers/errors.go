// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
	"github.com/your-org/stockmaster-backend/internal/domain/operations"
	"gorm.io/gorm"
)

// respondError maps domain errors onto HTTP status codes. Sentinel errors from
// the inventory and operations packages carry their own semantics; anything
// unrecognized is treated as a client error so the message still reaches the
// caller.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, inventory.ErrStockNotFound),
		errors.Is(err, inventory.ErrWarehouseNotFound):
		status = http.StatusNotFound
	case errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, inventory.ErrConcurrencyConflict),
		errors.Is(err, operations.ErrAlreadyValidated),
		errors.Is(err, operations.ErrDocumentLocked):
		status = http.StatusConflict
	case errors.Is(err, inventory.ErrInvalidQuantity):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		message = "Resource not found"
	}

	c.JSON(status, gin.H{
		"error": message,
	})
}

// actorID pulls the authenticated user's ID out of the context for movement
// attribution, nil when the request is anonymous
func actorID(c *gin.Context) *uint {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := userID.(uint)
	if !ok {
		return nil
	}
	return &id
}
