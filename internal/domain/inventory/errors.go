// internal/domain/inventory/errors.go
package inventory

import "errors"

var (
	// ErrInvalidQuantity is returned when a mutation is requested with a
	// non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrStockNotFound is returned when a decrement targets a product/location
	// pair that has no stock row.
	ErrStockNotFound = errors.New("stock not found")

	// ErrInsufficientStock is returned when a decrement would drive a stock
	// quantity negative.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrConcurrencyConflict is returned when two mutations race on the same
	// stock row; the caller should retry the whole operation.
	ErrConcurrencyConflict = errors.New("concurrent stock modification detected")

	// ErrWarehouseNotFound is returned when a referenced warehouse does not exist.
	ErrWarehouseNotFound = errors.New("warehouse not found")
)
