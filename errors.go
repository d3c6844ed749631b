package bookstore

import "errors"

// Sentinel errors returned by Inventory operations. They are local,
// deterministic conditions: the caller fixes its input and retries, there is
// nothing transient to wait for.
var (
	// ErrNotFound is returned when no book exists under the requested title.
	ErrNotFound = errors.New("book not found")
	// ErrInsufficientStock is returned when a stock change would drive the
	// stock count negative. The book is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrNotConfirmed is returned by Remove when the book still has stock and
	// the caller did not confirm the removal.
	ErrNotConfirmed = errors.New("removal not confirmed")
	// ErrInvalidInput is returned for inputs the collaborator layer should
	// have rejected, such as a negative price.
	ErrInvalidInput = errors.New("invalid input")
)
