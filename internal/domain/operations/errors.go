// internal/domain/operations/errors.go
package operations

import "errors"

var (
	// ErrAlreadyValidated is returned when a validate call hits a document
	// that already went through the one-way transition. This is a conflict
	// the caller must surface, not a retryable no-op.
	ErrAlreadyValidated = errors.New("document already validated")

	// ErrDocumentLocked is returned when an update or delete targets a
	// validated document. Validated documents are immutable.
	ErrDocumentLocked = errors.New("validated documents cannot be modified")
)
