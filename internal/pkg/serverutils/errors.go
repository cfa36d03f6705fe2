package serverutils

import "fmt"

// NotAuthenticatedError signals an action that needs a user id was invoked
// without one. The action is aborted before any store call.
type NotAuthenticatedError struct {
	Action string
}

func (e *NotAuthenticatedError) Error() string {
	return fmt.Sprintf("not authenticated: %s requires a user id", e.Action)
}

// PersistenceError wraps a failed document-store operation. It is logged with
// context and surfaced to the user as a generic message, never retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RenderError wraps a PDF generation failure. A failed export produces no blob.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("export failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// SubscriptionError is recorded when a live query's error callback fires. The
// feed keeps its last list (stale but not crashed) and does not auto-retry.
type SubscriptionError struct {
	Collection string
	Err        error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscription on %s failed: %v", e.Collection, e.Err)
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}
