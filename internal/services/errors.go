package services

// Typed service errors; handlers map each kind to an HTTP status.

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

type RateLimitError struct{ Message string }

func (e *RateLimitError) Error() string { return e.Message }

// BackendError marks a failed call to the model backend. The upstream detail
// stays in server logs; clients only see the generic message.
type BackendError struct{ Message string }

func (e *BackendError) Error() string { return e.Message }
