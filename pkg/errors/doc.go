// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to load component",
//	    cause,
//	    map[string]interface{}{
//	        "componentId": id,
//	        "backend": "mongo",
//	    },
//	)
//
// The HTTP layer uses CodeOf and HTTPStatus to turn any error returned by a
// handler dependency into a response status.
package errors
