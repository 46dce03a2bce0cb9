// Package utils holds small helpers shared across the scry CLI.
package utils

// ValidationError represents errors from flag validation that should not display usage
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
