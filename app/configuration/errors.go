package configuration

import (
	"errors"
	"fmt"
)

// ErrInvalidTransformShape is returned when a link transform value is not a
// sequential (pattern, replacement) pair.
var ErrInvalidTransformShape = errors.New("Invalid array passed.")

// RegexError reports a pattern that cannot be used for extraction or transformation
type RegexError struct {
	Pattern string
	Reason  string
	Err     error
}

// Error implements the error interface
func (e *RegexError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid regex %q: %s: %v", e.Pattern, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid regex %q: %s", e.Pattern, e.Reason)
}

func (e *RegexError) Unwrap() error {
	return e.Err
}

// CookiesTypeError reports a link cookies value that does not implement cookies.Bag
type CookiesTypeError struct {
	Type string
}

// Error implements the error interface
func (e *CookiesTypeError) Error() string {
	return fmt.Sprintf("link cookies must implement cookies.Bag, got %s", e.Type)
}

// IsRegexError checks if an error is a RegexError
func IsRegexError(err error) bool {
	var regexErr *RegexError
	return errors.As(err, &regexErr)
}

// IsCookiesTypeError checks if an error is a CookiesTypeError
func IsCookiesTypeError(err error) bool {
	var typeErr *CookiesTypeError
	return errors.As(err, &typeErr)
}
