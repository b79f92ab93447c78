package authorspage

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
)
