package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Pricing engine.
	InvalidInput            failure.ErrorCode = "InvalidInput"
	DegenerateConfiguration failure.ErrorCode = "DegenerateConfiguration"

	// Market positioning.
	InvalidPriceRange  failure.ErrorCode = "InvalidPriceRange"
	CatalogUnavailable failure.ErrorCode = "CatalogUnavailable"
)
