package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidType          ErrorCode = 107
	ErrCodeInvalidPeriod        ErrorCode = 108
	ErrCodeMissingParameter     ErrorCode = 109
	ErrCodeInvalidVersion       ErrorCode = 110
	ErrCodeInvalidTimeRange     ErrorCode = 120

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeNoDataFound           ErrorCode = 204

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeIndicatorCalculation   ErrorCode = 302
	ErrCodeIndicatorPanicked      ErrorCode = 303
	ErrCodeRunCancelled           ErrorCode = 304

	// Output errors (700-799)
	ErrCodeOutputWriteFailed ErrorCode = 701
	ErrCodeInputParseFailed  ErrorCode = 702
	ErrCodeUnsupportedFormat ErrorCode = 703
)

// Category returns the range name an error code belongs to.
func (c ErrorCode) Category() string {
	switch {
	case c >= 100 && c < 200:
		return "validation"
	case c >= 200 && c < 300:
		return "data"
	case c >= 300 && c < 400:
		return "indicator"
	case c >= 700 && c < 800:
		return "output"
	default:
		return "general"
	}
}

// HTTPStatus maps an error code onto the status the HTTP API responds with.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ErrCodeIndicatorNotFound, ErrCodeDataNotFound, ErrCodeNoDataFound:
		return 404
	case ErrCodeIndicatorAlreadyExists:
		return 409
	case ErrCodeRunCancelled:
		return 504
	}

	switch c.Category() {
	case "validation":
		return 400
	case "output":
		if c == ErrCodeInputParseFailed || c == ErrCodeUnsupportedFormat {
			return 400
		}

		return 500
	default:
		return 500
	}
}
