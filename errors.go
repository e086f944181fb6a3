package datetime

import "errors"

// ErrMissingData indicates that the data provider has no entry for the requested locale/calendar.
var ErrMissingData = errors.New("datetime: missing data")

// ErrUnsupportedSkeleton indicates that no skeleton in the locale table is close enough to the request.
var ErrUnsupportedSkeleton = errors.New("datetime: unsupported skeleton")

// ErrMissingSymbol indicates that a symbol table has no entry for the rendered value.
var ErrMissingSymbol = errors.New("datetime: missing symbol")

// ErrWriteFailure wraps errors returned by the output sink.
var ErrWriteFailure = errors.New("datetime: write failure")

// ErrCalendarMismatch indicates an input built for a different calendar than the formatter.
var ErrCalendarMismatch = errors.New("datetime: calendar mismatch")

// ErrInvalidPattern indicates malformed pattern or glue text.
var ErrInvalidPattern = errors.New("datetime: invalid pattern")

// ErrUnsupportedField indicates a pattern letter the renderer does not know.
var ErrUnsupportedField = errors.New("datetime: unsupported field")

// ErrMissingInputField indicates the input cannot supply a value a field needs.
var ErrMissingInputField = errors.New("datetime: missing input field")

// ErrInvalidOptions indicates an unusable formatter request or configuration.
var ErrInvalidOptions = errors.New("datetime: invalid options")
