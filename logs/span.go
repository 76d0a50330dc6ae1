package logs

// Span identifies one machine run in log records.
type Span string

type spanKey struct{}

var SpanKey spanKey
