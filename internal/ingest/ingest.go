// Package ingest carries the typed parse errors shared by every
// file-backed Connector and the single policy for handling them:
// log once, skip the row, keep going (spec.md §7).
package ingest

import (
	"fmt"
	"log/slog"
)

// MalformedRecordError reports a CSV row that failed to parse: wrong
// field count, an invalid enum, or a malformed price.
type MalformedRecordError struct {
	Line  int
	Raw   string
	Cause error
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %q: %v", e.Line, e.Raw, e.Cause)
}

func (e MalformedRecordError) Unwrap() error { return e.Cause }

// UnknownProductError reports a productId absent from the catalog.
type UnknownProductError struct {
	ProductID string
}

func (e UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q", e.ProductID)
}

// LogSkip applies this package's uniform skip policy: log the error
// once at warn level and return control to the caller, which drops
// the record and continues.
func LogSkip(err error) {
	slog.Warn("skipping record", "error", err)
}
