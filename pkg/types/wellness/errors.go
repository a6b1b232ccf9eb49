package wellness

import "errors"

// ErrNotFound is returned by storage lookups when no document exists at the
// requested path. Aggregation treats it as "no data yet", not as a failure.
var ErrNotFound = errors.New("document not found")
