package dataset

import "errors"

// Error taxonomy of the dataset pipeline. Failures are wrapped with
// fmt.Errorf("...: %w", ...) so callers can classify them with errors.Is.
var (
	// ErrConfig marks an invalid period, granularity, or region selection.
	// It is always raised synchronously at configuration time.
	ErrConfig = errors.New("invalid dataset configuration")

	// ErrState marks a pipeline operation invoked out of its required order.
	ErrState = errors.New("dataset operation out of order")

	// ErrNetwork marks a connection that could not be established or timed
	// out. Commands treat it as fatal: log the cause and exit non-zero.
	ErrNetwork = errors.New("network failure")

	// ErrRemoteFetch marks an HTTP response with a 4xx/5xx status.
	ErrRemoteFetch = errors.New("remote fetch failed")

	// ErrFormat marks a missing, truncated, or malformed dataset file.
	ErrFormat = errors.New("malformed dataset file")
)
