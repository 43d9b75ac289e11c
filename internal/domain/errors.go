package domain

import "errors"

// Error kinds that terminate a reconciliation pass. Callers wrap the cause
// with one of these and check it with errors.Is.
var (
	ErrCredentialMissing = errors.New("credential missing")
	ErrUpstreamFetch     = errors.New("upstream fetch failure")
	ErrStorage           = errors.New("storage failure")
)

// Kind returns a short label for the error kind wrapped by err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCredentialMissing):
		return "CredentialMissing"
	case errors.Is(err, ErrUpstreamFetch):
		return "UpstreamFetchFailure"
	case errors.Is(err, ErrStorage):
		return "StorageFailure"
	default:
		return "Unknown"
	}
}
