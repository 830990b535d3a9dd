package errx

import "net/http"

// WrapProvider maps a completion-provider failure to the unified AppError
// type. Every provider failure is reported identically; the triage pipeline
// never distinguishes timeouts from API errors, it only falls back.
func WrapProvider(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, ProviderErrorMessage)
}
