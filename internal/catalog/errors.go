package catalog

import (
	"errors"
	"fmt"
)

const (
	// UnknownErrorDetail is used when an error response carries no readable detail.
	UnknownErrorDetail = "Unknown error"
	// ConnectErrorMessage is shown when the backend could not be reached at all.
	ConnectErrorMessage = "Failed to connect to backend service"
)

// detailer is implemented by application-level errors that carry the backend's
// "detail" message, such as backend.APIError.
type detailer interface {
	Detail() string
}

// ErrorMessage turns a fetch error into the text shown in the error banner.
// Application errors keep their detail; anything else is reported as a
// connection failure.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var d detailer
	if errors.As(err, &d) {
		detail := d.Detail()
		if detail == "" {
			detail = UnknownErrorDetail
		}
		return fmt.Sprintf("Failed to fetch providers: %s", detail)
	}
	return ConnectErrorMessage
}
