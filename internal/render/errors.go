package render

import (
	"fmt"
	"net/http"
)

// XML tags shared by the endpoints.
const (
	ResponseTag = "response"
	DriverTag   = "driver"
	errorTag    = "error"
)

// ErrorKind enumerates the error conditions the API maps to responses.
type ErrorKind int

const (
	// ErrorNotFound is a driver lookup miss.
	ErrorNotFound ErrorKind = iota
	// ErrorRouteNotFound is a request for an unknown path.
	ErrorRouteNotFound
	// ErrorTooManyRequests is a request rejected by the rate limiter.
	ErrorTooManyRequests
	// ErrorInternal is any unexpected query or serialization failure.
	ErrorInternal
)

const (
	// The double space before "was" is part of the published message.
	driverNotFoundMessage  = "404 Not Found: A driver with the '%s' ID  was not found."
	routeNotFoundMessage   = "404 Not Found: The requested URL was not found on the server."
	tooManyRequestsMessage = "429 Too Many Requests: rate limit exceeded."
	internalErrorMessage   = "500 Internal Server Error: There is an error in the application. Please contact the administrator."
)

// APIError is an error condition together with its public message.
type APIError struct {
	Kind    ErrorKind
	Message string
}

// DriverNotFound builds the lookup-miss error. The id is embedded in
// the caller's original casing.
func DriverNotFound(id string) APIError {
	return APIError{Kind: ErrorNotFound, Message: fmt.Sprintf(driverNotFoundMessage, id)}
}

// RouteNotFound builds the unknown-path error.
func RouteNotFound() APIError {
	return APIError{Kind: ErrorRouteNotFound, Message: routeNotFoundMessage}
}

// TooManyRequests builds the rate-limit rejection error.
func TooManyRequests() APIError {
	return APIError{Kind: ErrorTooManyRequests, Message: tooManyRequestsMessage}
}

// Internal builds the generic failure error.
func Internal() APIError {
	return APIError{Kind: ErrorInternal, Message: internalErrorMessage}
}

// Status maps the error kind to its HTTP status code.
func (e APIError) Status() int {
	switch e.Kind {
	case ErrorNotFound, ErrorRouteNotFound:
		return http.StatusNotFound
	case ErrorTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// RenderError serializes an error body in the requested format: an
// {"error": message} object for JSON, or an <error> element whose text
// is the message for XML.
func RenderError(format string, e APIError) ([]byte, string, error) {
	if format == FormatXML {
		return Render(format, Text(e.Message), errorTag, "")
	}
	return Render(format, Object(Record{{Name: errorTag, Value: e.Message}}), "", "")
}
