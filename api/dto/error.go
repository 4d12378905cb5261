package dto

// Machine readable error kinds.
const (
	ConfigurationErrorKind = "configuration_error"
	TransportErrorKind     = "transport_error"
	UpstreamErrorKind      = "upstream_error"
	NotFoundKind           = "not_found"
	InvalidRequestKind     = "invalid_request"
	CanceledKind           = "canceled"
	InternalErrorKind      = "internal_error"
)

// ErrorResponse is the body of every failure.
type ErrorResponse struct {
	Ok      bool   `json:"ok"`
	Error   string `json:"error"`
	Details any    `json:"details"`
}
