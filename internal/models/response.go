package models

// ErrorBody is the JSON shape of every failed response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// ErrorResponseWithDetails attaches the underlying error text; callers only
// pass details in development.
func ErrorResponseWithDetails(message, details string) ErrorBody {
	return ErrorBody{
		Error:   message,
		Details: details,
	}
}

type WebhookAck struct {
	Received bool `json:"received"`
}
