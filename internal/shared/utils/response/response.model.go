package response

// StandardApiResponse is the envelope every JSON endpoint responds with
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload, also sent with errors that carry state
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}
