package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	// Field is set for validation failures so the UI can render the
	// message inline next to the offending input.
	Field string `json:"field,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
