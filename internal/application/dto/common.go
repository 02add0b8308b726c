package dto

// ErrorResponse cuerpo de error estándar de la API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse cuerpo de confirmación (eliminaciones).
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse estado del servicio y su base de datos.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
