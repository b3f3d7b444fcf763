package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta genérica de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
