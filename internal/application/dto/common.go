package dto

import "io"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse respuesta del endpoint /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// FileUpload archivo recibido en un formulario multipart.
// El frontend lo reenvía al catálogo como bytes opacos; solo el catálogo lo persiste.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}
