package dto

// Envelope respuesta uniforme de la API: flag de éxito, mensaje y payload opcional.
// Viaja sin cambios desde el caso de uso hasta el cliente.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK construye un envelope de éxito.
func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail construye un envelope de fallo (sin payload).
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
