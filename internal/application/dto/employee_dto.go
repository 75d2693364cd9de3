package dto

import "time"

// CreateEmployeeRequest cuerpo de POST /createEmployee. Los cuatro campos son obligatorios.
type CreateEmployeeRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Position      string `json:"position"`
	DateOfJoining string `json:"dateOfJoining"` // "YYYY-MM-DD"
}

// EditEmployeeRequest cuerpo de PUT /editEmployee/:id. Campos puntero: solo
// se sobreescribe lo que venga presente en el JSON (merge superficial).
type EditEmployeeRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Position      *string `json:"position"`
	DateOfJoining *string `json:"dateOfJoining"`
}

// IsEmpty indica que el cuerpo no trae ningún campo (el registro queda intacto).
func (r EditEmployeeRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Position == nil && r.DateOfJoining == nil
}

// EmployeeResponse representación de un empleado en respuestas.
type EmployeeResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Position      string     `json:"position"`
	DateOfJoining *time.Time `json:"dateOfJoining,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
