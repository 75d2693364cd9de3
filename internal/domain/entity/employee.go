package entity

import "time"

// Employee representa un registro de empleado en el directorio de RRHH.
// Email se guarda siempre en minúsculas y sin espacios; el índice único
// de la colección lo garantiza a nivel de almacenamiento.
type Employee struct {
	ID            string
	Name          string
	Email         string
	Position      string
	DateOfJoining *time.Time // opcional en almacenamiento, requerido al crear
	CreatedAt     time.Time
}
