package cli

import (
	"regexp"
	"strings"
	"time"
)

// emailPattern validación ligera de email (misma regla del formulario web:
// algo@algo.dominio-de-2+).
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// FormErrors errores de validación por campo del formulario.
type FormErrors map[string]string

// ValidateForm aplica las reglas del formulario de alta/edición: nombre y
// cargo de al menos 2 caracteres, email bien formado y fecha opcional pero
// válida (YYYY-MM-DD). Devuelve un mapa vacío cuando todo está bien.
func ValidateForm(name, email, position, dateOfJoining string) FormErrors {
	errs := FormErrors{}
	if len(strings.TrimSpace(name)) < 2 {
		errs["name"] = "el nombre debe tener al menos 2 caracteres"
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		errs["email"] = "ingresa un email válido"
	}
	if len(strings.TrimSpace(position)) < 2 {
		errs["position"] = "el cargo debe tener al menos 2 caracteres"
	}
	if s := strings.TrimSpace(dateOfJoining); s != "" {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			errs["dateOfJoining"] = "ingresa una fecha válida (YYYY-MM-DD)"
		}
	}
	return errs
}
