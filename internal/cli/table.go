package cli

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
)

// RecordsPerPage tamaño fijo de página de la tabla.
const RecordsPerPage = 5

// FilterByName filtra por subcadena del nombre, sin distinguir mayúsculas.
// Búsqueda vacía devuelve la lista completa.
func FilterByName(list []dto.EmployeeResponse, search string) []dto.EmployeeResponse {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return list
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}

// TotalPages número de páginas para n registros. Lista vacía tiene 1 página.
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + RecordsPerPage - 1) / RecordsPerPage
}

// Page devuelve la porción de la página (1-indexada). Una página fuera de
// rango se normaliza a la primera, igual que hace la tabla del frontend.
func Page(list []dto.EmployeeResponse, page int) []dto.EmployeeResponse {
	if page < 1 || page > TotalPages(len(list)) {
		page = 1
	}
	start := (page - 1) * RecordsPerPage
	if start >= len(list) {
		return []dto.EmployeeResponse{}
	}
	end := start + RecordsPerPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// RenderTable pinta la página actual como tabla de texto numerada.
func RenderTable(page []dto.EmployeeResponse, pageNum, totalPages int) string {
	var b strings.Builder
	b.WriteString(color.Bold.Sprintf("%-4s %-24s %-30s %-20s %-12s\n", "#", "NOMBRE", "EMAIL", "CARGO", "INGRESO"))
	if len(page) == 0 {
		b.WriteString("  (sin empleados)\n")
	}
	for i, e := range page {
		joined := "-"
		if e.DateOfJoining != nil {
			joined = e.DateOfJoining.Format("2006-01-02")
		}
		b.WriteString(fmt.Sprintf("%-4d %-24s %-30s %-20s %-12s\n", i+1, clip(e.Name, 24), clip(e.Email, 30), clip(e.Position, 20), joined))
	}
	b.WriteString(color.Gray.Sprintf("página %d de %d\n", pageNum, totalPages))
	return b.String()
}

// RenderDetail pinta la vista de solo lectura de un empleado.
func RenderDetail(e *dto.EmployeeResponse) string {
	if e == nil {
		return "(empleado no disponible)\n"
	}
	var b strings.Builder
	b.WriteString(color.Bold.Sprint("Detalle del empleado\n"))
	b.WriteString(fmt.Sprintf("  ID:      %s\n", e.ID))
	b.WriteString(fmt.Sprintf("  Nombre:  %s\n", e.Name))
	b.WriteString(fmt.Sprintf("  Email:   %s\n", e.Email))
	b.WriteString(fmt.Sprintf("  Cargo:   %s\n", e.Position))
	if e.DateOfJoining != nil {
		b.WriteString(fmt.Sprintf("  Ingreso: %s\n", e.DateOfJoining.Format("2006-01-02")))
	}
	b.WriteString(fmt.Sprintf("  Alta:    %s\n", e.CreatedAt.Format("2006-01-02 15:04")))
	return b.String()
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
