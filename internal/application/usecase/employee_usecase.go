package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

const joinDateLayout = "2006-01-02"

// EmployeeUseCase casos de uso CRUD para el directorio de empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create da de alta un empleado. Los cuatro campos son obligatorios y la fecha
// debe parsear como YYYY-MM-DD: una fecha ilegible se rechaza aquí, nunca se
// guarda como nula. El email se normaliza (trim + minúsculas) antes de validar
// unicidad.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	position := strings.TrimSpace(in.Position)
	if name == "" || email == "" || position == "" || strings.TrimSpace(in.DateOfJoining) == "" {
		return nil, domain.ErrInvalidInput
	}
	joinDate, err := parseJoinDate(in.DateOfJoining)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	existing, _ := uc.repo.GetByEmail(email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	employee := &entity.Employee{
		ID:            uuid.New().String(),
		Name:          name,
		Email:         email,
		Position:      position,
		DateOfJoining: &joinDate,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID. Un id con formato inválido cuenta como
// no encontrado, no como fallo interno.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// List devuelve todos los empleados. Colección vacía devuelve slice vacío, no error.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// Edit aplica un merge superficial: solo los campos presentes en el cuerpo
// sobreescriben el registro, el resto queda intacto. La validación de campos
// (nombre/cargo no vacíos, email único, fecha válida) se repite sobre el
// resultado del merge. Un cuerpo vacío deja el registro tal cual.
func (uc *EmployeeUseCase) Edit(id string, in dto.EditEmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.IsEmpty() {
		return toEmployeeResponse(employee), nil
	}

	if in.Name != nil {
		employee.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		employee.Email = normalizeEmail(*in.Email)
	}
	if in.Position != nil {
		employee.Position = strings.TrimSpace(*in.Position)
	}
	if in.DateOfJoining != nil {
		joinDate, err := parseJoinDate(*in.DateOfJoining)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		employee.DateOfJoining = &joinDate
	}

	if employee.Name == "" || employee.Email == "" || employee.Position == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != nil {
		other, _ := uc.repo.GetByEmail(employee.Email)
		if other != nil && other.ID != employee.ID {
			return nil, domain.ErrDuplicate
		}
	}

	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado. Borrar un id desconocido (o malformado) devuelve
// no encontrado para que el llamador distinga "borrado" de "nunca existió".
func (uc *EmployeeUseCase) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseJoinDate normaliza la fecha de ingreso a medianoche UTC del día calendario.
func parseJoinDate(s string) (time.Time, error) {
	t, err := time.Parse(joinDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Position:      e.Position,
		DateOfJoining: e.DateOfJoining,
		CreatedAt:     e.CreatedAt,
	}
}
