package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
// El almacenamiento es una colección única de documentos de empleado;
// GetByID devuelve (nil, nil) cuando el id no existe.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) (bool, error)
}
