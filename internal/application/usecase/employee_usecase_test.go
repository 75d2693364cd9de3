package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memRepo implementa repository.EmployeeRepository sobre un mapa. failWith
// simula el almacenamiento caído: toda operación devuelve ese error.
type memRepo struct {
	byID     map[string]entity.Employee
	failWith error
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[string]entity.Employee)}
}

func (r *memRepo) Create(e *entity.Employee) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, other := range r.byID {
		if strings.EqualFold(other.Email, e.Email) {
			return domain.ErrDuplicate
		}
	}
	r.byID[e.ID] = *e
	return nil
}

func (r *memRepo) GetByID(id string) (*entity.Employee, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *memRepo) GetByEmail(email string) (*entity.Employee, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, e := range r.byID {
		if strings.EqualFold(e.Email, email) {
			copia := e
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memRepo) List() ([]*entity.Employee, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*entity.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		copia := e
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memRepo) Update(e *entity.Employee) error {
	if r.failWith != nil {
		return r.failWith
	}
	for id, other := range r.byID {
		if id != e.ID && strings.EqualFold(other.Email, e.Email) {
			return domain.ErrDuplicate
		}
	}
	r.byID[e.ID] = *e
	return nil
}

func (r *memRepo) Delete(id string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func newUC() (*usecase.EmployeeUseCase, *memRepo) {
	repo := newMemRepo()
	return usecase.NewEmployeeUseCase(repo), repo
}

func alice() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:          "Alice Doe",
		Email:         "alice@example.com",
		Position:      "Engineer",
		DateOfJoining: "2024-01-15",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Round-trip: crear y leer por el id devuelto da el mismo registro, con la
// fecha normalizada a medianoche UTC e id/createdAt asignados.
func TestCreate_RoundTrip(t *testing.T) {
	uc, _ := newUC()

	created, err := uc.Create(alice())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID, "el id lo asigna el almacenamiento al crear")
	assert.False(t, created.CreatedAt.IsZero(), "createdAt debe quedar asignado")
	require.NotNil(t, created.DateOfJoining)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *created.DateOfJoining,
		"la fecha de ingreso se normaliza a medianoche UTC")

	fetched, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Email, fetched.Email)
	assert.Equal(t, created.Position, fetched.Position)
	assert.Equal(t, *created.DateOfJoining, *fetched.DateOfJoining)
}

func TestCreate_CamposFaltantes(t *testing.T) {
	uc, _ := newUC()

	casos := map[string]dto.CreateEmployeeRequest{
		"sin nombre": {Email: "a@b.co", Position: "QA", DateOfJoining: "2024-01-15"},
		"sin email":  {Name: "Ana", Position: "QA", DateOfJoining: "2024-01-15"},
		"sin cargo":  {Name: "Ana", Email: "a@b.co", DateOfJoining: "2024-01-15"},
		"sin fecha":  {Name: "Ana", Email: "a@b.co", Position: "QA"},
		"solo espacios": {
			Name: "   ", Email: "a@b.co", Position: "QA", DateOfJoining: "2024-01-15",
		},
	}
	for nombre, in := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Una fecha ilegible rechaza el alta: nunca se guarda el registro con fecha nula.
func TestCreate_FechaInvalida(t *testing.T) {
	uc, repo := newUC()

	in := alice()
	in.DateOfJoining = "no-es-fecha"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.byID, "no debe persistirse nada")
}

func TestCreate_NormalizaEmail(t *testing.T) {
	uc, _ := newUC()

	in := alice()
	in.Email = "  Alice@Example.COM "
	created, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)
}

// Unicidad de email insensible a mayúsculas y espacios; el primer registro
// queda intacto tras el segundo intento.
func TestCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newUC()

	first, err := uc.Create(alice())
	require.NoError(t, err)

	in := alice()
	in.Name = "Otra Persona"
	in.Email = " ALICE@example.com "
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	fetched, err := uc.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", fetched.Name, "el primer registro no debe verse afectado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_NoEncontrado(t *testing.T) {
	uc, _ := newUC()

	// uuid válido pero inexistente
	_, err := uc.GetByID("a2b46a10-59d0-4d2f-a7a3-0f2f8f6d1c11")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// id malformado cuenta como no encontrado, no como fallo interno
	_, err = uc.GetByID("esto-no-es-un-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Colección vacía es éxito con lista vacía, nunca un error.
func TestList_Vacia(t *testing.T) {
	uc, _ := newUC()

	list, err := uc.List()
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestList_FalloAlmacenamiento(t *testing.T) {
	uc, repo := newUC()
	repo.failWith = assert.AnError

	_, err := uc.List()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edit
// ──────────────────────────────────────────────────────────────────────────────

func TestEdit_MergeParcial(t *testing.T) {
	uc, _ := newUC()
	created, err := uc.Create(alice())
	require.NoError(t, err)

	nuevoCargo := "Senior Engineer"
	updated, err := uc.Edit(created.ID, dto.EditEmployeeRequest{Position: &nuevoCargo})
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer", updated.Position)
	assert.Equal(t, created.Name, updated.Name, "los campos ausentes del cuerpo quedan intactos")
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, *created.DateOfJoining, *updated.DateOfJoining)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "createdAt nunca se modifica")
}

// Editar con cuerpo vacío deja el registro exactamente igual.
func TestEdit_CuerpoVacio(t *testing.T) {
	uc, _ := newUC()
	created, err := uc.Create(alice())
	require.NoError(t, err)

	updated, err := uc.Edit(created.ID, dto.EditEmployeeRequest{})
	require.NoError(t, err)
	assert.Equal(t, *created, *updated)
}

// La validación de campos se repite sobre el resultado del merge: un nombre
// vacío o un email duplicado no pueden colarse por una edición.
func TestEdit_ValidaResultadoDelMerge(t *testing.T) {
	uc, _ := newUC()
	created, err := uc.Create(alice())
	require.NoError(t, err)

	vacio := "   "
	_, err = uc.Edit(created.ID, dto.EditEmployeeRequest{Name: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	malaFecha := "15/01/2024"
	_, err = uc.Edit(created.ID, dto.EditEmployeeRequest{DateOfJoining: &malaFecha})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	fetched, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", fetched.Name, "el registro no debe cambiar tras ediciones rechazadas")
}

func TestEdit_EmailDuplicado(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.Create(alice())
	require.NoError(t, err)

	otro, err := uc.Create(dto.CreateEmployeeRequest{
		Name: "Bob", Email: "bob@example.com", Position: "HR", DateOfJoining: "2023-05-01",
	})
	require.NoError(t, err)

	duplicado := "ALICE@example.com"
	_, err = uc.Edit(otro.ID, dto.EditEmployeeRequest{Email: &duplicado})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Re-asignar el mismo email al mismo empleado no es conflicto.
func TestEdit_MismoEmailNoEsConflicto(t *testing.T) {
	uc, _ := newUC()
	created, err := uc.Create(alice())
	require.NoError(t, err)

	mismo := "Alice@Example.com"
	updated, err := uc.Edit(created.ID, dto.EditEmployeeRequest{Email: &mismo})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestEdit_NoEncontrado(t *testing.T) {
	uc, _ := newUC()

	cargo := "QA"
	_, err := uc.Edit("a2b46a10-59d0-4d2f-a7a3-0f2f8f6d1c11", dto.EditEmployeeRequest{Position: &cargo})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Edit("id-malformado", dto.EditEmployeeRequest{Position: &cargo})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Get, Edit y Delete sobre un id inexistente devuelven todos no-encontrado:
// el llamador distingue "borrado" de "nunca existió".
func TestDelete_NoEncontrado(t *testing.T) {
	uc, _ := newUC()

	err := uc.Delete("a2b46a10-59d0-4d2f-a7a3-0f2f8f6d1c11")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("id-malformado")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo
// ──────────────────────────────────────────────────────────────────────────────

// Alta → listado → edición parcial → borrado → lectura final.
func TestEscenarioCompleto(t *testing.T) {
	uc, _ := newUC()

	created, err := uc.Create(alice())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	cargo := "Senior Engineer"
	updated, err := uc.Edit(created.ID, dto.EditEmployeeRequest{Position: &cargo})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Position)
	assert.Equal(t, "alice@example.com", updated.Email, "editar el cargo no toca el email")

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
