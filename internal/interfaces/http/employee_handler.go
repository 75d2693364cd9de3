package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// EmployeeHandler maneja las peticiones HTTP del directorio de empleados.
// Todas las respuestas usan el envelope {success, message, data?}.
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	log *logger.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar todos los empleados
// @Tags         employees
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/v1/employee/employeeDetails [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return h.internal(c, "listar empleados", err)
	}
	if len(list) == 0 {
		// Colección vacía es éxito, no error: data:[] explícito.
		return c.JSON(dto.OK("no hay empleados registrados", []dto.EmployeeResponse{}))
	}
	return c.JSON(dto.OK("empleados listados correctamente", list))
}

// GetByID godoc
// @Summary      Obtener un empleado por ID
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/v1/employee/employeeDetails/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("empleado no encontrado"))
		}
		return h.internal(c, "obtener empleado", err)
	}
	return c.JSON(dto.OK("empleado obtenido correctamente", employee))
}

// Create godoc
// @Summary      Crear un empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/v1/employee/createEmployee [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	employee, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("name, email, position y dateOfJoining (YYYY-MM-DD) son requeridos"))
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("ya existe un empleado con ese email"))
		}
		return h.internal(c, "crear empleado", err)
	}
	return c.JSON(dto.OK("empleado creado correctamente", employee))
}

// Edit godoc
// @Summary      Editar un empleado (merge parcial)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empleado"
// @Param        body  body  dto.EditEmployeeRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/v1/employee/editEmployee/{id} [put]
func (h *EmployeeHandler) Edit(c *fiber.Ctx) error {
	var in dto.EditEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	employee, err := h.uc.Edit(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("empleado no encontrado"))
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("los campos editados no pueden quedar vacíos y la fecha debe ser YYYY-MM-DD"))
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("ya existe un empleado con ese email"))
		}
		return h.internal(c, "editar empleado", err)
	}
	return c.JSON(dto.OK("empleado actualizado correctamente", employee))
}

// Delete godoc
// @Summary      Eliminar un empleado
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/v1/employee/deleteEmployee/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("empleado no encontrado"))
		}
		return h.internal(c, "eliminar empleado", err)
	}
	return c.JSON(dto.OK("empleado eliminado correctamente", nil))
}

// internal registra el error real solo en el servidor y responde un envelope
// genérico: el detalle del driver nunca viaja al cliente.
func (h *EmployeeHandler) internal(c *fiber.Ctx, op string, err error) error {
	h.log.Error().Err(err).Str("op", op).Msg("fallo interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno del servidor"))
}
