package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	Logger     *logger.Logger
}

// Router registra las rutas de la API. Las formas de ruta vienen del contrato
// original del servicio y no deben cambiar.
func Router(app *fiber.App, deps RouterDeps) {
	employees := app.Group("/api/v1/employee")
	handler := NewEmployeeHandler(deps.EmployeeUC, deps.Logger)

	employees.Get("/employeeDetails", handler.List)
	employees.Get("/employeeDetails/:id", handler.GetByID)
	employees.Post("/createEmployee", handler.Create)
	employees.Put("/editEmployee/:id", handler.Edit)
	employees.Delete("/deleteEmployee/:id", handler.Delete)
}
