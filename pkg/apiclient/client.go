// Package apiclient envuelve la API de empleados: un método por operación.
// Cada método desempaqueta el envelope {success, message, data} y ante
// cualquier fallo notifica al usuario y devuelve un valor seguro: quien llama
// nunca inspecciona el envelope ni recibe un error de transporte.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
)

// Rutas de la API (relativas a la base, ej. http://localhost:4000/api/v1).
const (
	pathEmployeeDetails = "/employee/employeeDetails"
	pathCreateEmployee  = "/employee/createEmployee"
	pathEditEmployee    = "/employee/editEmployee"
	pathDeleteEmployee  = "/employee/deleteEmployee"
)

// Notifier recibe las notificaciones transitorias de la capa de datos.
// Loading devuelve el dismiss del indicador "en vuelo", que se ejecuta
// siempre, tanto en éxito como en fallo.
type Notifier interface {
	Loading(msg string) (dismiss func())
	Success(msg string)
	Error(msg string)
}

// envelope espejo de dto.Envelope con el payload aún sin decodificar.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client cliente tipado de la API de empleados.
type Client struct {
	baseURL string
	http    *http.Client
	notify  Notifier
}

// New construye el cliente. baseURL sin barra final, ej. http://localhost:4000/api/v1.
func New(baseURL string, notify Notifier) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		notify:  notify,
	}
}

// List obtiene todos los empleados. Ante fallo devuelve slice vacío.
func (c *Client) List() []dto.EmployeeResponse {
	dismiss := c.notify.Loading("Cargando empleados...")
	defer dismiss()

	env, err := c.do(http.MethodGet, pathEmployeeDetails, nil)
	if err != nil {
		c.notify.Error("No se pudieron cargar los empleados")
		return []dto.EmployeeResponse{}
	}
	var list []dto.EmployeeResponse
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &list); err != nil {
			c.notify.Error("Respuesta inesperada del servidor")
			return []dto.EmployeeResponse{}
		}
	}
	return list
}

// Get obtiene el detalle de un empleado. Ante fallo devuelve nil.
func (c *Client) Get(id string) *dto.EmployeeResponse {
	dismiss := c.notify.Loading("Cargando detalle...")
	defer dismiss()

	env, err := c.do(http.MethodGet, pathEmployeeDetails+"/"+id, nil)
	if err != nil {
		c.notify.Error("No se pudo obtener el empleado")
		return nil
	}
	return decodeEmployee(env.Data)
}

// Create da de alta un empleado y devuelve el registro creado, o nil ante fallo.
func (c *Client) Create(in dto.CreateEmployeeRequest) *dto.EmployeeResponse {
	dismiss := c.notify.Loading("Creando empleado...")
	defer dismiss()

	env, err := c.do(http.MethodPost, pathCreateEmployee, in)
	if err != nil {
		c.notify.Error("No se pudo crear el empleado: " + messageOf(err))
		return nil
	}
	c.notify.Success("Empleado creado")
	return decodeEmployee(env.Data)
}

// Edit actualiza parcialmente un empleado y devuelve el registro actualizado, o nil ante fallo.
func (c *Client) Edit(id string, in dto.EditEmployeeRequest) *dto.EmployeeResponse {
	dismiss := c.notify.Loading("Actualizando empleado...")
	defer dismiss()

	env, err := c.do(http.MethodPut, pathEditEmployee+"/"+id, in)
	if err != nil {
		c.notify.Error("No se pudo actualizar el empleado: " + messageOf(err))
		return nil
	}
	c.notify.Success("Empleado actualizado")
	return decodeEmployee(env.Data)
}

// Delete elimina un empleado. Devuelve true solo si el servidor confirmó el borrado.
func (c *Client) Delete(id string) bool {
	dismiss := c.notify.Loading("Eliminando empleado...")
	defer dismiss()

	if _, err := c.do(http.MethodDelete, pathDeleteEmployee+"/"+id, nil); err != nil {
		c.notify.Error("No se pudo eliminar el empleado: " + messageOf(err))
		return false
	}
	c.notify.Success("Empleado eliminado")
	return true
}

// do ejecuta la petición y desempaqueta el envelope. success:false se trata
// como error con el message del servidor.
func (c *Client) do(method, path string, body any) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decodificar respuesta: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%s", env.Message)
	}
	return &env, nil
}

func decodeEmployee(raw json.RawMessage) *dto.EmployeeResponse {
	if len(raw) == 0 {
		return nil
	}
	var e dto.EmployeeResponse
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil
	}
	return &e
}

func messageOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
