// hrctl: cliente de terminal del directorio de empleados. Tabla paginada con
// búsqueda por nombre, vista de detalle y formularios de alta/edición/borrado
// contra la API REST.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/cli"
	"github.com/jhoicas/Empleados-api/pkg/apiclient"
	"github.com/jhoicas/Empleados-api/pkg/config"
)

type ui struct {
	client *apiclient.Client
	in     *bufio.Scanner

	all    []dto.EmployeeResponse
	search string
	page   int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	u := &ui{
		client: apiclient.New(cfg.Client.BaseURL, cli.TerminalNotifier{}),
		in:     bufio.NewScanner(os.Stdin),
		page:   1,
	}

	color.Bold.Println("Directorio de empleados — comandos: list, search <q>, next, prev, view <n>, add, edit <n>, delete <n>, quit")
	u.refresh()
	u.render()

	for {
		fmt.Print("> ")
		if !u.in.Scan() {
			return
		}
		line := strings.TrimSpace(u.in.Text())
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "", "list", "r":
			u.refresh()
			u.render()
		case "search":
			u.search = arg
			u.page = 1 // nueva búsqueda vuelve a la primera página
			u.render()
		case "next":
			u.page++
			u.render()
		case "prev":
			u.page--
			u.render()
		case "view":
			u.view(arg)
		case "add":
			u.add()
		case "edit":
			u.edit(arg)
		case "delete":
			u.delete(arg)
		case "quit", "q", "exit":
			return
		default:
			fmt.Println("comando desconocido:", cmd)
		}
	}
}

func (u *ui) refresh() {
	u.all = u.client.List()
}

func (u *ui) render() {
	filtered := cli.FilterByName(u.all, u.search)
	total := cli.TotalPages(len(filtered))
	if u.page < 1 || u.page > total {
		u.page = 1
	}
	fmt.Print(cli.RenderTable(cli.Page(filtered, u.page), u.page, total))
}

// rowID traduce el número de fila de la página visible al id del empleado.
func (u *ui) rowID(arg string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		fmt.Println("indica el número de fila, ej: view 2")
		return "", false
	}
	page := cli.Page(cli.FilterByName(u.all, u.search), u.page)
	if n < 1 || n > len(page) {
		fmt.Println("fila fuera de rango")
		return "", false
	}
	return page[n-1].ID, true
}

func (u *ui) view(arg string) {
	id, ok := u.rowID(arg)
	if !ok {
		return
	}
	if e := u.client.Get(id); e != nil {
		fmt.Print(cli.RenderDetail(e))
	}
}

func (u *ui) add() {
	name := u.prompt("Nombre: ")
	email := u.prompt("Email: ")
	position := u.prompt("Cargo: ")
	date := u.prompt("Fecha de ingreso (YYYY-MM-DD): ")

	if errs := cli.ValidateForm(name, email, position, date); len(errs) > 0 {
		printFormErrors(errs)
		return
	}
	if date == "" {
		fmt.Println("la fecha de ingreso es obligatoria al crear")
		return
	}
	if u.client.Create(dto.CreateEmployeeRequest{
		Name: name, Email: email, Position: position, DateOfJoining: date,
	}) != nil {
		u.refresh()
		u.render()
	}
}

func (u *ui) edit(arg string) {
	id, ok := u.rowID(arg)
	if !ok {
		return
	}
	fmt.Println("deja un campo vacío para no modificarlo")
	var in dto.EditEmployeeRequest
	if s := u.prompt("Nombre: "); s != "" {
		in.Name = &s
	}
	if s := u.prompt("Email: "); s != "" {
		in.Email = &s
	}
	if s := u.prompt("Cargo: "); s != "" {
		in.Position = &s
	}
	if s := u.prompt("Fecha de ingreso (YYYY-MM-DD): "); s != "" {
		in.DateOfJoining = &s
	}

	if errs := validatePartial(in); len(errs) > 0 {
		printFormErrors(errs)
		return
	}
	if u.client.Edit(id, in) != nil {
		u.refresh()
		u.render()
	}
}

func (u *ui) delete(arg string) {
	id, ok := u.rowID(arg)
	if !ok {
		return
	}
	if strings.ToLower(u.prompt("¿Eliminar empleado? (s/N): ")) != "s" {
		return
	}
	if u.client.Delete(id) {
		u.refresh()
		u.render()
	}
}

func (u *ui) prompt(label string) string {
	fmt.Print(label)
	if !u.in.Scan() {
		return ""
	}
	return strings.TrimSpace(u.in.Text())
}

// validatePartial valida solo los campos presentes del formulario de edición.
func validatePartial(in dto.EditEmployeeRequest) cli.FormErrors {
	full := cli.ValidateForm(
		orDefault(in.Name, "xx"),
		orDefault(in.Email, "x@x.xx"),
		orDefault(in.Position, "xx"),
		orDefault(in.DateOfJoining, ""),
	)
	return full
}

func orDefault(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func printFormErrors(errs cli.FormErrors) {
	for field, msg := range errs {
		color.Red.Printf("  %s: %s\n", field, msg)
	}
}
