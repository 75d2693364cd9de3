package cli

import (
	"fmt"
	"os"

	"github.com/gookit/color"
)

// TerminalNotifier implementación de apiclient.Notifier sobre stderr: el
// equivalente de los toasts del frontend.
type TerminalNotifier struct{}

// Loading muestra el indicador "en vuelo" y devuelve su dismiss.
func (TerminalNotifier) Loading(msg string) (dismiss func()) {
	fmt.Fprintln(os.Stderr, color.Gray.Sprint("… "+msg))
	return func() {} // en terminal no hay nada que retirar; el contrato exige dismiss siempre
}

// Success notificación transitoria de éxito.
func (TerminalNotifier) Success(msg string) {
	fmt.Fprintln(os.Stderr, color.Green.Sprint("✔ "+msg))
}

// Error notificación transitoria de fallo.
func (TerminalNotifier) Error(msg string) {
	fmt.Fprintln(os.Stderr, color.Red.Sprint("✘ "+msg))
}
