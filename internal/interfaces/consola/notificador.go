// Package consola implementa el Notificador sobre la terminal: el equivalente
// de los diálogos de la interfaz original para el cliente de consola.
package consola

import (
	"fmt"
	"io"
)

// Notificador escribe notificaciones legibles en un Writer (normalmente stdout).
type Notificador struct {
	out io.Writer
}

// NewNotificador construye el notificador.
func NewNotificador(out io.Writer) *Notificador {
	return &Notificador{out: out}
}

// Exito muestra una notificación de éxito.
func (n *Notificador) Exito(titulo, mensaje string) {
	fmt.Fprintf(n.out, "✔ %s: %s\n", titulo, mensaje)
}

// Error muestra una notificación de error.
func (n *Notificador) Error(titulo, mensaje string) {
	fmt.Fprintf(n.out, "✘ %s: %s\n", titulo, mensaje)
}
