// Package fechas formatea timestamps para presentación en locale es-PE.
// Los valores almacenados y transmitidos siguen siendo timestamps de máquina;
// estos formatos son solo de visualización.
package fechas

import (
	"fmt"
	"time"
)

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FechaLarga devuelve el día calendario en forma larga es-PE:
// "1 de mayo de 2024". Es la clave de agrupación del listado.
func FechaLarga(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}

// FechaHoraCorta devuelve fecha y hora en forma corta es-PE:
// "1/5/2024, 14:30:00".
func FechaHoraCorta(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d, %02d:%02d:%02d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}
