package entity

import (
	"fmt"
	"time"
)

// Entidad es el canal de pago por el que se realizó la transacción.
// Conjunto cerrado: el parseo es la única vía de entrada, de modo que un
// valor fuera del catálogo no puede circular por el dominio.
type Entidad string

const (
	EntidadBCP         Entidad = "BCP"
	EntidadYape        Entidad = "Yape"
	EntidadBBVA        Entidad = "BBVA"
	EntidadPlin        Entidad = "Plin"
	EntidadScotiabank  Entidad = "Scotiabank"
	EntidadBancoNacion Entidad = "Banco de la nacion"
)

// Entidades devuelve el catálogo completo en el orden en que se ofrece al usuario.
func Entidades() []Entidad {
	return []Entidad{
		EntidadBCP,
		EntidadYape,
		EntidadBBVA,
		EntidadPlin,
		EntidadScotiabank,
		EntidadBancoNacion,
	}
}

// ParseEntidad valida que el valor pertenezca al catálogo.
func ParseEntidad(s string) (Entidad, error) {
	for _, e := range Entidades() {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("entidad desconocida: %q", s)
}

// EsValida indica si la entidad pertenece al catálogo.
func (e Entidad) EsValida() bool {
	_, err := ParseEntidad(string(e))
	return err == nil
}

// LayoutFechaHora es el formato de fechaHora en el contrato HTTP:
// yyyy-MM-ddTHH:mm:ss, sin zona horaria (el almacén es responsable de interpretarla).
const LayoutFechaHora = "2006-01-02T15:04:05"

// ParseFechaHora interpreta un timestamp del contrato. Acepta también RFC 3339
// como alternativa para createdAt, cuya forma exacta queda a criterio del almacén.
func ParseFechaHora(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(LayoutFechaHora, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fechaHora inválida %q: %w", s, err)
	}
	return t, nil
}

// FormatFechaHora serializa un timestamp en la forma del contrato.
func FormatFechaHora(t time.Time) string {
	return t.Format(LayoutFechaHora)
}

// Voucher representa el comprobante de un pago ya realizado, registrado para
// su posterior consulta. Es inmutable desde el punto de vista del cliente:
// una vez creado solo se lee, vía listado o búsqueda por clave natural.
type Voucher struct {
	ID              string    // asignado por el almacén
	NumeroOperacion string    // solo dígitos; junto con Entidad forma la clave natural
	Entidad         Entidad
	ClienteDniRuc   string    // solo dígitos (DNI o RUC del cliente)
	FechaHora       time.Time // momento en que ocurrió el pago (lo aporta el cliente)
	CreatedAt       time.Time // momento de registro; puede ser posterior o anterior a FechaHora
}
