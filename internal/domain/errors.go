package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("voucher no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("ya existe un voucher con ese número de operación y entidad")
)

// ErrorNegocio es un rechazo del almacén de vouchers con mensaje propio
// (respuesta no-2xx con cuerpo JSON {message}). El flujo de registro muestra
// ese mensaje al usuario tal cual.
type ErrorNegocio struct {
	Mensaje string
}

func (e *ErrorNegocio) Error() string {
	if e.Mensaje == "" {
		return "el almacén de vouchers rechazó la operación"
	}
	return e.Mensaje
}
