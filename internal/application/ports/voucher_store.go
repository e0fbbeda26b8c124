package ports

import (
	"context"

	"github.com/carlosxd753/vouchers/internal/application/dto"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
)

// VoucherStore define el puerto de salida hacia el almacén remoto de
// vouchers (servicio REST externo). La implementación concreta usa HTTP+JSON;
// para tests se inyecta un doble.
type VoucherStore interface {
	// Listar trae la colección completa de vouchers.
	Listar(ctx context.Context) ([]entity.Voucher, error)
	// Registrar crea un voucher. Devuelve el mensaje del almacén si lo hay.
	// Un rechazo de negocio (no-2xx con cuerpo JSON) llega como
	// *domain.ErrorNegocio; un fallo de red o de parseo, como otro error.
	Registrar(ctx context.Context, in dto.RegistrarVoucherRequest) (mensaje string, err error)
	// Buscar busca por clave natural. Devuelve domain.ErrNotFound si el
	// almacén responde no-2xx (el cuerpo se ignora en ese caso).
	Buscar(ctx context.Context, numeroOperacion string, entidad entity.Entidad) (*entity.Voucher, error)
}

// Notificador define el puerto de notificaciones al usuario (el equivalente
// de los diálogos de la interfaz original).
type Notificador interface {
	Exito(titulo, mensaje string)
	Error(titulo, mensaje string)
}
