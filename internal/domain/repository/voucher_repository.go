package repository

import "github.com/carlosxd753/vouchers/internal/domain/entity"

// VoucherRepository define el puerto de persistencia del almacén de vouchers.
// El almacén es la única autoridad sobre la unicidad de la clave natural
// (numeroOperacion, entidad).
type VoucherRepository interface {
	// Create registra un voucher nuevo. Devuelve domain.ErrDuplicate si ya
	// existe uno con la misma clave natural.
	Create(v *entity.Voucher) error
	// List devuelve todos los vouchers registrados, sin orden garantizado.
	List() ([]entity.Voucher, error)
	// GetByClave busca por (numeroOperacion, entidad). Devuelve nil si no existe.
	GetByClave(numeroOperacion string, entidad entity.Entidad) (*entity.Voucher, error)
}
