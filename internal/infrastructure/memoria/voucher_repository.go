// Package memoria implementa el repositorio de vouchers en memoria para el
// servidor de referencia. Sin motor de persistencia: el contenido vive lo que
// vive el proceso.
package memoria

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carlosxd753/vouchers/internal/domain"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
	"github.com/carlosxd753/vouchers/internal/domain/repository"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ repository.VoucherRepository = (*VoucherRepository)(nil)

// VoucherRepository almacén en memoria indexado por la clave natural
// (numeroOperacion, entidad). Es la autoridad de unicidad de esa clave.
type VoucherRepository struct {
	mu    sync.RWMutex
	porID map[string]entity.Voucher
	clave map[string]string // clave natural -> id
}

// NewVoucherRepository construye el repositorio vacío.
func NewVoucherRepository() *VoucherRepository {
	return &VoucherRepository{
		porID: make(map[string]entity.Voucher),
		clave: make(map[string]string),
	}
}

func claveNatural(numeroOperacion string, entidad entity.Entidad) string {
	return numeroOperacion + "|" + string(entidad)
}

// Create registra el voucher asignándole ID y createdAt. Devuelve
// domain.ErrDuplicate si la clave natural ya existe.
func (r *VoucherRepository) Create(v *entity.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := claveNatural(v.NumeroOperacion, v.Entidad)
	if _, ok := r.clave[k]; ok {
		return domain.ErrDuplicate
	}
	v.ID = uuid.New().String()
	v.CreatedAt = time.Now()
	r.porID[v.ID] = *v
	r.clave[k] = v.ID
	return nil
}

// List devuelve todos los vouchers, sin orden garantizado (el cliente ordena).
func (r *VoucherRepository) List() ([]entity.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Voucher, 0, len(r.porID))
	for _, v := range r.porID {
		out = append(out, v)
	}
	return out, nil
}

// GetByClave busca por clave natural. Devuelve nil si no existe.
func (r *VoucherRepository) GetByClave(numeroOperacion string, entidad entity.Entidad) (*entity.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.clave[claveNatural(numeroOperacion, entidad)]
	if !ok {
		return nil, nil
	}
	v := r.porID[id]
	return &v, nil
}
