// Package listado implementa el lado de lectura del ciclo de vida: una carga
// inicial de la colección, orden descendente por fechaHora y agrupación por
// día calendario.
package listado

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/carlosxd753/vouchers/internal/application/ports"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
	"github.com/carlosxd753/vouchers/internal/domain/voucher"
)

// ListarVouchersUseCase caso de uso del listado (VoucherListModel).
// La colección se obtiene una vez al inicio; no hay sondeo ni canal de
// actualización en vivo. El refresco ocurre solo vía Refrescar, que el flujo
// de registro dispara tras cada escritura exitosa.
type ListarVouchersUseCase struct {
	store ports.VoucherStore
	log   zerolog.Logger

	mu       sync.Mutex
	vouchers []entity.Voucher
	grupos   []voucher.GrupoDia
}

// NewListarVouchersUseCase construye el caso de uso con el listado vacío.
func NewListarVouchersUseCase(store ports.VoucherStore, log zerolog.Logger) *ListarVouchersUseCase {
	return &ListarVouchersUseCase{store: store, log: log}
}

// Cargar trae la colección completa, la ordena descendente y la agrupa por
// día. Sin reintentos: un fallo deja el estado anterior intacto.
func (uc *ListarVouchersUseCase) Cargar(ctx context.Context) error {
	list, err := uc.store.Listar(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar vouchers")
		return err
	}
	voucher.OrdenarDescendente(list)
	grupos := voucher.AgruparPorDia(list)

	uc.mu.Lock()
	uc.vouchers = list
	uc.grupos = grupos
	uc.mu.Unlock()
	return nil
}

// Refrescar vuelve a consultar el almacén. Es el destino de la señal de
// refresco del flujo de registro.
func (uc *ListarVouchersUseCase) Refrescar(ctx context.Context) error {
	return uc.Cargar(ctx)
}

// Vouchers devuelve el listado ordenado (copia).
func (uc *ListarVouchersUseCase) Vouchers() []entity.Voucher {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Voucher, len(uc.vouchers))
	copy(out, uc.vouchers)
	return out
}

// Grupos devuelve la agrupación por día, en el mismo orden descendente del
// listado.
func (uc *ListarVouchersUseCase) Grupos() []voucher.GrupoDia {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]voucher.GrupoDia, len(uc.grupos))
	copy(out, uc.grupos)
	return out
}
