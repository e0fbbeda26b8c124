// Package consulta implementa la búsqueda de un voucher por su clave natural
// (número de operación, entidad).
package consulta

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/carlosxd753/vouchers/internal/application/ports"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
	"github.com/carlosxd753/vouchers/internal/domain/voucher"
	"github.com/carlosxd753/vouchers/pkg/fechas"
)

// MensajeNoEncontrado es el texto fijo que ve el usuario cuando la búsqueda
// no produce resultado. El cuerpo de error del almacén no se muestra aquí.
const MensajeNoEncontrado = "No se encontró el voucher con el numero de operación y entidad proporcionados"

// Criterio es el estado del formulario de búsqueda.
type Criterio struct {
	NumeroOperacion string
	Entidad         entity.Entidad
}

// VistaVoucher es el voucher encontrado con sus timestamps formateados para
// presentación (locale es-PE). Los valores de máquina siguen en el entity.
type VistaVoucher struct {
	NumeroOperacion string
	Entidad         string
	ClienteDniRuc   string
	FechaHora       string // ej. "1/6/2024, 09:15:00"
	RegistradoEl    string
}

// ConsultarVoucherUseCase caso de uso de búsqueda (VoucherSearch).
// Cada búsqueda lleva un número de secuencia creciente; una respuesta solo se
// aplica si su secuencia es la última emitida, de modo que una respuesta
// rezagada nunca pisa una más fresca.
type ConsultarVoucherUseCase struct {
	store ports.VoucherStore
	log   zerolog.Logger

	emitidas atomic.Uint64 // secuencia de la última búsqueda emitida

	mu       sync.Mutex
	criterio Criterio
	voucher  *entity.Voucher
	mensaje  string // mensaje de error visible; vacío si no hay
	buscando bool
}

// NewConsultarVoucherUseCase construye el caso de uso con entidad BCP por defecto.
func NewConsultarVoucherUseCase(store ports.VoucherStore, log zerolog.Logger) *ConsultarVoucherUseCase {
	return &ConsultarVoucherUseCase{
		store:    store,
		log:      log,
		criterio: Criterio{Entidad: entity.EntidadBCP},
	}
}

// SetNumeroOperacion almacena el número de operación descartando todo
// carácter no numérico.
func (uc *ConsultarVoucherUseCase) SetNumeroOperacion(raw string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.criterio.NumeroOperacion = voucher.SoloDigitos(raw)
}

// SetEntidad almacena la entidad de búsqueda.
func (uc *ConsultarVoucherUseCase) SetEntidad(e entity.Entidad) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.criterio.Entidad = e
}

// Criterio devuelve una copia del criterio actual.
func (uc *ConsultarVoucherUseCase) Criterio() Criterio {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.criterio
}

// Buscando indica si hay una búsqueda en vuelo (estado ocupado del control).
func (uc *ConsultarVoucherUseCase) Buscando() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.buscando
}

// Buscar consulta el almacén por la clave natural actual.
//   - éxito: el resultado reemplaza al anterior y se limpia cualquier error;
//   - no encontrado o rechazo: se limpia el resultado y queda el mensaje fijo.
//
// No hay candado de reentrada: búsquedas rápidas consecutivas son válidas y
// la secuencia garantiza que solo la última completación se aplica.
func (uc *ConsultarVoucherUseCase) Buscar(ctx context.Context) {
	seq := uc.emitidas.Add(1)

	uc.mu.Lock()
	criterio := uc.criterio
	uc.buscando = true
	uc.mu.Unlock()

	encontrado, err := uc.store.Buscar(ctx, criterio.NumeroOperacion, criterio.Entidad)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if seq != uc.emitidas.Load() {
		// Completación rezagada: ya se emitió una búsqueda más nueva.
		uc.log.Debug().Uint64("seq", seq).Msg("buscar voucher: respuesta rezagada descartada")
		return
	}
	uc.buscando = false
	if err != nil {
		uc.log.Debug().Err(err).Str("numeroOperacion", criterio.NumeroOperacion).Msg("buscar voucher sin resultado")
		uc.voucher = nil
		uc.mensaje = MensajeNoEncontrado
		return
	}
	uc.voucher = encontrado
	uc.mensaje = ""
}

// Resultado devuelve el voucher encontrado, o nil si no hay.
func (uc *ConsultarVoucherUseCase) Resultado() *entity.Voucher {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.voucher
}

// MensajeError devuelve el mensaje de error visible, o vacío si no hay.
func (uc *ConsultarVoucherUseCase) MensajeError() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.mensaje
}

// Vista devuelve el resultado formateado para presentación, o nil si no hay.
func (uc *ConsultarVoucherUseCase) Vista() *VistaVoucher {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.voucher == nil {
		return nil
	}
	return &VistaVoucher{
		NumeroOperacion: uc.voucher.NumeroOperacion,
		Entidad:         string(uc.voucher.Entidad),
		ClienteDniRuc:   uc.voucher.ClienteDniRuc,
		FechaHora:       fechas.FechaHoraCorta(uc.voucher.FechaHora),
		RegistradoEl:    fechas.FechaHoraCorta(uc.voucher.CreatedAt),
	}
}
