// Package registro implementa el flujo de registro de vouchers: estado del
// formulario, saneamiento numérico, composición de fechaHora, candado de
// envío y manejo del resultado.
package registro

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/carlosxd753/vouchers/internal/application/dto"
	"github.com/carlosxd753/vouchers/internal/application/ports"
	"github.com/carlosxd753/vouchers/internal/domain"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
	"github.com/carlosxd753/vouchers/internal/domain/voucher"
)

// Formulario es el estado del flujo de registro. Fecha va en yyyy-MM-dd y
// Hora en HH:mm, tal como los produce la interfaz.
type Formulario struct {
	NumeroOperacion string
	Entidad         entity.Entidad
	ClienteDniRuc   string
	Fecha           string
	Hora            string
}

// RegistrarVoucherUseCase caso de uso de registro (VoucherComposer).
// El estado es propio del flujo; ningún otro flujo lo comparte.
type RegistrarVoucherUseCase struct {
	store       ports.VoucherStore
	notificador ports.Notificador
	log         zerolog.Logger
	ahora       func() time.Time
	alRegistrar func() // señal de refresco tras un registro exitoso

	enviando atomic.Bool // candado de envío: un submit en vuelo rechaza reentradas

	mu   sync.Mutex
	form Formulario
}

// Option configura el caso de uso.
type Option func(*RegistrarVoucherUseCase)

// ConReloj reemplaza la fuente de "ahora" (para tests).
func ConReloj(ahora func() time.Time) Option {
	return func(uc *RegistrarVoucherUseCase) { uc.ahora = ahora }
}

// ConSenalRefresco registra el callback que se dispara tras cada registro
// exitoso, para que el listado pueda re-consultar el almacén.
func ConSenalRefresco(fn func()) Option {
	return func(uc *RegistrarVoucherUseCase) { uc.alRegistrar = fn }
}

// NewRegistrarVoucherUseCase construye el caso de uso con el formulario en
// sus valores por defecto: entidad BCP y fecha/hora actuales.
func NewRegistrarVoucherUseCase(store ports.VoucherStore, notificador ports.Notificador, log zerolog.Logger, opts ...Option) *RegistrarVoucherUseCase {
	uc := &RegistrarVoucherUseCase{
		store:       store,
		notificador: notificador,
		log:         log,
		ahora:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.form = uc.formularioInicial()
	return uc
}

func (uc *RegistrarVoucherUseCase) formularioInicial() Formulario {
	hoy := uc.ahora()
	return Formulario{
		Entidad: entity.EntidadBCP,
		Fecha:   hoy.Format("2006-01-02"),
		Hora:    hoy.Format("15:04"),
	}
}

// SetNumeroOperacion almacena el número de operación descartando todo
// carácter no numérico. Nunca falla.
func (uc *RegistrarVoucherUseCase) SetNumeroOperacion(raw string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.form.NumeroOperacion = voucher.SoloDigitos(raw)
}

// SetClienteDniRuc almacena el DNI/RUC descartando todo carácter no numérico.
func (uc *RegistrarVoucherUseCase) SetClienteDniRuc(raw string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.form.ClienteDniRuc = voucher.SoloDigitos(raw)
}

// SetEntidad almacena la entidad tal cual. Quien llama debe acotarla al
// catálogo (la capa de presentación solo ofrece las seis opciones).
func (uc *RegistrarVoucherUseCase) SetEntidad(e entity.Entidad) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.form.Entidad = e
}

// SetFecha almacena la fecha (yyyy-MM-dd) sin normalizar.
func (uc *RegistrarVoucherUseCase) SetFecha(fecha string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.form.Fecha = fecha
}

// SetHora almacena la hora (HH:mm) sin normalizar.
func (uc *RegistrarVoucherUseCase) SetHora(hora string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.form.Hora = hora
}

// Formulario devuelve una copia del estado actual del formulario.
func (uc *RegistrarVoucherUseCase) Formulario() Formulario {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.form
}

// Enviando indica si hay un envío en vuelo.
func (uc *RegistrarVoucherUseCase) Enviando() bool {
	return uc.enviando.Load()
}

// Enviar compone fechaHora y registra el voucher en el almacén. Si ya hay un
// envío en vuelo la llamada no hace nada (reentrada idempotente). Todo
// desenlace se convierte en una notificación; nada se propaga hacia arriba:
//   - éxito: notifica con el mensaje del almacén (o uno genérico), resetea el
//     formulario a sus valores por defecto (fecha/hora del momento del reset)
//     y dispara la señal de refresco;
//   - rechazo de negocio: notifica el mensaje del almacén y conserva el
//     formulario para corregir y reintentar;
//   - fallo de transporte: notifica un mensaje genérico de conectividad.
//
// El candado se libera siempre, sea cual sea el desenlace.
func (uc *RegistrarVoucherUseCase) Enviar(ctx context.Context) {
	if !uc.enviando.CompareAndSwap(false, true) {
		return
	}
	defer uc.enviando.Store(false)

	form := uc.Formulario()
	if form.NumeroOperacion == "" || form.ClienteDniRuc == "" || form.Fecha == "" || form.Hora == "" {
		uc.notificador.Error("Error", "Complete número de operación, DNI/RUC, fecha y hora")
		return
	}

	req := dto.RegistrarVoucherRequest{
		NumeroOperacion: form.NumeroOperacion,
		Entidad:         string(form.Entidad),
		ClienteDniRuc:   form.ClienteDniRuc,
		FechaHora:       voucher.ComponerFechaHora(form.Fecha, form.Hora),
	}

	mensaje, err := uc.store.Registrar(ctx, req)
	if err != nil {
		var negocio *domain.ErrorNegocio
		if errors.As(err, &negocio) {
			texto := negocio.Mensaje
			if texto == "" {
				texto = "Ocurrió un error al guardar el voucher"
			}
			uc.notificador.Error("Error", texto)
			return
		}
		uc.log.Error().Err(err).Msg("registrar voucher: fallo de transporte")
		uc.notificador.Error("Error", "No se pudo conectar con el servidor")
		return
	}

	if mensaje == "" {
		mensaje = "Se guardó correctamente"
	}
	uc.notificador.Exito("Voucher guardado", mensaje)

	uc.mu.Lock()
	uc.form = uc.formularioInicial()
	uc.mu.Unlock()

	if uc.alRegistrar != nil {
		uc.alRegistrar()
	}
}
