package registro_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosxd753/vouchers/internal/application/dto"
	"github.com/carlosxd753/vouchers/internal/application/registro"
	"github.com/carlosxd753/vouchers/internal/domain"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// storeFalso implementa ports.VoucherStore registrando las llamadas.
// Si bloqueo no es nil, Registrar se queda esperando hasta que lo cierren.
type storeFalso struct {
	mu        sync.Mutex
	registros []dto.RegistrarVoucherRequest
	mensaje   string
	err       error
	bloqueo   chan struct{}
}

func (s *storeFalso) Listar(ctx context.Context) ([]entity.Voucher, error) { return nil, nil }

func (s *storeFalso) Registrar(ctx context.Context, in dto.RegistrarVoucherRequest) (string, error) {
	s.mu.Lock()
	s.registros = append(s.registros, in)
	bloqueo := s.bloqueo
	s.mu.Unlock()
	if bloqueo != nil {
		<-bloqueo
	}
	return s.mensaje, s.err
}

func (s *storeFalso) Buscar(ctx context.Context, numeroOperacion string, entidad entity.Entidad) (*entity.Voucher, error) {
	return nil, domain.ErrNotFound
}

func (s *storeFalso) llamadas() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.registros)
}

func (s *storeFalso) ultima() dto.RegistrarVoucherRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registros[len(s.registros)-1]
}

// notificadorFalso acumula las notificaciones emitidas.
type notificadorFalso struct {
	mu      sync.Mutex
	exitos  []string // mensajes de éxito
	errores []string // mensajes de error
}

func (n *notificadorFalso) Exito(titulo, mensaje string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.exitos = append(n.exitos, mensaje)
}

func (n *notificadorFalso) Error(titulo, mensaje string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errores = append(n.errores, mensaje)
}

// usarFormulario llena el formulario con los datos del escenario de prueba.
func usarFormulario(uc *registro.RegistrarVoucherUseCase) {
	uc.SetNumeroOperacion("12345")
	uc.SetEntidad(entity.EntidadYape)
	uc.SetClienteDniRuc("70001122")
	uc.SetFecha("2024-06-01")
	uc.SetHora("09:15")
}

// ──────────────────────────────────────────────────────────────────────────────
// Saneamiento y valores por defecto
// ──────────────────────────────────────────────────────────────────────────────

func TestFormularioInicial_Defaults(t *testing.T) {
	ahora := time.Date(2024, 6, 1, 9, 15, 0, 0, time.Local)
	uc := registro.NewRegistrarVoucherUseCase(&storeFalso{}, &notificadorFalso{}, zerolog.Nop(),
		registro.ConReloj(func() time.Time { return ahora }))

	form := uc.Formulario()
	assert.Equal(t, entity.EntidadBCP, form.Entidad, "la entidad por defecto es BCP")
	assert.Equal(t, "2024-06-01", form.Fecha, "la fecha por defecto es hoy")
	assert.Equal(t, "09:15", form.Hora, "la hora por defecto es ahora")
	assert.Empty(t, form.NumeroOperacion)
	assert.Empty(t, form.ClienteDniRuc)
}

func TestSetCamposNumericos_DescartaNoDigitos(t *testing.T) {
	uc := registro.NewRegistrarVoucherUseCase(&storeFalso{}, &notificadorFalso{}, zerolog.Nop())

	uc.SetNumeroOperacion("op-12 345x")
	uc.SetClienteDniRuc("DNI: 70.001.122")

	form := uc.Formulario()
	assert.Equal(t, "12345", form.NumeroOperacion)
	assert.Equal(t, "70001122", form.ClienteDniRuc)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario A: registro exitoso
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviar_ExitoNotificaYReseteaConFechaDelMomento(t *testing.T) {
	store := &storeFalso{mensaje: "ok"}
	notif := &notificadorFalso{}
	momento := time.Date(2024, 6, 1, 9, 15, 0, 0, time.Local)
	uc := registro.NewRegistrarVoucherUseCase(store, notif, zerolog.Nop(),
		registro.ConReloj(func() time.Time { return momento }))
	usarFormulario(uc)

	// El reset debe tomar fecha/hora del momento del reset, no del montaje.
	momento = time.Date(2024, 6, 2, 18, 45, 0, 0, time.Local)
	uc.Enviar(context.Background())

	require.Equal(t, 1, store.llamadas())
	enviado := store.ultima()
	assert.Equal(t, "12345", enviado.NumeroOperacion)
	assert.Equal(t, "Yape", enviado.Entidad)
	assert.Equal(t, "70001122", enviado.ClienteDniRuc)
	assert.Equal(t, "2024-06-01T09:15:00", enviado.FechaHora,
		"fechaHora se compone como fecha + T + hora + :00")

	require.Len(t, notif.exitos, 1)
	assert.Equal(t, "ok", notif.exitos[0], "se muestra el mensaje del almacén")
	assert.Empty(t, notif.errores)

	form := uc.Formulario()
	assert.Empty(t, form.NumeroOperacion, "el formulario vuelve a sus valores por defecto")
	assert.Equal(t, entity.EntidadBCP, form.Entidad)
	assert.Equal(t, "2024-06-02", form.Fecha, "la fecha del reset es la del momento del reset")
	assert.Equal(t, "18:45", form.Hora)
	assert.False(t, uc.Enviando(), "el candado queda liberado")
}

func TestEnviar_ExitoSinMensajeUsaTextoGenerico(t *testing.T) {
	store := &storeFalso{}
	notif := &notificadorFalso{}
	uc := registro.NewRegistrarVoucherUseCase(store, notif, zerolog.Nop())
	usarFormulario(uc)

	uc.Enviar(context.Background())

	require.Len(t, notif.exitos, 1)
	assert.Equal(t, "Se guardó correctamente", notif.exitos[0])
}

func TestEnviar_ExitoDisparaSenalDeRefresco(t *testing.T) {
	store := &storeFalso{}
	refrescos := 0
	uc := registro.NewRegistrarVoucherUseCase(store, &notificadorFalso{}, zerolog.Nop(),
		registro.ConSenalRefresco(func() { refrescos++ }))
	usarFormulario(uc)

	uc.Enviar(context.Background())

	assert.Equal(t, 1, refrescos, "un registro exitoso debe refrescar el listado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario B: rechazo de negocio
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviar_RechazoDeNegocioConservaFormulario(t *testing.T) {
	store := &storeFalso{err: &domain.ErrorNegocio{Mensaje: "duplicate"}}
	notif := &notificadorFalso{}
	refrescos := 0
	uc := registro.NewRegistrarVoucherUseCase(store, notif, zerolog.Nop(),
		registro.ConSenalRefresco(func() { refrescos++ }))
	usarFormulario(uc)

	uc.Enviar(context.Background())

	require.Len(t, notif.errores, 1)
	assert.Equal(t, "duplicate", notif.errores[0], "se muestra el mensaje del almacén tal cual")
	assert.Empty(t, notif.exitos)
	assert.Zero(t, refrescos, "un rechazo no refresca el listado")

	form := uc.Formulario()
	assert.Equal(t, "12345", form.NumeroOperacion, "el formulario se conserva para reintentar")
	assert.Equal(t, entity.EntidadYape, form.Entidad)
	assert.False(t, uc.Enviando(), "el candado se libera también en el rechazo")
}

func TestEnviar_RechazoSinMensajeUsaTextoGenerico(t *testing.T) {
	store := &storeFalso{err: &domain.ErrorNegocio{}}
	notif := &notificadorFalso{}
	uc := registro.NewRegistrarVoucherUseCase(store, notif, zerolog.Nop())
	usarFormulario(uc)

	uc.Enviar(context.Background())

	require.Len(t, notif.errores, 1)
	assert.Equal(t, "Ocurrió un error al guardar el voucher", notif.errores[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo de transporte
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviar_FalloDeTransporteNotificaConectividad(t *testing.T) {
	store := &storeFalso{err: context.DeadlineExceeded}
	notif := &notificadorFalso{}
	uc := registro.NewRegistrarVoucherUseCase(store, notif, zerolog.Nop())
	usarFormulario(uc)

	uc.Enviar(context.Background())

	require.Len(t, notif.errores, 1)
	assert.Equal(t, "No se pudo conectar con el servidor", notif.errores[0])
	assert.Equal(t, "12345", uc.Formulario().NumeroOperacion, "el formulario se conserva")
	assert.False(t, uc.Enviando())
}

// ──────────────────────────────────────────────────────────────────────────────
// Candado de envío
// ──────────────────────────────────────────────────────────────────────────────

// Reinvocar Enviar con un envío en vuelo no produce ninguna llamada adicional.
func TestEnviar_ReentradaEsNoOp(t *testing.T) {
	bloqueo := make(chan struct{})
	store := &storeFalso{bloqueo: bloqueo}
	notif := &notificadorFalso{}
	uc := registro.NewRegistrarVoucherUseCase(store, notif, zerolog.Nop())
	usarFormulario(uc)

	terminado := make(chan struct{})
	go func() {
		defer close(terminado)
		uc.Enviar(context.Background())
	}()

	require.Eventually(t, func() bool { return store.llamadas() == 1 },
		time.Second, time.Millisecond, "el primer envío debe llegar al almacén")
	assert.True(t, uc.Enviando())

	// Reentradas mientras el primero sigue en vuelo: cero llamadas nuevas.
	uc.Enviar(context.Background())
	uc.Enviar(context.Background())
	assert.Equal(t, 1, store.llamadas(), "la reentrada debe ser un no-op")

	close(bloqueo)
	<-terminado

	assert.Equal(t, 1, store.llamadas())
	assert.False(t, uc.Enviando(), "el candado queda liberado al terminar")

	// Con el candado liberado, un nuevo envío sí procede.
	usarFormulario(uc)
	uc.Enviar(context.Background())
	assert.Equal(t, 2, store.llamadas())
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos requeridos
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviar_CamposRequeridosVaciosNoLlamaAlAlmacen(t *testing.T) {
	store := &storeFalso{}
	notif := &notificadorFalso{}
	uc := registro.NewRegistrarVoucherUseCase(store, notif, zerolog.Nop())
	// numeroOperacion y clienteDniRuc quedan vacíos

	uc.Enviar(context.Background())

	assert.Zero(t, store.llamadas(), "sin campos requeridos no debe haber llamada de red")
	require.Len(t, notif.errores, 1)
	assert.False(t, uc.Enviando())
}
