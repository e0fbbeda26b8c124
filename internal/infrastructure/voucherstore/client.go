// Package voucherstore implementa el puerto VoucherStore contra el servicio
// REST remoto (HTTP+JSON).
package voucherstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carlosxd753/vouchers/internal/application/dto"
	"github.com/carlosxd753/vouchers/internal/application/ports"
	"github.com/carlosxd753/vouchers/internal/domain"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
)

// Verificar en tiempo de compilación que ClienteHTTP implementa VoucherStore.
var _ ports.VoucherStore = (*ClienteHTTP)(nil)

// ClienteHTTP adaptador HTTP+JSON del almacén de vouchers.
// Usa net/http de la librería estándar; no requiere librerías de terceros.
type ClienteHTTP struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClienteHTTP construye el cliente. baseURL es la dirección del almacén
// (ej. http://localhost:8080). Timeout de red de 10 s; no hay reintentos.
func NewClienteHTTP(baseURL string, log zerolog.Logger) *ClienteHTTP {
	return &ClienteHTTP{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Listar trae la colección completa: GET /api/vouchers.
func (c *ClienteHTTP) Listar(ctx context.Context) ([]entity.Voucher, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/vouchers", nil)
	if err != nil {
		return nil, fmt.Errorf("construir request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listar vouchers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("listar vouchers: status %d", resp.StatusCode)
	}
	var items []dto.VoucherResponse
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decodificar listado: %w", err)
	}
	list := make([]entity.Voucher, 0, len(items))
	for _, it := range items {
		v, err := aEntidad(it)
		if err != nil {
			// Un registro malformado no invalida el listado completo.
			c.log.Warn().Err(err).Str("id", it.ID).Msg("voucher descartado del listado")
			continue
		}
		list = append(list, v)
	}
	return list, nil
}

// Registrar crea un voucher: POST /api/vouchers.
// Un no-2xx con cuerpo JSON {message} se devuelve como *domain.ErrorNegocio.
func (c *ClienteHTTP) Registrar(ctx context.Context, in dto.RegistrarVoucherRequest) (string, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("serializar voucher: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/vouchers", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("construir request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("registrar voucher: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("leer respuesta: %w", err)
	}
	var out dto.MensajeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decodificar respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.ErrorNegocio{Mensaje: out.Message}
	}
	return out.Message, nil
}

// Buscar busca por clave natural: POST /api/vouchers/buscar.
// Cualquier no-2xx se devuelve como domain.ErrNotFound; su cuerpo se ignora.
func (c *ClienteHTTP) Buscar(ctx context.Context, numeroOperacion string, entidad entity.Entidad) (*entity.Voucher, error) {
	body, err := json.Marshal(dto.BuscarVoucherRequest{
		NumeroOperacion: numeroOperacion,
		Entidad:         string(entidad),
	})
	if err != nil {
		return nil, fmt.Errorf("serializar búsqueda: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/vouchers/buscar", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("construir request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("buscar voucher: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.ErrNotFound
	}
	var item dto.VoucherResponse
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("decodificar voucher: %w", err)
	}
	v, err := aEntidad(item)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// aEntidad convierte la representación del contrato a la entidad de dominio.
func aEntidad(in dto.VoucherResponse) (entity.Voucher, error) {
	ent, err := entity.ParseEntidad(in.Entidad)
	if err != nil {
		return entity.Voucher{}, err
	}
	fechaHora, err := entity.ParseFechaHora(in.FechaHora)
	if err != nil {
		return entity.Voucher{}, err
	}
	v := entity.Voucher{
		ID:              in.ID,
		NumeroOperacion: in.NumeroOperacion,
		Entidad:         ent,
		ClienteDniRuc:   in.ClienteDniRuc,
		FechaHora:       fechaHora,
	}
	if in.CreatedAt != "" {
		createdAt, err := entity.ParseFechaHora(in.CreatedAt)
		if err != nil {
			return entity.Voucher{}, err
		}
		v.CreatedAt = createdAt
	}
	return v, nil
}
