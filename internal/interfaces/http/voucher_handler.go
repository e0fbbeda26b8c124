package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/carlosxd753/vouchers/internal/application/dto"
	"github.com/carlosxd753/vouchers/internal/domain"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
	"github.com/carlosxd753/vouchers/internal/domain/repository"
)

// VoucherHandler maneja las peticiones HTTP del almacén de vouchers de
// referencia. Implementa exactamente el contrato que consume el cliente.
type VoucherHandler struct {
	repo repository.VoucherRepository
}

// NewVoucherHandler construye el handler.
func NewVoucherHandler(repo repository.VoucherRepository) *VoucherHandler {
	return &VoucherHandler{repo: repo}
}

// Listar godoc
// @Summary      Listar vouchers
// @Tags         vouchers
// @Produce      json
// @Success      200  {array}  dto.VoucherResponse
// @Router       /api/vouchers [get]
func (h *VoucherHandler) Listar(c *fiber.Ctx) error {
	list, err := h.repo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MensajeResponse{Message: err.Error()})
	}
	out := make([]dto.VoucherResponse, 0, len(list))
	for _, v := range list {
		out = append(out, aResponse(v))
	}
	return c.JSON(out)
}

// Registrar godoc
// @Summary      Registrar voucher
// @Tags         vouchers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVoucherRequest  true  "Datos del voucher"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.MensajeResponse
// @Failure      409   {object}  dto.MensajeResponse
// @Router       /api/vouchers [post]
func (h *VoucherHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MensajeResponse{Message: "cuerpo inválido"})
	}
	if in.NumeroOperacion == "" || in.ClienteDniRuc == "" || in.FechaHora == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MensajeResponse{Message: "numeroOperacion, clienteDniRuc y fechaHora son requeridos"})
	}
	if !soloDigitos(in.NumeroOperacion) || !soloDigitos(in.ClienteDniRuc) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MensajeResponse{Message: "numeroOperacion y clienteDniRuc deben ser numéricos"})
	}
	ent, err := entity.ParseEntidad(in.Entidad)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MensajeResponse{Message: "entidad fuera del catálogo"})
	}
	fechaHora, err := entity.ParseFechaHora(in.FechaHora)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MensajeResponse{Message: "fechaHora inválida"})
	}

	v := entity.Voucher{
		NumeroOperacion: in.NumeroOperacion,
		Entidad:         ent,
		ClienteDniRuc:   in.ClienteDniRuc,
		FechaHora:       fechaHora,
	}
	if err := h.repo.Create(&v); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.MensajeResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MensajeResponse{Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Message: "Voucher registrado correctamente"})
}

// Buscar godoc
// @Summary      Buscar voucher por número de operación y entidad
// @Tags         vouchers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuscarVoucherRequest  true  "Clave de búsqueda"
// @Success      200   {object}  dto.VoucherResponse
// @Failure      404   {object}  dto.MensajeResponse
// @Router       /api/vouchers/buscar [post]
func (h *VoucherHandler) Buscar(c *fiber.Ctx) error {
	var in dto.BuscarVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MensajeResponse{Message: "cuerpo inválido"})
	}
	ent, err := entity.ParseEntidad(in.Entidad)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MensajeResponse{Message: "entidad fuera del catálogo"})
	}
	v, err := h.repo.GetByClave(in.NumeroOperacion, ent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MensajeResponse{Message: err.Error()})
	}
	if v == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MensajeResponse{Message: "voucher no encontrado"})
	}
	return c.JSON(aResponse(*v))
}

func aResponse(v entity.Voucher) dto.VoucherResponse {
	return dto.VoucherResponse{
		ID:              v.ID,
		NumeroOperacion: v.NumeroOperacion,
		Entidad:         string(v.Entidad),
		ClienteDniRuc:   v.ClienteDniRuc,
		FechaHora:       entity.FormatFechaHora(v.FechaHora),
		CreatedAt:       entity.FormatFechaHora(v.CreatedAt),
	}
}

func soloDigitos(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
