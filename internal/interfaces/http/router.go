package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carlosxd753/vouchers/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	VoucherRepo repository.VoucherRepository
}

// Router registra las rutas del almacén de vouchers de referencia.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	vouchers := api.Group("/vouchers")
	handler := NewVoucherHandler(deps.VoucherRepo)
	vouchers.Get("/", handler.Listar)
	vouchers.Post("/", handler.Registrar)
	vouchers.Post("/buscar", handler.Buscar)
}
