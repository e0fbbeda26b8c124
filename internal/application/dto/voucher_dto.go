package dto

// RegistrarVoucherRequest cuerpo de POST /api/vouchers.
// fechaHora va en la forma yyyy-MM-ddTHH:mm:00 (segundos siempre en cero).
type RegistrarVoucherRequest struct {
	NumeroOperacion string `json:"numeroOperacion"`
	Entidad         string `json:"entidad"`
	ClienteDniRuc   string `json:"clienteDniRuc"`
	FechaHora       string `json:"fechaHora"`
}

// BuscarVoucherRequest cuerpo de POST /api/vouchers/buscar.
// La clave natural de búsqueda es (numeroOperacion, entidad).
type BuscarVoucherRequest struct {
	NumeroOperacion string `json:"numeroOperacion"`
	Entidad         string `json:"entidad"`
}

// VoucherResponse representación de un voucher en el contrato HTTP.
type VoucherResponse struct {
	ID              string `json:"id"`
	NumeroOperacion string `json:"numeroOperacion"`
	Entidad         string `json:"entidad"`
	ClienteDniRuc   string `json:"clienteDniRuc"`
	FechaHora       string `json:"fechaHora"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

// MensajeResponse cuerpo con mensaje para el usuario. Lo usan tanto las
// respuestas 2xx del registro como los rechazos con cuerpo JSON.
type MensajeResponse struct {
	Message string `json:"message"`
}
