package dto

import "github.com/shopspring/decimal"

// DetalleVentaRequest is one candidate sale line. The unit price is NOT
// accepted from the client — it is captured from the catalog server-side.
type DetalleVentaRequest struct {
	IDProducto int64 `json:"idProducto" validate:"required,gt=0"`
	Cantidad   int   `json:"cantidad"   validate:"required,gt=0"`
}

type RegistrarVentaRequest struct {
	IDCliente int64                 `json:"idCliente" validate:"required,gt=0"`
	Detalles  []DetalleVentaRequest `json:"detalles"  validate:"required,min=1,dive"`
}

type DetalleVentaResponse struct {
	IDProducto int64           `json:"idProducto"`
	Producto   string          `json:"producto"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID       int64                  `json:"idVenta"`
	Fecha    string                 `json:"fecha"`
	Cliente  string                 `json:"cliente"`
	Cajero   string                 `json:"cajero"`
	Detalles []DetalleVentaResponse `json:"detalles"`
	Subtotal decimal.Decimal        `json:"subtotal"`
	IGV      decimal.Decimal        `json:"igv"`
	Total    decimal.Decimal        `json:"total"`
}

// VentaFilter is bound from the query string of GET /api/ventas.
type VentaFilter struct {
	Inicio string `form:"inicio"` // YYYY-MM-DD inclusive
	Fin    string `form:"fin"`    // YYYY-MM-DD inclusive
}
