package dto

import "github.com/shopspring/decimal"

// ReporteVentasResponse summarizes sales over a date range.
type ReporteVentasResponse struct {
	TotalVentas           decimal.Decimal `json:"totalVentas"`
	CantidadTransacciones int64           `json:"cantidadTransacciones"`
	PromedioVenta         decimal.Decimal `json:"promedioVenta"`
}

// ReporteFilter is bound from the query string of GET /api/reportes/ventas.
type ReporteFilter struct {
	Inicio string `form:"inicio" validate:"required,datetime=2006-01-02"`
	Fin    string `form:"fin"    validate:"required,datetime=2006-01-02"`
}

// ReporteInventarioResponse is the inventory valuation snapshot.
type ReporteInventarioResponse struct {
	TotalProductos     int             `json:"totalProductos"`
	StockTotal         int             `json:"stockTotal"`
	ValorInventario    decimal.Decimal `json:"valorInventario"`
	ProductosStockBajo int             `json:"productosStockBajo"`
	ProductosPorVencer int             `json:"productosPorVencer"`
}
