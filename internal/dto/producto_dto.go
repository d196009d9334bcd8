package dto

import "github.com/shopspring/decimal"

type ProductoRequest struct {
	Nombre           string          `json:"nombre"           validate:"required"`
	Presentacion     string          `json:"presentacion"`
	Descripcion      *string         `json:"descripcion"`
	Precio           decimal.Decimal `json:"precio"           validate:"required,min=0"`
	Stock            int             `json:"stock"            validate:"min=0"`
	FechaVencimiento string          `json:"fechaVencimiento" validate:"required,datetime=2006-01-02"`
	IDCategoria      int64           `json:"idCategoria"      validate:"required,gt=0"`
}

// ProductoFilter is bound from the query string of GET /api/productos.
type ProductoFilter struct {
	Nombre      string `form:"nombre"`
	IDCategoria int64  `form:"idCategoria"`
}
