package dto

import "github.com/shopspring/decimal"

type CategoriaRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

type ClienteRequest struct {
	Nombre    string  `json:"nombre"    validate:"required"`
	Documento string  `json:"documento" validate:"required,min=8,max=11"`
	Direccion *string `json:"direccion"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

type ProveedorRequest struct {
	Nombre    string  `json:"nombre" validate:"required"`
	Contacto  *string `json:"contacto"`
	Direccion *string `json:"direccion"`
}

// CatalogoItem is the product shape consumed by the sale/pedido forms:
// everything a draft needs to validate stock and capture prices.
type CatalogoItem struct {
	IDProducto       int64           `json:"idProducto"`
	Nombre           string          `json:"nombre"`
	Precio           decimal.Decimal `json:"precio"`
	Stock            int             `json:"stock"`
	FechaVencimiento string          `json:"fechaVencimiento"`
	IDCategoria      int64           `json:"idCategoria"`
}
