package dto

// DetallePedidoRequest is one purchase-order line — no unit price, supplier
// orders never consume stock on creation.
type DetallePedidoRequest struct {
	IDProducto int64 `json:"idProducto" validate:"required,gt=0"`
	Cantidad   int   `json:"cantidad"   validate:"required,gt=0"`
}

type CrearPedidoRequest struct {
	IDProveedor int64                  `json:"idProveedor" validate:"required,gt=0"`
	Detalles    []DetallePedidoRequest `json:"detalles"    validate:"required,min=1,dive"`
}

type DetallePedidoResponse struct {
	IDProducto int64  `json:"idProducto"`
	Producto   string `json:"producto"`
	Cantidad   int    `json:"cantidad"`
}

type PedidoResponse struct {
	ID        int64                   `json:"idPedido"`
	Fecha     string                  `json:"fecha"`
	Estado    string                  `json:"estado"`
	Proveedor string                  `json:"proveedor"`
	Detalles  []DetallePedidoResponse `json:"detalles"`
}

// PedidoFilter is bound from the query string of GET /api/pedidos.
type PedidoFilter struct {
	Estado string `form:"estado" validate:"omitempty,oneof=PENDIENTE ENVIADO RECIBIDO"`
}
