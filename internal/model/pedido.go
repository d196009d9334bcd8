package model

import "time"

// Pedido is a purchase order placed against a supplier. Estado follows the
// fixed PENDIENTE → ENVIADO → RECIBIDO progression enforced by
// domain.ValidarTransicion; the row itself never encodes the rules.
type Pedido struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"idPedido"`
	Fecha       time.Time `gorm:"not null;index" json:"fecha"`
	Estado      string    `gorm:"type:varchar(20);not null;index" json:"estado"`
	ProveedorID int64     `gorm:"not null;index" json:"idProveedor"`
	CreatedAt   time.Time `json:"-"`

	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorID" json:"proveedor,omitempty"`
	Detalles  []DetallePedido `gorm:"foreignKey:PedidoID" json:"detalles"`
}

func (Pedido) TableName() string { return "pedidos" }

// DetallePedido is one purchase-order line. Supplier orders carry no unit
// price — cost negotiation happens outside this system.
type DetallePedido struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"idDetalle"`
	PedidoID   int64 `gorm:"not null;index" json:"-"`
	ProductoID int64 `gorm:"not null;index" json:"idProducto"`
	Cantidad   int   `gorm:"not null" json:"cantidad"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

func (DetallePedido) TableName() string { return "detalles_pedido" }
