package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta is a committed sale. Totals are computed by the domain pricing engine
// at commit time and stored denormalized for listing and reporting.
type Venta struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"idVenta"`
	Fecha     time.Time       `gorm:"not null;index" json:"fecha"`
	ClienteID int64           `gorm:"not null;index" json:"idCliente"`
	UsuarioID int64           `gorm:"not null" json:"idUsuario"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	IGV       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"igv"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt time.Time       `json:"-"`

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Usuario  *Usuario       `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID" json:"detalles"`
}

func (Venta) TableName() string { return "ventas" }

// DetalleVenta is one sale line. Precio is the unit price captured when the
// line was added — later catalog price changes never touch committed sales.
type DetalleVenta struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"idDetalle"`
	VentaID    int64           `gorm:"not null;index" json:"-"`
	ProductoID int64           `gorm:"not null;index" json:"idProducto"`
	Cantidad   int             `gorm:"not null" json:"cantidad"`
	Precio     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }
