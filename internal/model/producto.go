package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a pharmacy catalog item. Stock is the single authoritative
// counter: it is decremented inside the sale transaction and incremented when
// a pedido reaches RECIBIDO. The DB constraint stock >= 0 is the last line of
// defense against concurrent oversell.
type Producto struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"idProducto"`
	Nombre           string          `gorm:"index;not null" json:"nombre"`
	Presentacion     string          `json:"presentacion"`
	Descripcion      *string         `json:"descripcion,omitempty"`
	Precio           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Stock            int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	FechaVencimiento time.Time       `gorm:"type:date;not null" json:"fechaVencimiento"`
	CategoriaID      int64           `gorm:"not null;index" json:"idCategoria"`
	CreatedAt        time.Time       `json:"fechaCreacion"`
	UpdatedAt        time.Time       `json:"fechaActualizacion"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`
}

// TableName overrides GORM's default pluralization.
func (Producto) TableName() string { return "productos" }
