package model

import "time"

// Proveedor is a supplier purchase orders are placed against.
type Proveedor struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"idProveedor"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Contacto  *string   `json:"contacto,omitempty"`
	Direccion *string   `json:"direccion,omitempty"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

func (Proveedor) TableName() string { return "proveedores" }
