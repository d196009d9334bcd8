package model

import "time"

// Cliente is a pharmacy customer. Documento holds DNI or RUC.
type Cliente struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"idCliente"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Documento string    `gorm:"uniqueIndex;not null" json:"documento"`
	Direccion *string   `json:"direccion,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

func (Cliente) TableName() string { return "clientes" }
