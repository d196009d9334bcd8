package model

import "time"

// Categoria groups products for the catalog screens.
type Categoria struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"idCategoria"`
	Nombre      string    `gorm:"uniqueIndex;not null" json:"nombre"`
	Descripcion *string   `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"fechaCreacion"`
}

func (Categoria) TableName() string { return "categorias" }
