package model

import "time"

// Auditoria registra cada movimiento de inventario y operación sensible.
// Rows are written asynchronously by the worker pool; a failed audit write
// never fails the business operation that produced it.
type Auditoria struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Operacion string    `gorm:"not null" json:"operacion"` // "MOVIMIENTO_INVENTARIO" | "LOGIN" | ...
	Entidad   string    `gorm:"not null" json:"entidad"`
	EntidadID int64     `gorm:"column:id_entidad;index" json:"idEntidad"`
	Usuario   string    `gorm:"not null" json:"usuario"`
	Detalles  string    `json:"detalles"`
	CreatedAt time.Time `gorm:"index" json:"fecha"`
}

func (Auditoria) TableName() string { return "auditorias" }
