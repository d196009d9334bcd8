package model

import "time"

// Roles disponibles en el sistema.
const (
	RolAdministrador = "ADMINISTRADOR"
	RolTrabajador    = "TRABAJADOR"
)

// Usuario stores system users with role-based access.
type Usuario struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"idUsuario"`
	Nombre       string    `gorm:"not null" json:"nombre"`
	Username     string    `gorm:"column:usuario;uniqueIndex;not null" json:"usuario"`
	PasswordHash string    `gorm:"column:contrasena;not null" json:"-"`
	Rol          string    `gorm:"type:varchar(20);not null" json:"rol"`
	Activo       bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt    time.Time `json:"fechaCreacion"`
}

func (Usuario) TableName() string { return "usuarios" }
