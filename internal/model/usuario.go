package model

import "time"

// Usuario stores system users with role-based access.
// Cargo: "administrador" | "gerente" | "cajero" | "visor"
type Usuario struct {
	ID            int64  `gorm:"primaryKey"`
	NombreUsuario string `gorm:"uniqueIndex;not null"`
	Contrasena    string `gorm:"not null"`
	Cargo         string `gorm:"type:varchar(20);not null;default:'cajero'"`
	Descripcion   *string
	Activo        bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Usuario) TableName() string { return "usuarios" }
