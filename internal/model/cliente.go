package model

import "time"

// Cliente is a customer account used for credit sales. Soft delete only:
// historical ventas keep pointing at the row.
type Cliente struct {
	ID            int64   `gorm:"primaryKey"`
	NombreCliente string  `gorm:"uniqueIndex;not null"`
	Contacto      *string
	Descripcion   *string
	Activo        bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Cliente) TableName() string { return "clientes" }
