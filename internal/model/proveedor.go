package model

import "time"

// Proveedor is a supplier. Hard-deletable only while no detalle de compra
// references it; purchase detail rows keep the reference so supplier history
// survives product renames.
type Proveedor struct {
	ID              int64   `gorm:"primaryKey"`
	NombreProveedor string  `gorm:"uniqueIndex;not null"`
	Contacto        *string
	Descripcion     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
