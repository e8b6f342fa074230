package model

import "time"

// Categoria classifies products. Hard-deletable only while no producto or
// marca references it.
type Categoria struct {
	ID              int64   `gorm:"primaryKey"`
	NombreCategoria string  `gorm:"uniqueIndex;not null"`
	Descripcion     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }
