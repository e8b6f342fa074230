package model

import "time"

// Marca is a brand. The name is unique within its categoria, not globally.
type Marca struct {
	ID          int64   `gorm:"primaryKey"`
	NombreMarca string  `gorm:"index:idx_marca_categoria,unique;not null"`
	Descripcion *string
	CategoriaID int64 `gorm:"index:idx_marca_categoria,unique;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Marca) TableName() string { return "marcas" }
