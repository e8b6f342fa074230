package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistorialPrecio keeps one row per price or discount change on a producto.
type HistorialPrecio struct {
	ID                int64 `gorm:"primaryKey"`
	ProductoID        int64 `gorm:"index;not null"`
	PrecioAnterior    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioNuevo       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DescuentoAnterior decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	DescuentoNuevo    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Usuario           string
	CreatedAt         time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (HistorialPrecio) TableName() string { return "historial_precios" }
