package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is the catalog row for a sellable item. Stock mutations go through
// the compra/venta services, which match by barcode; everything else is managed
// by the catalog service.
type Producto struct {
	ID             int64           `gorm:"primaryKey"`
	CodigoBarras   string          `gorm:"uniqueIndex;not null"`
	NombreProducto string          `gorm:"index;not null"`
	CategoriaID    *int64          `gorm:"index"`
	MarcaID        *int64          `gorm:"index"`
	PrecioVenta    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Descuento is a percentage (0-100); PrecioFinal is derived from it and
	// recalculated on every price/discount update.
	Descuento           decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PrecioFinal         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaFinalDescuento *time.Time
	// StockActual is a signed quantity. Sales may drive it negative unless the
	// ALLOW_NEGATIVE_STOCK policy is disabled.
	StockActual int  `gorm:"not null;default:0"`
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
	Marca     *Marca     `gorm:"foreignKey:MarcaID"`
}

func (Producto) TableName() string { return "productos" }
