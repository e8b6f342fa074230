package model

import "time"

// MovimientoStock registra cada cambio de stock en un producto.
// Written inside the same transaction as the stock delta, and only when the
// detalle's barcode matched a catalog row (unmatched barcodes are a no-op).
type MovimientoStock struct {
	ID         int64  `gorm:"primaryKey"`
	ProductoID int64  `gorm:"index;not null"`
	Tipo       string `gorm:"not null"` // "compra" | "venta" | "eliminacion_compra" | "eliminacion_venta" | "ajuste_manual"
	Cantidad   int    `gorm:"not null"` // positive = entrada, negative = salida
	StockAnterior int `gorm:"not null"`
	StockNuevo    int `gorm:"not null"`
	Motivo        string
	ReferenciaID  *int64 // compra_id or venta_id if applicable
	CreatedAt     time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization (movimiento_stocks → movimientos_stock).
func (MovimientoStock) TableName() string { return "movimientos_stock" }
