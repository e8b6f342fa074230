package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta is a sale to an optional customer (nil ClienteID = anonymous sale).
// Derived fields follow the same recomputation rule as Compra; the estado
// labels are lowercase on this side.
type Venta struct {
	ID                   int64           `gorm:"primaryKey"`
	ClienteID            *int64          `gorm:"index"`
	FechaVenta           time.Time       `gorm:"index;not null"`
	Facturacion          string          `gorm:"not null;default:'No especificado'"`
	Observaciones        *string
	TotalPagado          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalDeuda           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	EstadoPago           string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	FechaRegistro        time.Time       `gorm:"not null"`
	UsuarioRegistro      string          `gorm:"not null"`
	FechaActualizacion   *time.Time
	UsuarioActualizacion *string

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID"`
	Pagos    []PagoVenta    `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }

// DetalleVenta is one sold line item. ClienteID is a denormalized copy of the
// header's customer so the line stays attributable if the header is ever
// re-pointed. PrecioTotalFinal applies the per-line discount percentage.
type DetalleVenta struct {
	ID               int64           `gorm:"primaryKey"`
	VentaID          int64           `gorm:"index;not null"`
	CodigoBarras     string          `gorm:"index;not null"`
	NombreProducto   string          `gorm:"not null"`
	ClienteID        *int64
	UnidadesVendidas int             `gorm:"not null"`
	PrecioUnitario   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descuento        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PrecioTotalFinal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (DetalleVenta) TableName() string { return "detalle_ventas" }

type PagoVenta struct {
	ID            int64           `gorm:"primaryKey"`
	VentaID       int64           `gorm:"index;not null"`
	TipoPago      string          `gorm:"not null;check:tipo_pago <> ''"`
	MontoPago     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaPago     time.Time       `gorm:"not null"`
	Observaciones *string
	CreatedAt     time.Time
}

func (PagoVenta) TableName() string { return "pagos_ventas" }
