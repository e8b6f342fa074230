package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra is a purchase from one or more suppliers. TotalPagado, TotalDeuda and
// EstadoPago are derived from the detalle and pago rows and re-derived on every
// payment mutation, never patched incrementally.
type Compra struct {
	ID              int64           `gorm:"primaryKey"`
	FechaCompra     time.Time       `gorm:"index;not null"`
	Facturacion     string          `gorm:"not null;default:'No especificado'"`
	Observaciones   *string
	TotalPagado     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalDeuda      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	EstadoPago      string          `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	UsuarioRegistro string          `gorm:"not null;default:'Sistema'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Detalles []DetalleCompra `gorm:"foreignKey:CompraID"`
	Pagos    []PagoCompra    `gorm:"foreignKey:CompraID"`
}

func (Compra) TableName() string { return "compras" }

// DetalleCompra is one purchased line item. CodigoBarras and NombreProducto are
// snapshots taken at purchase time: the barcode is matched by value against the
// catalog (the product may not exist yet) and the name survives later renames.
type DetalleCompra struct {
	ID                int64           `gorm:"primaryKey"`
	CompraID          int64           `gorm:"index;not null"`
	CodigoBarras      string          `gorm:"index;not null"`
	NombreProducto    string          `gorm:"not null"`
	ProveedorID       int64           `gorm:"index;not null"`
	UnidadesCompradas int             `gorm:"not null"`
	PrecioUnitario    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (DetalleCompra) TableName() string { return "detalle_compras" }

// PagoCompra is a payment against a compra. The tipo_pago CHECK runs at the
// store level so a malformed payment aborts the surrounding transaction.
type PagoCompra struct {
	ID            int64           `gorm:"primaryKey"`
	CompraID      int64           `gorm:"index;not null"`
	TipoPago      string          `gorm:"not null;check:tipo_pago <> ''"`
	MontoPago     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaPago     time.Time       `gorm:"not null"`
	Observaciones *string
	CreatedAt     time.Time
}

func (PagoCompra) TableName() string { return "pagos_compras" }
