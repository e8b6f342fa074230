package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleCompraRequest struct {
	CodigoBarras   string          `json:"codigo_barras"     validate:"required,min=1,max=64"`
	NombreProducto string          `json:"nombre_producto"   validate:"required,min=1,max=200"`
	ProveedorID    int64           `json:"proveedor_id"      validate:"required,min=1"`
	Unidades       int             `json:"unidades"          validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"   validate:"required"`
}

type PagoCompraRequest struct {
	TipoPago      string          `json:"tipo_pago"     validate:"required,min=1,max=50"`
	MontoPago     decimal.Decimal `json:"monto_pago"    validate:"required,gt=0"`
	FechaPago     *string         `json:"fecha_pago"    validate:"omitempty,datetime=2006-01-02"`
	Observaciones *string         `json:"observaciones" validate:"omitempty,max=500"`
}

type RegistrarCompraRequest struct {
	FechaCompra   *string                `json:"fecha_compra"  validate:"omitempty,datetime=2006-01-02"`
	Facturacion   *string                `json:"facturacion"   validate:"omitempty,max=100"`
	Observaciones *string                `json:"observaciones" validate:"omitempty,max=500"`
	Detalles      []DetalleCompraRequest `json:"detalles"      validate:"required,min=1,dive"`
	Pagos         []PagoCompraRequest    `json:"pagos"         validate:"dive"`
}

// ActualizarCompraRequest updates header fields and may append new payments.
// Existing details and payments are immutable once registered.
type ActualizarCompraRequest struct {
	FechaCompra   *string             `json:"fecha_compra"  validate:"omitempty,datetime=2006-01-02"`
	Facturacion   *string             `json:"facturacion"   validate:"omitempty,max=100"`
	Observaciones *string             `json:"observaciones" validate:"omitempty,max=500"`
	NuevosPagos   []PagoCompraRequest `json:"nuevos_pagos"  validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleCompraResponse struct {
	ID             int64           `json:"id"`
	CodigoBarras   string          `json:"codigo_barras"`
	NombreProducto string          `json:"nombre_producto"`
	ProveedorID    int64           `json:"proveedor_id"`
	Unidades       int             `json:"unidades"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	PrecioTotal    decimal.Decimal `json:"precio_total"`
}

type PagoCompraResponse struct {
	ID            int64           `json:"id"`
	TipoPago      string          `json:"tipo_pago"`
	MontoPago     decimal.Decimal `json:"monto_pago"`
	FechaPago     string          `json:"fecha_pago"`
	Observaciones *string         `json:"observaciones"`
}

type CompraResponse struct {
	ID              int64                   `json:"id"`
	FechaCompra     string                  `json:"fecha_compra"`
	Facturacion     string                  `json:"facturacion"`
	Observaciones   *string                 `json:"observaciones"`
	TotalCompra     decimal.Decimal         `json:"total_compra"`
	TotalPagado     decimal.Decimal         `json:"total_pagado"`
	TotalDeuda      decimal.Decimal         `json:"total_deuda"`
	EstadoPago      string                  `json:"estado_pago"`
	UsuarioRegistro string                  `json:"usuario_registro"`
	Detalles        []DetalleCompraResponse `json:"detalles"`
	Pagos           []PagoCompraResponse    `json:"pagos"`
}
