package dto

import "github.com/shopspring/decimal"

// ─── Filter ─────────────────────────────────────────────────────────────────

// VentaFilter is bound from query string of GET /v1/ventas.
type VentaFilter struct {
	Fecha     string `form:"fecha"` // YYYY-MM-DD; empty = all
	ClienteID int64  `form:"cliente_id"`
	Estado    string `form:"estado"` // pagado | parcial | pendiente | empty = all
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleVentaRequest struct {
	CodigoBarras   string           `json:"codigo_barras"   validate:"required,min=1,max=64"`
	NombreProducto string           `json:"nombre_producto" validate:"required,min=1,max=200"`
	Unidades       int              `json:"unidades"        validate:"required,min=1"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario" validate:"required"`
	// Descuento is a percentage between 0 and 100 applied to the line total.
	Descuento *decimal.Decimal `json:"descuento"`
}

type PagoVentaRequest struct {
	TipoPago      string          `json:"tipo_pago"     validate:"required,min=1,max=50"`
	MontoPago     decimal.Decimal `json:"monto_pago"    validate:"required,gt=0"`
	FechaPago     *string         `json:"fecha_pago"    validate:"omitempty,datetime=2006-01-02"`
	Observaciones *string         `json:"observaciones" validate:"omitempty,max=500"`
}

type RegistrarVentaRequest struct {
	ClienteID     *int64                `json:"cliente_id"    validate:"omitempty,min=1"`
	FechaVenta    *string               `json:"fecha_venta"   validate:"omitempty,datetime=2006-01-02"`
	Facturacion   *string               `json:"facturacion"   validate:"omitempty,max=100"`
	Observaciones *string               `json:"observaciones" validate:"omitempty,max=500"`
	Detalles      []DetalleVentaRequest `json:"detalles"      validate:"required,min=1,dive"`
	Pagos         []PagoVentaRequest    `json:"pagos"         validate:"dive"`
}

// ActualizarVentaRequest updates header fields and may append new payments.
type ActualizarVentaRequest struct {
	ClienteID     *int64             `json:"cliente_id"    validate:"omitempty,min=1"`
	FechaVenta    *string            `json:"fecha_venta"   validate:"omitempty,datetime=2006-01-02"`
	Facturacion   *string            `json:"facturacion"   validate:"omitempty,max=100"`
	Observaciones *string            `json:"observaciones" validate:"omitempty,max=500"`
	NuevosPagos   []PagoVentaRequest `json:"nuevos_pagos"  validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ID               int64           `json:"id"`
	CodigoBarras     string          `json:"codigo_barras"`
	NombreProducto   string          `json:"nombre_producto"`
	Unidades         int             `json:"unidades"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
	PrecioTotal      decimal.Decimal `json:"precio_total"`
	Descuento        decimal.Decimal `json:"descuento"`
	PrecioTotalFinal decimal.Decimal `json:"precio_total_final"`
}

type PagoVentaResponse struct {
	ID            int64           `json:"id"`
	TipoPago      string          `json:"tipo_pago"`
	MontoPago     decimal.Decimal `json:"monto_pago"`
	FechaPago     string          `json:"fecha_pago"`
	Observaciones *string         `json:"observaciones"`
}

type VentaResponse struct {
	ID                   int64                  `json:"id"`
	ClienteID            *int64                 `json:"cliente_id"`
	Cliente              string                 `json:"cliente,omitempty"`
	FechaVenta           string                 `json:"fecha_venta"`
	Facturacion          string                 `json:"facturacion"`
	Observaciones        *string                `json:"observaciones"`
	TotalVenta           decimal.Decimal        `json:"total_venta"`
	TotalPagado          decimal.Decimal        `json:"total_pagado"`
	TotalDeuda           decimal.Decimal        `json:"total_deuda"`
	EstadoPago           string                 `json:"estado_pago"`
	UsuarioRegistro      string                 `json:"usuario_registro"`
	FechaActualizacion   *string                `json:"fecha_actualizacion"`
	UsuarioActualizacion *string                `json:"usuario_actualizacion"`
	Detalles             []DetalleVentaResponse `json:"detalles"`
	Pagos                []PagoVentaResponse    `json:"pagos"`
}
