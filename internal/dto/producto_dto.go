package dto

import "github.com/shopspring/decimal"

// ─── Filter ─────────────────────────────────────────────────────────────────

// ProductoFilter is bound from query string of GET /v1/productos.
type ProductoFilter struct {
	Estado string `form:"estado,default=activo"` // activo | inactivo | todos
	Buscar string `form:"buscar"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	CodigoBarras   string           `json:"codigo_barras"   validate:"required,min=1,max=64"`
	NombreProducto string           `json:"nombre_producto" validate:"required,min=1,max=200"`
	CategoriaID    *int64           `json:"categoria_id"    validate:"omitempty,min=1"`
	MarcaID        *int64           `json:"marca_id"        validate:"omitempty,min=1"`
	PrecioVenta    decimal.Decimal  `json:"precio_venta"    validate:"required"`
	Descuento      *decimal.Decimal `json:"descuento"`
	// FechaFinalDescuento in YYYY-MM-DD; empty means no expiry.
	FechaFinalDescuento *string `json:"fecha_final_descuento" validate:"omitempty,datetime=2006-01-02"`
	StockActual         *int    `json:"stock_actual"          validate:"omitempty,min=0"`
}

type ActualizarProductoRequest struct {
	CodigoBarras        string           `json:"codigo_barras"   validate:"required,min=1,max=64"`
	NombreProducto      string           `json:"nombre_producto" validate:"required,min=1,max=200"`
	CategoriaID         *int64           `json:"categoria_id"    validate:"omitempty,min=1"`
	MarcaID             *int64           `json:"marca_id"        validate:"omitempty,min=1"`
	PrecioVenta         decimal.Decimal  `json:"precio_venta"    validate:"required"`
	Descuento           *decimal.Decimal `json:"descuento"`
	FechaFinalDescuento *string          `json:"fecha_final_descuento" validate:"omitempty,datetime=2006-01-02"`
}

type AjusteStockRequest struct {
	Cantidad int    `json:"cantidad" validate:"required"`
	Motivo   string `json:"motivo"   validate:"required,min=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID                  int64           `json:"id"`
	CodigoBarras        string          `json:"codigo_barras"`
	NombreProducto      string          `json:"nombre_producto"`
	CategoriaID         *int64          `json:"categoria_id"`
	Categoria           string          `json:"categoria,omitempty"`
	MarcaID             *int64          `json:"marca_id"`
	Marca               string          `json:"marca,omitempty"`
	PrecioVenta         decimal.Decimal `json:"precio_venta"`
	Descuento           decimal.Decimal `json:"descuento"`
	PrecioFinal         decimal.Decimal `json:"precio_final"`
	FechaFinalDescuento *string         `json:"fecha_final_descuento"`
	StockActual         int             `json:"stock_actual"`
	Activo              bool            `json:"activo"`
}

type HistorialPrecioResponse struct {
	ID                int64           `json:"id"`
	ProductoID        int64           `json:"producto_id"`
	PrecioAnterior    decimal.Decimal `json:"precio_anterior"`
	PrecioNuevo       decimal.Decimal `json:"precio_nuevo"`
	DescuentoAnterior decimal.Decimal `json:"descuento_anterior"`
	DescuentoNuevo    decimal.Decimal `json:"descuento_nuevo"`
	Usuario           string          `json:"usuario"`
	Fecha             string          `json:"fecha"`
}

type MovimientoStockResponse struct {
	ID            int64  `json:"id"`
	ProductoID    int64  `json:"producto_id"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
	Motivo        string `json:"motivo"`
	ReferenciaID  *int64 `json:"referencia_id"`
	Fecha         string `json:"fecha"`
}
