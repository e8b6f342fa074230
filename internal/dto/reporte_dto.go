package dto

import "github.com/shopspring/decimal"

// ResumenDiaResponse summarizes the selected day's activity for the dashboard.
type ResumenDiaResponse struct {
	Fecha              string          `json:"fecha"`
	CantidadVentas     int             `json:"cantidad_ventas"`
	TotalVendido       decimal.Decimal `json:"total_vendido"`
	TotalCobrado       decimal.Decimal `json:"total_cobrado"`
	DeudaGenerada      decimal.Decimal `json:"deuda_generada"`
	ProductosStockBajo int             `json:"productos_stock_bajo"`
}

// CuentaPendienteResponse is one row of the accounts receivable/payable report.
type CuentaPendienteResponse struct {
	DocumentoID int64           `json:"documento_id"`
	Fecha       string          `json:"fecha"`
	Tercero     string          `json:"tercero,omitempty"`
	Total       decimal.Decimal `json:"total"`
	Pagado      decimal.Decimal `json:"pagado"`
	Deuda       decimal.Decimal `json:"deuda"`
	EstadoPago  string          `json:"estado_pago"`
}
