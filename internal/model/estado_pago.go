package model

// Estado de pago values. Compras use capitalized labels and ventas lowercase
// ones; both sets predate this backend and are preserved verbatim because the
// stored strings are part of the exported data.
const (
	CompraPagado    = "Pagado"
	CompraParcial   = "Parcial"
	CompraPendiente = "Pendiente"

	VentaPagado    = "pagado"
	VentaParcial   = "parcial"
	VentaPendiente = "pendiente"
)
