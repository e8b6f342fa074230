package service

import (
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"github.com/shopspring/decimal"
)

// estadoLabels holds the three payment-status labels for one ledger side.
// Purchases use capitalized labels, sales lowercase.
type estadoLabels struct {
	Pagado    string
	Parcial   string
	Pendiente string
}

var (
	compraEstados = estadoLabels{
		Pagado:    model.CompraPagado,
		Parcial:   model.CompraParcial,
		Pendiente: model.CompraPendiente,
	}
	ventaEstados = estadoLabels{
		Pagado:    model.VentaPagado,
		Parcial:   model.VentaParcial,
		Pendiente: model.VentaPendiente,
	}
)

// derivarEstadoPago computes the payment status from the document total and
// the sum of its payments. Debt zero means fully paid; a debt strictly
// between zero and the total means partially paid; anything else, including
// an overpayment, is pending and flags the document for review.
func derivarEstadoPago(total, pagado decimal.Decimal, labels estadoLabels) (deuda decimal.Decimal, estado string) {
	deuda = total.Sub(pagado)
	switch {
	case deuda.IsZero():
		estado = labels.Pagado
	case deuda.Sign() > 0 && deuda.LessThan(total):
		estado = labels.Parcial
	default:
		estado = labels.Pendiente
	}
	return deuda, estado
}
