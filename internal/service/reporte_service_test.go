package service

import (
	"context"
	"testing"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReporteSvc() (ReporteService, *stubVentaRepo, *stubCompraRepo, *stubProductoRepo) {
	ventas := newStubVentaRepo()
	compras := newStubCompraRepo()
	productos := newStubProductoRepo()
	svc := NewReporteService(ventas, compras, productos, 5)
	return svc, ventas, compras, productos
}

func TestResumenDiaAgregaSoloVentasDelDia(t *testing.T) {
	svc, ventas, _, productos := buildReporteSvc()
	productos.add(&model.Producto{CodigoBarras: "R1", NombreProducto: "Casi agotado", StockActual: 1, Activo: true})

	dia := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	otroDia := dia.AddDate(0, 0, -1)

	ventas.ventas[1] = &model.Venta{ID: 1, FechaVenta: dia, TotalPagado: d("500"), TotalDeuda: d("400"), EstadoPago: model.VentaParcial}
	ventas.detalles[1] = []model.DetalleVenta{{ID: 1, VentaID: 1, PrecioTotalFinal: d("900")}}

	ventas.ventas[2] = &model.Venta{ID: 2, FechaVenta: otroDia, TotalPagado: d("100"), EstadoPago: model.VentaPagado}
	ventas.detalles[2] = []model.DetalleVenta{{ID: 2, VentaID: 2, PrecioTotalFinal: d("100")}}

	resumen, err := svc.ResumenDia(context.Background(), "2025-06-10")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", resumen.Fecha)
	assert.Equal(t, 1, resumen.CantidadVentas)
	assert.True(t, d("900").Equal(resumen.TotalVendido))
	assert.True(t, d("500").Equal(resumen.TotalCobrado))
	assert.True(t, d("400").Equal(resumen.DeudaGenerada))
	assert.Equal(t, 1, resumen.ProductosStockBajo)
}

func TestResumenDiaFechaInvalida(t *testing.T) {
	svc, _, _, _ := buildReporteSvc()

	_, err := svc.ResumenDia(context.Background(), "10/06/2025")
	assert.Error(t, err)
}

func TestCuentasPorCobrarUsaNombreDeCliente(t *testing.T) {
	svc, ventas, _, _ := buildReporteSvc()

	clienteID := int64(3)
	ventas.ventas[1] = &model.Venta{
		ID:          1,
		ClienteID:   &clienteID,
		Cliente:     &model.Cliente{ID: clienteID, NombreCliente: "Doña Rosa"},
		FechaVenta:  time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local),
		TotalPagado: d("200"),
		TotalDeuda:  d("800"),
		EstadoPago:  model.VentaParcial,
	}
	ventas.detalles[1] = []model.DetalleVenta{{ID: 1, VentaID: 1, PrecioTotalFinal: d("1000")}}

	list, err := svc.CuentasPorCobrar(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, "Doña Rosa", list[0].Tercero)
	assert.True(t, d("1000").Equal(list[0].Total))
	assert.True(t, d("800").Equal(list[0].Deuda))
}

func TestCuentasPorPagarExcluyeCompraPagada(t *testing.T) {
	svc, _, compras, _ := buildReporteSvc()

	compras.compras[1] = &model.Compra{ID: 1, FechaCompra: time.Now(), EstadoPago: model.CompraPagado}
	compras.compras[2] = &model.Compra{ID: 2, FechaCompra: time.Now(), TotalDeuda: d("700"), EstadoPago: model.CompraPendiente}
	compras.detalles[2] = []model.DetalleCompra{{ID: 1, CompraID: 2, ProveedorID: 1, PrecioTotal: d("700")}}

	list, err := svc.CuentasPorPagar(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].DocumentoID)
	assert.True(t, d("700").Equal(list[0].Total))
}
