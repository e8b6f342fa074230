package service

import (
	"context"
	"testing"

	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/infra"
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Integration tests against a real in-memory sqlite database. The pool is
// capped at one connection, so ":memory:" stays alive for the whole test.

type ledgerFixture struct {
	db           *gorm.DB
	compraSvc    CompraService
	ventaSvc     VentaService
	productoRepo repository.ProductoRepository
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)

	ids := repository.NewMaxPlusOneAllocator()
	productoRepo := repository.NewProductoRepository(db, ids)
	clienteRepo := repository.NewClienteRepository(db, ids)
	movimientoRepo := repository.NewMovimientoStockRepository(db, ids)
	compraRepo := repository.NewCompraRepository(db, ids)
	ventaRepo := repository.NewVentaRepository(db, ids)

	return &ledgerFixture{
		db:           db,
		compraSvc:    NewCompraService(compraRepo, productoRepo, movimientoRepo),
		ventaSvc:     NewVentaService(ventaRepo, productoRepo, clienteRepo, movimientoRepo, true, t.TempDir()),
		productoRepo: productoRepo,
	}
}

func (f *ledgerFixture) seedProducto(t *testing.T, barcode string, stock int) {
	t.Helper()
	err := f.productoRepo.Create(context.Background(), &model.Producto{
		CodigoBarras:   barcode,
		NombreProducto: "Producto " + barcode,
		PrecioVenta:    d("100"),
		PrecioFinal:    d("100"),
		StockActual:    stock,
		Activo:         true,
	})
	require.NoError(t, err)
}

func (f *ledgerFixture) stockDe(t *testing.T, barcode string) int {
	t.Helper()
	p, err := f.productoRepo.FindByBarcode(context.Background(), barcode)
	require.NoError(t, err)
	return p.StockActual
}

func (f *ledgerFixture) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Table(table).Count(&n).Error)
	return n
}

func TestVentaPagoInvalidoNoDejaRastro(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedProducto(t, "779200001", 20)

	// The empty tipo_pago violates the table CHECK after the header, the
	// detail and the stock delta were already written inside the transaction.
	_, err := f.ventaSvc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Detalles: []dto.DetalleVentaRequest{
			{CodigoBarras: "779200001", NombreProducto: "Producto", Unidades: 5, PrecioUnitario: d("200")},
		},
		Pagos: []dto.PagoVentaRequest{
			{TipoPago: "", MontoPago: d("1000")},
		},
	}, "cajero1")
	require.Error(t, err)

	assert.EqualValues(t, 0, f.count(t, "ventas"))
	assert.EqualValues(t, 0, f.count(t, "detalle_ventas"))
	assert.EqualValues(t, 0, f.count(t, "pagos_ventas"))
	assert.EqualValues(t, 0, f.count(t, "movimientos_stock"))
	assert.Equal(t, 20, f.stockDe(t, "779200001"))
}

func TestCompraPagoInvalidoNoDejaRastro(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedProducto(t, "779200002", 4)

	_, err := f.compraSvc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		Detalles: []dto.DetalleCompraRequest{
			{CodigoBarras: "779200002", NombreProducto: "Producto", ProveedorID: 1, Unidades: 10, PrecioUnitario: d("50")},
		},
		Pagos: []dto.PagoCompraRequest{
			{TipoPago: "", MontoPago: d("500")},
		},
	}, "admin")
	require.Error(t, err)

	assert.EqualValues(t, 0, f.count(t, "compras"))
	assert.EqualValues(t, 0, f.count(t, "detalle_compras"))
	assert.EqualValues(t, 0, f.count(t, "pagos_compras"))
	assert.Equal(t, 4, f.stockDe(t, "779200002"))
}

func TestCicloCompraVentaSobreBaseReal(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedProducto(t, "779200003", 0)

	compra, err := f.compraSvc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		Detalles: []dto.DetalleCompraRequest{
			{CodigoBarras: "779200003", NombreProducto: "Producto", ProveedorID: 1, Unidades: 12, PrecioUnitario: d("80")},
		},
		Pagos: []dto.PagoCompraRequest{
			{TipoPago: "efectivo", MontoPago: d("960")},
		},
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.CompraPagado, compra.EstadoPago)
	assert.Equal(t, 12, f.stockDe(t, "779200003"))

	venta, err := f.ventaSvc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Detalles: []dto.DetalleVentaRequest{
			{CodigoBarras: "779200003", NombreProducto: "Producto", Unidades: 5, PrecioUnitario: d("120")},
		},
	}, "cajero1")
	require.NoError(t, err)
	assert.Equal(t, model.VentaPendiente, venta.EstadoPago)
	assert.Equal(t, 7, f.stockDe(t, "779200003"))

	// Pay in two installments and watch the estado transition.
	venta, err = f.ventaSvc.AgregarPago(context.Background(), venta.ID, dto.PagoVentaRequest{
		TipoPago: "efectivo", MontoPago: d("300"),
	}, "cajero1")
	require.NoError(t, err)
	assert.Equal(t, model.VentaParcial, venta.EstadoPago)

	venta, err = f.ventaSvc.AgregarPago(context.Background(), venta.ID, dto.PagoVentaRequest{
		TipoPago: "efectivo", MontoPago: d("300"),
	}, "cajero1")
	require.NoError(t, err)
	assert.Equal(t, model.VentaPagado, venta.EstadoPago)
	assert.True(t, venta.TotalDeuda.IsZero())

	// Deleting the sale restores the stock and clears all its rows.
	require.NoError(t, f.ventaSvc.Eliminar(context.Background(), venta.ID))
	assert.Equal(t, 12, f.stockDe(t, "779200003"))
	assert.EqualValues(t, 0, f.count(t, "ventas"))
	assert.EqualValues(t, 0, f.count(t, "pagos_ventas"))
}

func TestIdsAsignadosMaxMasUno(t *testing.T) {
	f := newLedgerFixture(t)

	primera, err := f.compraSvc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		Detalles: []dto.DetalleCompraRequest{
			{CodigoBarras: "X1", NombreProducto: "Uno", ProveedorID: 1, Unidades: 1, PrecioUnitario: d("10")},
		},
	}, "admin")
	require.NoError(t, err)

	segunda, err := f.compraSvc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		Detalles: []dto.DetalleCompraRequest{
			{CodigoBarras: "X2", NombreProducto: "Dos", ProveedorID: 1, Unidades: 1, PrecioUnitario: d("10")},
		},
	}, "admin")
	require.NoError(t, err)

	assert.Equal(t, primera.ID+1, segunda.ID)

	// After deleting the last compra its id is reused by the next one.
	require.NoError(t, f.compraSvc.Eliminar(context.Background(), segunda.ID))
	tercera, err := f.compraSvc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		Detalles: []dto.DetalleCompraRequest{
			{CodigoBarras: "X3", NombreProducto: "Tres", ProveedorID: 1, Unidades: 1, PrecioUnitario: d("10")},
		},
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, segunda.ID, tercera.ID)
}
