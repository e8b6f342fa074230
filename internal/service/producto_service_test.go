package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func buildProductoSvc() (ProductoService, *stubProductoRepo, *stubHistorialRepo, *stubMovimientoRepo) {
	productos := newStubProductoRepo()
	historial := &stubHistorialRepo{}
	movimientos := &stubMovimientoRepo{}
	svc := NewProductoService(productos, historial, movimientos, 5)
	return svc, productos, historial, movimientos
}

func TestPrecioFinal(t *testing.T) {
	tests := []struct {
		precio    string
		descuento string
		esperado  string
	}{
		{"100", "0", "100"},
		{"100", "10", "90"},
		{"200", "10", "180"},
		{"999.99", "50", "500.00"},
		{"100", "100", "0.00"},
		{"33.33", "15", "28.33"},
	}

	for _, tt := range tests {
		got := precioFinal(d(tt.precio), d(tt.descuento))
		assert.True(t, d(tt.esperado).Equal(got), "precio %s desc %s: esperado %s, obtenido %s",
			tt.precio, tt.descuento, tt.esperado, got)
	}
}

func TestCrearProductoCalculaPrecioFinal(t *testing.T) {
	svc, _, _, _ := buildProductoSvc()

	desc := d("25")
	stock := 10
	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CodigoBarras:   "7791234567890",
		NombreProducto: "Galletitas surtidas",
		PrecioVenta:    d("400"),
		Descuento:      &desc,
		StockActual:    &stock,
	}, "admin")
	require.NoError(t, err)

	assert.True(t, d("300").Equal(resp.PrecioFinal), "precio_final: %s", resp.PrecioFinal)
	assert.Equal(t, 10, resp.StockActual)
	assert.True(t, resp.Activo)
}

func TestCrearProductoCodigoDuplicado(t *testing.T) {
	svc, productos, _, _ := buildProductoSvc()
	productos.add(&model.Producto{CodigoBarras: "7791111111111", NombreProducto: "Existente", Activo: true})

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CodigoBarras:   "7791111111111",
		NombreProducto: "Otro",
		PrecioVenta:    d("100"),
	}, "admin")
	assert.ErrorIs(t, err, ErrCodigoBarrasDuplicado)
}

func TestCrearProductoDescuentoInvalido(t *testing.T) {
	svc, _, _, _ := buildProductoSvc()

	desc := d("150")
	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CodigoBarras:   "7792222222222",
		NombreProducto: "Con descuento raro",
		PrecioVenta:    d("100"),
		Descuento:      &desc,
	}, "admin")
	assert.ErrorIs(t, err, ErrDescuentoInvalido)
}

func TestActualizarProductoRegistraHistorialDePrecio(t *testing.T) {
	svc, _, historial, _ := buildProductoSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CodigoBarras:   "7793333333333",
		NombreProducto: "Jabon",
		PrecioVenta:    d("250"),
	}, "admin")
	require.NoError(t, err)
	require.Empty(t, historial.historial)

	_, err = svc.Actualizar(context.Background(), resp.ID, dto.ActualizarProductoRequest{
		CodigoBarras:   "7793333333333",
		NombreProducto: "Jabon",
		PrecioVenta:    d("300"),
	}, "gerente1")
	require.NoError(t, err)

	require.Len(t, historial.historial, 1)
	h := historial.historial[0]
	assert.True(t, d("250").Equal(h.PrecioAnterior))
	assert.True(t, d("300").Equal(h.PrecioNuevo))
	assert.Equal(t, "gerente1", h.Usuario)
}

func TestActualizarProductoSinCambioDePrecioNoRegistraHistorial(t *testing.T) {
	svc, _, historial, _ := buildProductoSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CodigoBarras:   "7794444444444",
		NombreProducto: "Esponja",
		PrecioVenta:    d("120"),
	}, "admin")
	require.NoError(t, err)

	_, err = svc.Actualizar(context.Background(), resp.ID, dto.ActualizarProductoRequest{
		CodigoBarras:   "7794444444444",
		NombreProducto: "Esponja doble uso",
		PrecioVenta:    d("120"),
	}, "admin")
	require.NoError(t, err)

	assert.Empty(t, historial.historial)
}

func TestAjustarStockRegistraMovimiento(t *testing.T) {
	svc, productos, _, movimientos := buildProductoSvc()
	productos.add(&model.Producto{CodigoBarras: "7795555555555", NombreProducto: "Detergente", StockActual: 12, Activo: true})

	resp, err := svc.AjustarStock(context.Background(), 1, dto.AjusteStockRequest{
		Cantidad: -3,
		Motivo:   "rotura en deposito",
	})
	require.NoError(t, err)

	assert.Equal(t, 9, resp.StockActual)
	assert.Equal(t, 9, productos.productos["7795555555555"].StockActual)

	require.Len(t, movimientos.movimientos, 1)
	mov := movimientos.movimientos[0]
	assert.Equal(t, "ajuste_manual", mov.Tipo)
	assert.Equal(t, -3, mov.Cantidad)
	assert.Equal(t, 12, mov.StockAnterior)
	assert.Equal(t, 9, mov.StockNuevo)
	assert.Equal(t, "rotura en deposito", mov.Motivo)
}

func TestDesactivarYReactivarProducto(t *testing.T) {
	svc, productos, _, _ := buildProductoSvc()
	productos.add(&model.Producto{CodigoBarras: "7796666666666", NombreProducto: "Velas", Activo: true})

	require.NoError(t, svc.Desactivar(context.Background(), 1))
	assert.False(t, productos.productos["7796666666666"].Activo)

	require.NoError(t, svc.Reactivar(context.Background(), 1))
	assert.True(t, productos.productos["7796666666666"].Activo)
}

func TestDesactivarProductoNoEncontrado(t *testing.T) {
	svc, _, _, _ := buildProductoSvc()

	err := svc.Desactivar(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)
}

func TestStockBajoUsaUmbral(t *testing.T) {
	svc, productos, _, _ := buildProductoSvc()
	productos.add(&model.Producto{CodigoBarras: "A1", NombreProducto: "Poco stock", StockActual: 2, Activo: true})
	productos.add(&model.Producto{CodigoBarras: "A2", NombreProducto: "Stock justo", StockActual: 5, Activo: true})
	productos.add(&model.Producto{CodigoBarras: "A3", NombreProducto: "Stock sobrado", StockActual: 40, Activo: true})

	list, err := svc.StockBajo(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// productoRepoUpdateFalla hace fallar la escritura del producto para verificar
// que no queda registrado un cambio de precio que nunca se aplicó.
type productoRepoUpdateFalla struct {
	*stubProductoRepo
}

func (r *productoRepoUpdateFalla) UpdateTx(_ *gorm.DB, _ *model.Producto) error {
	return errors.New("disco lleno")
}

func TestActualizarProductoFallidoNoDejaHistorial(t *testing.T) {
	productos := &productoRepoUpdateFalla{newStubProductoRepo()}
	historial := &stubHistorialRepo{}
	svc := NewProductoService(productos, historial, &stubMovimientoRepo{}, 5)

	productos.add(&model.Producto{CodigoBarras: "7796666666666", NombreProducto: "Arroz", PrecioVenta: d("200"), Activo: true})

	_, err := svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		CodigoBarras:   "7796666666666",
		NombreProducto: "Arroz",
		PrecioVenta:    d("250"),
	}, "gerente1")
	require.Error(t, err)
	assert.Empty(t, historial.historial)
}

func TestMovimientosRecientes(t *testing.T) {
	svc, productos, _, _ := buildProductoSvc()
	productos.add(&model.Producto{CodigoBarras: "7797777777777", NombreProducto: "Lavandina", StockActual: 10, Activo: true})

	_, err := svc.AjustarStock(context.Background(), 1, dto.AjusteStockRequest{Cantidad: 4, Motivo: "reposicion"})
	require.NoError(t, err)
	_, err = svc.AjustarStock(context.Background(), 1, dto.AjusteStockRequest{Cantidad: -2, Motivo: "rotura"})
	require.NoError(t, err)

	list, err := svc.MovimientosRecientes(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "reposicion", list[0].Motivo)
	assert.Equal(t, "rotura", list[1].Motivo)
}
