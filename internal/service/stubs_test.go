package service

import (
	"context"
	"errors"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. Services run their transaction closures with a
// nil *gorm.DB (see runTx), so every *Tx method here simply ignores the handle.

// ── stubProductoRepo ──────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[string]*model.Producto // keyed by barcode
	nextID    int64
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[string]*model.Producto), nextID: 1}
}

func (r *stubProductoRepo) add(p *model.Producto) {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.productos[p.CodigoBarras] = p
}

func (r *stubProductoRepo) byID(id int64) *model.Producto {
	for _, p := range r.productos {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.add(p)
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id int64) (*model.Producto, error) {
	if p := r.byID(id); p != nil {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) FindByBarcode(_ context.Context, barcode string) (*model.Producto, error) {
	if p, ok := r.productos[barcode]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) List(_ context.Context, _ string) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Search(_ context.Context, _ string) ([]model.Producto, error) {
	return nil, nil
}

func (r *stubProductoRepo) LowStock(_ context.Context, threshold int) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.StockActual <= threshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.CodigoBarras] = p
	return nil
}

func (r *stubProductoRepo) SetEstado(_ context.Context, id int64, activo bool) error {
	if p := r.byID(id); p != nil {
		p.Activo = activo
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) ExistsBarcode(_ context.Context, barcode string, excludeID int64) (bool, error) {
	p, ok := r.productos[barcode]
	return ok && p.ID != excludeID, nil
}

func (r *stubProductoRepo) CountByCategoria(_ context.Context, categoriaID int64) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.CategoriaID != nil && *p.CategoriaID == categoriaID {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) CountByMarca(_ context.Context, marcaID int64) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.MarcaID != nil && *p.MarcaID == marcaID {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) FindByBarcodeTx(_ *gorm.DB, barcode string) (*model.Producto, error) {
	if p, ok := r.productos[barcode]; ok {
		copia := *p
		return &copia, nil
	}
	return nil, nil
}

func (r *stubProductoRepo) AjustarStockTx(_ *gorm.DB, id int64, delta int) error {
	if p := r.byID(id); p != nil {
		p.StockActual += delta
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) UpdateTx(_ *gorm.DB, p *model.Producto) error {
	r.productos[p.CodigoBarras] = p
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── stubMovimientoRepo ────────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	m.ID = int64(len(r.movimientos) + 1)
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) ListByProducto(_ context.Context, productoID int64, _ int) ([]model.MovimientoStock, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMovimientoRepo) ListRecientes(_ context.Context, _ int) ([]model.MovimientoStock, error) {
	return r.movimientos, nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

// ── stubHistorialRepo ─────────────────────────────────────────────────────────

type stubHistorialRepo struct {
	historial []model.HistorialPrecio
}

func (r *stubHistorialRepo) CreateTx(_ *gorm.DB, h *model.HistorialPrecio) error {
	h.ID = int64(len(r.historial) + 1)
	r.historial = append(r.historial, *h)
	return nil
}

func (r *stubHistorialRepo) ListByProducto(_ context.Context, productoID int64, _ int) ([]model.HistorialPrecio, error) {
	var out []model.HistorialPrecio
	for _, h := range r.historial {
		if h.ProductoID == productoID {
			out = append(out, h)
		}
	}
	return out, nil
}

var _ repository.HistorialPrecioRepository = (*stubHistorialRepo)(nil)

// ── stubCompraRepo ────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras  map[int64]*model.Compra
	detalles map[int64][]model.DetalleCompra
	pagos    map[int64][]model.PagoCompra
	seq      int64
	detSeq   int64
	pagoSeq  int64
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{
		compras:  make(map[int64]*model.Compra),
		detalles: make(map[int64][]model.DetalleCompra),
		pagos:    make(map[int64][]model.PagoCompra),
	}
}

func (r *stubCompraRepo) NextID(_ *gorm.DB) (int64, error)        { r.seq++; return r.seq, nil }
func (r *stubCompraRepo) NextDetalleID(_ *gorm.DB) (int64, error) { r.detSeq++; return r.detSeq, nil }
func (r *stubCompraRepo) NextPagoID(_ *gorm.DB) (int64, error)    { r.pagoSeq++; return r.pagoSeq, nil }

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) CreateDetalleTx(_ *gorm.DB, d *model.DetalleCompra) error {
	r.detalles[d.CompraID] = append(r.detalles[d.CompraID], *d)
	return nil
}

func (r *stubCompraRepo) CreatePagoTx(_ *gorm.DB, p *model.PagoCompra) error {
	if p.TipoPago == "" {
		return errors.New("CHECK constraint failed: tipo_pago")
	}
	r.pagos[p.CompraID] = append(r.pagos[p.CompraID], *p)
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id int64) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	copia.Detalles = r.detalles[id]
	copia.Pagos = r.pagos[id]
	return &copia, nil
}

func (r *stubCompraRepo) List(_ context.Context) ([]model.Compra, error) {
	var out []model.Compra
	for id := range r.compras {
		c, _ := r.FindByID(context.Background(), id)
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompraRepo) ListByProveedor(_ context.Context, proveedorID int64) ([]model.Compra, error) {
	var out []model.Compra
	for id := range r.compras {
		for _, d := range r.detalles[id] {
			if d.ProveedorID == proveedorID {
				c, _ := r.FindByID(context.Background(), id)
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (r *stubCompraRepo) ListPendientes(_ context.Context) ([]model.Compra, error) {
	var out []model.Compra
	for id, c := range r.compras {
		if c.EstadoPago != model.CompraPagado {
			copia, _ := r.FindByID(context.Background(), id)
			out = append(out, *copia)
		}
	}
	return out, nil
}

func (r *stubCompraRepo) SumDetallesTx(_ *gorm.DB, compraID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, d := range r.detalles[compraID] {
		sum = sum.Add(d.PrecioTotal)
	}
	return sum, nil
}

func (r *stubCompraRepo) SumPagosTx(_ *gorm.DB, compraID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.pagos[compraID] {
		sum = sum.Add(p.MontoPago)
	}
	return sum, nil
}

func (r *stubCompraRepo) DetallesTx(_ *gorm.DB, compraID int64) ([]model.DetalleCompra, error) {
	return r.detalles[compraID], nil
}

func (r *stubCompraRepo) UpdateHeaderTx(_ *gorm.DB, id int64, fields map[string]any) error {
	c, ok := r.compras[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["fecha_compra"]; ok {
		c.FechaCompra = v.(time.Time)
	}
	if v, ok := fields["facturacion"]; ok {
		c.Facturacion = v.(string)
	}
	if v, ok := fields["observaciones"]; ok {
		obs := v.(string)
		c.Observaciones = &obs
	}
	return nil
}

func (r *stubCompraRepo) UpdateTotalesTx(_ *gorm.DB, id int64, pagado, deuda decimal.Decimal, estado string) error {
	c, ok := r.compras[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.TotalPagado = pagado
	c.TotalDeuda = deuda
	c.EstadoPago = estado
	return nil
}

func (r *stubCompraRepo) DeletePagosTx(_ *gorm.DB, compraID int64) error {
	delete(r.pagos, compraID)
	return nil
}

func (r *stubCompraRepo) DeleteDetallesTx(_ *gorm.DB, compraID int64) error {
	delete(r.detalles, compraID)
	return nil
}

func (r *stubCompraRepo) DeleteTx(_ *gorm.DB, id int64) error {
	delete(r.compras, id)
	return nil
}

func (r *stubCompraRepo) CountByProveedor(_ context.Context, proveedorID int64) (int64, error) {
	var n int64
	for _, dets := range r.detalles {
		for _, d := range dets {
			if d.ProveedorID == proveedorID {
				n++
			}
		}
	}
	return n, nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

// ── stubVentaRepo ─────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas   map[int64]*model.Venta
	detalles map[int64][]model.DetalleVenta
	pagos    map[int64][]model.PagoVenta
	seq      int64
	detSeq   int64
	pagoSeq  int64
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{
		ventas:   make(map[int64]*model.Venta),
		detalles: make(map[int64][]model.DetalleVenta),
		pagos:    make(map[int64][]model.PagoVenta),
	}
}

func (r *stubVentaRepo) NextID(_ *gorm.DB) (int64, error)        { r.seq++; return r.seq, nil }
func (r *stubVentaRepo) NextDetalleID(_ *gorm.DB) (int64, error) { r.detSeq++; return r.detSeq, nil }
func (r *stubVentaRepo) NextPagoID(_ *gorm.DB) (int64, error)    { r.pagoSeq++; return r.pagoSeq, nil }

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) CreateDetalleTx(_ *gorm.DB, d *model.DetalleVenta) error {
	r.detalles[d.VentaID] = append(r.detalles[d.VentaID], *d)
	return nil
}

func (r *stubVentaRepo) CreatePagoTx(_ *gorm.DB, p *model.PagoVenta) error {
	if p.TipoPago == "" {
		return errors.New("CHECK constraint failed: tipo_pago")
	}
	r.pagos[p.VentaID] = append(r.pagos[p.VentaID], *p)
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id int64) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *v
	copia.Detalles = r.detalles[id]
	copia.Pagos = r.pagos[id]
	return &copia, nil
}

func (r *stubVentaRepo) List(_ context.Context) ([]model.Venta, error) {
	var out []model.Venta
	for id := range r.ventas {
		v, _ := r.FindByID(context.Background(), id)
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) ListByCliente(_ context.Context, clienteID int64) ([]model.Venta, error) {
	var out []model.Venta
	for id, v := range r.ventas {
		if v.ClienteID != nil && *v.ClienteID == clienteID {
			copia, _ := r.FindByID(context.Background(), id)
			out = append(out, *copia)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) ListByFecha(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for id, v := range r.ventas {
		if !v.FechaVenta.Before(desde) && v.FechaVenta.Before(hasta) {
			copia, _ := r.FindByID(context.Background(), id)
			out = append(out, *copia)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) ListPendientes(_ context.Context) ([]model.Venta, error) {
	var out []model.Venta
	for id, v := range r.ventas {
		if v.EstadoPago != model.VentaPagado {
			copia, _ := r.FindByID(context.Background(), id)
			out = append(out, *copia)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) SumDetallesTx(_ *gorm.DB, ventaID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, d := range r.detalles[ventaID] {
		sum = sum.Add(d.PrecioTotalFinal)
	}
	return sum, nil
}

func (r *stubVentaRepo) SumPagosTx(_ *gorm.DB, ventaID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.pagos[ventaID] {
		sum = sum.Add(p.MontoPago)
	}
	return sum, nil
}

func (r *stubVentaRepo) DetallesTx(_ *gorm.DB, ventaID int64) ([]model.DetalleVenta, error) {
	return r.detalles[ventaID], nil
}

func (r *stubVentaRepo) UpdateHeaderTx(_ *gorm.DB, id int64, fields map[string]any) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if raw, ok := fields["cliente_id"]; ok {
		cid := raw.(int64)
		v.ClienteID = &cid
	}
	if raw, ok := fields["fecha_venta"]; ok {
		v.FechaVenta = raw.(time.Time)
	}
	if raw, ok := fields["facturacion"]; ok {
		v.Facturacion = raw.(string)
	}
	if raw, ok := fields["observaciones"]; ok {
		obs := raw.(string)
		v.Observaciones = &obs
	}
	if raw, ok := fields["fecha_actualizacion"]; ok {
		f := raw.(time.Time)
		v.FechaActualizacion = &f
	}
	if raw, ok := fields["usuario_actualizacion"]; ok {
		u := raw.(string)
		v.UsuarioActualizacion = &u
	}
	return nil
}

func (r *stubVentaRepo) UpdateTotalesTx(_ *gorm.DB, id int64, pagado, deuda decimal.Decimal, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.TotalPagado = pagado
	v.TotalDeuda = deuda
	v.EstadoPago = estado
	return nil
}

func (r *stubVentaRepo) DeletePagosTx(_ *gorm.DB, ventaID int64) error {
	delete(r.pagos, ventaID)
	return nil
}

func (r *stubVentaRepo) DeleteDetallesTx(_ *gorm.DB, ventaID int64) error {
	delete(r.detalles, ventaID)
	return nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, id int64) error {
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) CountByCliente(_ context.Context, clienteID int64) (int64, error) {
	var n int64
	for _, v := range r.ventas {
		if v.ClienteID != nil && *v.ClienteID == clienteID {
			n++
		}
	}
	return n, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── stubCategoriaRepo ─────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[int64]*model.Categoria
	nextID     int64
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[int64]*model.Categoria), nextID: 1}
}

func (r *stubCategoriaRepo) add(c *model.Categoria) {
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	r.categorias[c.ID] = c
}

func (r *stubCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	r.add(c)
	return nil
}

func (r *stubCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id int64) (*model.Categoria, error) {
	if c, ok := r.categorias[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) FindByNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.NombreCategoria == nombre {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Update(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Delete(_ context.Context, id int64) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubCategoriaRepo) DB() *gorm.DB { return nil }

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── stubMarcaRepo ─────────────────────────────────────────────────────────────

type stubMarcaRepo struct {
	marcas map[int64]*model.Marca
	nextID int64
}

func newStubMarcaRepo() *stubMarcaRepo {
	return &stubMarcaRepo{marcas: make(map[int64]*model.Marca), nextID: 1}
}

func (r *stubMarcaRepo) add(m *model.Marca) {
	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	r.marcas[m.ID] = m
}

func (r *stubMarcaRepo) Create(_ context.Context, m *model.Marca) error {
	r.add(m)
	return nil
}

func (r *stubMarcaRepo) List(_ context.Context) ([]model.Marca, error) {
	var out []model.Marca
	for _, m := range r.marcas {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMarcaRepo) ListByCategoria(_ context.Context, categoriaID int64) ([]model.Marca, error) {
	var out []model.Marca
	for _, m := range r.marcas {
		if m.CategoriaID == categoriaID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMarcaRepo) FindByID(_ context.Context, id int64) (*model.Marca, error) {
	if m, ok := r.marcas[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMarcaRepo) ExistsNombreEnCategoria(_ context.Context, nombre string, categoriaID, excludeID int64) (bool, error) {
	for _, m := range r.marcas {
		if m.NombreMarca == nombre && m.CategoriaID == categoriaID && m.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubMarcaRepo) CountByCategoria(_ context.Context, categoriaID int64) (int64, error) {
	var n int64
	for _, m := range r.marcas {
		if m.CategoriaID == categoriaID {
			n++
		}
	}
	return n, nil
}

func (r *stubMarcaRepo) Update(_ context.Context, m *model.Marca) error {
	r.marcas[m.ID] = m
	return nil
}

func (r *stubMarcaRepo) Delete(_ context.Context, id int64) error {
	delete(r.marcas, id)
	return nil
}

var _ repository.MarcaRepository = (*stubMarcaRepo)(nil)

// ── stubProveedorRepo ─────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[int64]*model.Proveedor
	nextID      int64
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[int64]*model.Proveedor), nextID: 1}
}

func (r *stubProveedorRepo) add(p *model.Proveedor) {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.proveedores[p.ID] = p
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	r.add(p)
	return nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) Search(_ context.Context, _ string) ([]model.Proveedor, error) {
	return nil, nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id int64) (*model.Proveedor, error) {
	if p, ok := r.proveedores[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProveedorRepo) ExistsNombre(_ context.Context, nombre string, excludeID int64) (bool, error) {
	for _, p := range r.proveedores {
		if p.NombreProveedor == nombre && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Delete(_ context.Context, id int64) error {
	delete(r.proveedores, id)
	return nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── stubClienteRepo ───────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[int64]*model.Cliente
	nextID   int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[int64]*model.Cliente), nextID: 1}
}

func (r *stubClienteRepo) add(c *model.Cliente) {
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	r.clientes[c.ID] = c
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.add(c)
	return nil
}

func (r *stubClienteRepo) List(_ context.Context, _ string) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Search(_ context.Context, _ string) ([]model.Cliente, error) {
	return nil, nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id int64) (*model.Cliente, error) {
	if c, ok := r.clientes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) ExistsNombre(_ context.Context, nombre string, excludeID int64) (bool, error) {
	for _, c := range r.clientes {
		if c.NombreCliente == nombre && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) SetEstado(_ context.Context, id int64, activo bool) error {
	if c, ok := r.clientes[id]; ok {
		c.Activo = activo
		return nil
	}
	return gorm.ErrRecordNotFound
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── stubUsuarioRepo ───────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[int64]*model.Usuario
	nextID   int64
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[int64]*model.Usuario), nextID: 1}
}

func (r *stubUsuarioRepo) add(u *model.Usuario) {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	r.usuarios[u.ID] = u
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.add(u)
	return nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id int64) (*model.Usuario, error) {
	if u, ok := r.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByNombre(_ context.Context, nombre string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.NombreUsuario == nombre {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUsuarioRepo) ExistsNombre(_ context.Context, nombre string, excludeID int64) (bool, error) {
	for _, u := range r.usuarios {
		if u.NombreUsuario == nombre && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id int64) error {
	delete(r.usuarios, id)
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)
