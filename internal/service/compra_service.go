package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCompraNoEncontrada = errors.New("compra no encontrada")
	ErrCompraSinDetalles  = errors.New("la compra debe tener al menos un detalle")

	// ErrMontoPagoInvalido covers both sides of the ledger: a payment of zero
	// or less would corrupt the derived deuda, so it is rejected before any row
	// is written.
	ErrMontoPagoInvalido = errors.New("el monto del pago debe ser mayor a cero")
)

// CompraService implements the purchase side of the ledger. Every mutation
// runs inside a single transaction: header, details, payments, stock deltas
// and the derived totals commit together or not at all.
type CompraService interface {
	Registrar(ctx context.Context, req dto.RegistrarCompraRequest, usuario string) (*dto.CompraResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.CompraResponse, error)
	Listar(ctx context.Context) ([]dto.CompraResponse, error)
	ListarPorProveedor(ctx context.Context, proveedorID int64) ([]dto.CompraResponse, error)
	ListarPendientes(ctx context.Context) ([]dto.CompraResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error)
	AgregarPago(ctx context.Context, id int64, req dto.PagoCompraRequest) (*dto.CompraResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type compraService struct {
	repo           repository.CompraRepository
	productoRepo   repository.ProductoRepository
	movimientoRepo repository.MovimientoStockRepository
}

func NewCompraService(
	repo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	movimientoRepo repository.MovimientoStockRepository,
) CompraService {
	return &compraService{repo: repo, productoRepo: productoRepo, movimientoRepo: movimientoRepo}
}

// parseFecha interprets a YYYY-MM-DD date, defaulting to now when absent.
func parseFecha(s *string) (time.Time, error) {
	if s == nil || *s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", *s)
}

// ── Registrar ────────────────────────────────────────────────────────────────
// One atomic unit: allocate compra id, insert header, details and payments,
// apply stock increments by barcode, then derive totals and estado from
// the rows actually written.

func (s *compraService) Registrar(ctx context.Context, req dto.RegistrarCompraRequest, usuario string) (*dto.CompraResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, ErrCompraSinDetalles
	}

	fecha, err := parseFecha(req.FechaCompra)
	if err != nil {
		return nil, fmt.Errorf("fecha_compra inválida: %w", err)
	}

	var compraID int64
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		id, err := s.repo.NextID(tx)
		if err != nil {
			return err
		}
		compraID = id

		compra := &model.Compra{
			ID:              id,
			FechaCompra:     fecha,
			Facturacion:     "No especificado",
			Observaciones:   req.Observaciones,
			TotalPagado:     decimal.Zero,
			TotalDeuda:      decimal.Zero,
			EstadoPago:      model.CompraPendiente,
			UsuarioRegistro: usuario,
		}
		if req.Facturacion != nil && *req.Facturacion != "" {
			compra.Facturacion = *req.Facturacion
		}
		if err := s.repo.CreateTx(tx, compra); err != nil {
			return err
		}

		for _, d := range req.Detalles {
			detalleID, err := s.repo.NextDetalleID(tx)
			if err != nil {
				return err
			}
			total := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Unidades)))
			detalle := &model.DetalleCompra{
				ID:                detalleID,
				CompraID:          id,
				CodigoBarras:      d.CodigoBarras,
				NombreProducto:    d.NombreProducto,
				ProveedorID:       d.ProveedorID,
				UnidadesCompradas: d.Unidades,
				PrecioUnitario:    d.PrecioUnitario,
				PrecioTotal:       total,
			}
			if err := s.repo.CreateDetalleTx(tx, detalle); err != nil {
				return err
			}

			if err := s.aplicarStock(tx, d.CodigoBarras, d.Unidades, "compra", id); err != nil {
				return err
			}
		}

		for _, p := range req.Pagos {
			if err := s.crearPagoTx(tx, id, p); err != nil {
				return err
			}
		}

		return s.recomputarTotalesTx(tx, id)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.ObtenerPorID(ctx, compraID)
}

// aplicarStock adjusts stock for the product matching barcode and records the
// movement. A barcode with no catalog row is a silent no-op: the ledger keeps
// the detail as written, it just has nothing to adjust.
func (s *compraService) aplicarStock(tx *gorm.DB, barcode string, delta int, tipo string, refID int64) error {
	p, err := s.productoRepo.FindByBarcodeTx(tx, barcode)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if err := s.productoRepo.AjustarStockTx(tx, p.ID, delta); err != nil {
		return err
	}
	mov := &model.MovimientoStock{
		ProductoID:    p.ID,
		Tipo:          tipo,
		Cantidad:      delta,
		StockAnterior: p.StockActual,
		StockNuevo:    p.StockActual + delta,
		Motivo:        fmt.Sprintf("%s #%d", tipo, refID),
		ReferenciaID:  &refID,
	}
	return s.movimientoRepo.CreateTx(tx, mov)
}

func (s *compraService) crearPagoTx(tx *gorm.DB, compraID int64, p dto.PagoCompraRequest) error {
	if !p.MontoPago.IsPositive() {
		return ErrMontoPagoInvalido
	}
	pagoID, err := s.repo.NextPagoID(tx)
	if err != nil {
		return err
	}
	fechaPago, err := parseFecha(p.FechaPago)
	if err != nil {
		return fmt.Errorf("fecha_pago inválida: %w", err)
	}
	pago := &model.PagoCompra{
		ID:            pagoID,
		CompraID:      compraID,
		TipoPago:      p.TipoPago,
		MontoPago:     p.MontoPago,
		FechaPago:     fechaPago,
		Observaciones: p.Observaciones,
	}
	return s.repo.CreatePagoTx(tx, pago)
}

// recomputarTotalesTx re-derives total_pagado, total_deuda and estado_pago
// from the detail and payment rows. Always a full recomputation.
func (s *compraService) recomputarTotalesTx(tx *gorm.DB, compraID int64) error {
	total, err := s.repo.SumDetallesTx(tx, compraID)
	if err != nil {
		return err
	}
	pagado, err := s.repo.SumPagosTx(tx, compraID)
	if err != nil {
		return err
	}
	deuda, estado := derivarEstadoPago(total, pagado, compraEstados)
	return s.repo.UpdateTotalesTx(tx, compraID, pagado, deuda, estado)
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *compraService) ObtenerPorID(ctx context.Context, id int64) (*dto.CompraResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompraNoEncontrada
		}
		return nil, err
	}
	return compraToResponse(c), nil
}

func (s *compraService) Listar(ctx context.Context) ([]dto.CompraResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return comprasToResponses(list), nil
}

func (s *compraService) ListarPorProveedor(ctx context.Context, proveedorID int64) ([]dto.CompraResponse, error) {
	list, err := s.repo.ListByProveedor(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	return comprasToResponses(list), nil
}

func (s *compraService) ListarPendientes(ctx context.Context) ([]dto.CompraResponse, error) {
	list, err := s.repo.ListPendientes(ctx)
	if err != nil {
		return nil, err
	}
	return comprasToResponses(list), nil
}

// ── Actualizar ───────────────────────────────────────────────────────────────
// Header fields may change and new payments may be appended; details are
// immutable. Totals are re-derived inside the same transaction.

func (s *compraService) Actualizar(ctx context.Context, id int64, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompraNoEncontrada
		}
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		fields := map[string]any{}
		if req.FechaCompra != nil {
			fecha, err := time.Parse("2006-01-02", *req.FechaCompra)
			if err != nil {
				return fmt.Errorf("fecha_compra inválida: %w", err)
			}
			fields["fecha_compra"] = fecha
		}
		if req.Facturacion != nil {
			fields["facturacion"] = *req.Facturacion
		}
		if req.Observaciones != nil {
			fields["observaciones"] = *req.Observaciones
		}
		if len(fields) > 0 {
			if err := s.repo.UpdateHeaderTx(tx, id, fields); err != nil {
				return err
			}
		}

		for _, p := range req.NuevosPagos {
			if err := s.crearPagoTx(tx, id, p); err != nil {
				return err
			}
		}

		return s.recomputarTotalesTx(tx, id)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.ObtenerPorID(ctx, id)
}

func (s *compraService) AgregarPago(ctx context.Context, id int64, req dto.PagoCompraRequest) (*dto.CompraResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompraNoEncontrada
		}
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.crearPagoTx(tx, id, req); err != nil {
			return err
		}
		return s.recomputarTotalesTx(tx, id)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.ObtenerPorID(ctx, id)
}

// ── Eliminar ─────────────────────────────────────────────────────────────────
// Reverses the stock increments, then deletes payments, details and the
// header, all in one transaction.

func (s *compraService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompraNoEncontrada
		}
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// The detail rows are re-read inside the transaction so the reversal
		// covers exactly what gets deleted.
		detalles, err := s.repo.DetallesTx(tx, id)
		if err != nil {
			return err
		}
		for _, d := range detalles {
			if err := s.aplicarStock(tx, d.CodigoBarras, -d.UnidadesCompradas, "eliminacion_compra", id); err != nil {
				return err
			}
		}
		if err := s.repo.DeletePagosTx(tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteDetallesTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
}

// ── Mapping ─────────────────────────────────────────────────────────────────

func compraToResponse(c *model.Compra) *dto.CompraResponse {
	detalles := make([]dto.DetalleCompraResponse, 0, len(c.Detalles))
	totalCompra := decimal.Zero
	for _, d := range c.Detalles {
		totalCompra = totalCompra.Add(d.PrecioTotal)
		detalles = append(detalles, dto.DetalleCompraResponse{
			ID:             d.ID,
			CodigoBarras:   d.CodigoBarras,
			NombreProducto: d.NombreProducto,
			ProveedorID:    d.ProveedorID,
			Unidades:       d.UnidadesCompradas,
			PrecioUnitario: d.PrecioUnitario,
			PrecioTotal:    d.PrecioTotal,
		})
	}
	pagos := make([]dto.PagoCompraResponse, 0, len(c.Pagos))
	for _, p := range c.Pagos {
		pagos = append(pagos, dto.PagoCompraResponse{
			ID:            p.ID,
			TipoPago:      p.TipoPago,
			MontoPago:     p.MontoPago,
			FechaPago:     p.FechaPago.Format("2006-01-02"),
			Observaciones: p.Observaciones,
		})
	}
	return &dto.CompraResponse{
		ID:              c.ID,
		FechaCompra:     c.FechaCompra.Format("2006-01-02"),
		Facturacion:     c.Facturacion,
		Observaciones:   c.Observaciones,
		TotalCompra:     totalCompra,
		TotalPagado:     c.TotalPagado,
		TotalDeuda:      c.TotalDeuda,
		EstadoPago:      c.EstadoPago,
		UsuarioRegistro: c.UsuarioRegistro,
		Detalles:        detalles,
		Pagos:           pagos,
	}
}

func comprasToResponses(list []model.Compra) []dto.CompraResponse {
	result := make([]dto.CompraResponse, 0, len(list))
	for i := range list {
		result = append(result, *compraToResponse(&list[i]))
	}
	return result
}
