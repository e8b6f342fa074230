package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/infra"
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrVentaNoEncontrada   = errors.New("venta no encontrada")
	ErrVentaSinDetalles    = errors.New("la venta debe tener al menos un detalle")
	ErrStockInsuficiente   = errors.New("stock insuficiente para completar la venta")
	ErrDescuentoLineaRango = errors.New("el descuento de línea debe estar entre 0 y 100")
)

// VentaService implements the sales side of the ledger. Mirrors CompraService
// with three differences: stock moves down instead of up, lines carry a
// percentage discount, and the sale may reference a customer.
type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest, usuario string) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) ([]dto.VentaResponse, error)
	ListarPendientes(ctx context.Context) ([]dto.VentaResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarVentaRequest, usuario string) (*dto.VentaResponse, error)
	AgregarPago(ctx context.Context, id int64, req dto.PagoVentaRequest, usuario string) (*dto.VentaResponse, error)
	Eliminar(ctx context.Context, id int64) error
	// TicketPDF renders the receipt for a sale and returns the file path.
	TicketPDF(ctx context.Context, id int64) (string, error)
}

type ventaService struct {
	repo               repository.VentaRepository
	productoRepo       repository.ProductoRepository
	clienteRepo        repository.ClienteRepository
	movimientoRepo     repository.MovimientoStockRepository
	allowNegativeStock bool
	pdfStoragePath     string
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	movimientoRepo repository.MovimientoStockRepository,
	allowNegativeStock bool,
	pdfStoragePath string,
) VentaService {
	return &ventaService{
		repo:               repo,
		productoRepo:       productoRepo,
		clienteRepo:        clienteRepo,
		movimientoRepo:     movimientoRepo,
		allowNegativeStock: allowNegativeStock,
		pdfStoragePath:     pdfStoragePath,
	}
}

// lineaFinal applies the per-line percentage discount to the line total,
// rounded to 2 decimal places.
func lineaFinal(total, descuento decimal.Decimal) decimal.Decimal {
	if descuento.IsZero() {
		return total
	}
	return total.Mul(cien.Sub(descuento)).Div(cien).Round(2)
}

// ── Registrar ────────────────────────────────────────────────────────────────

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest, usuario string) (*dto.VentaResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, ErrVentaSinDetalles
	}

	if req.ClienteID != nil {
		if _, err := s.clienteRepo.FindByID(ctx, *req.ClienteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClienteNoEncontrado
			}
			return nil, err
		}
	}

	fecha, err := parseFecha(req.FechaVenta)
	if err != nil {
		return nil, fmt.Errorf("fecha_venta inválida: %w", err)
	}

	var ventaID int64
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		id, err := s.repo.NextID(tx)
		if err != nil {
			return err
		}
		ventaID = id

		venta := &model.Venta{
			ID:              id,
			ClienteID:       req.ClienteID,
			FechaVenta:      fecha,
			Facturacion:     "No especificado",
			Observaciones:   req.Observaciones,
			TotalPagado:     decimal.Zero,
			TotalDeuda:      decimal.Zero,
			EstadoPago:      model.VentaPendiente,
			FechaRegistro:   time.Now(),
			UsuarioRegistro: usuario,
		}
		if req.Facturacion != nil && *req.Facturacion != "" {
			venta.Facturacion = *req.Facturacion
		}
		if err := s.repo.CreateTx(tx, venta); err != nil {
			return err
		}

		for _, d := range req.Detalles {
			descuento := decimal.Zero
			if d.Descuento != nil {
				descuento = *d.Descuento
			}
			if descuento.Sign() < 0 || descuento.GreaterThan(cien) {
				return ErrDescuentoLineaRango
			}

			detalleID, err := s.repo.NextDetalleID(tx)
			if err != nil {
				return err
			}
			total := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Unidades)))
			detalle := &model.DetalleVenta{
				ID:               detalleID,
				VentaID:          id,
				CodigoBarras:     d.CodigoBarras,
				NombreProducto:   d.NombreProducto,
				ClienteID:        req.ClienteID,
				UnidadesVendidas: d.Unidades,
				PrecioUnitario:   d.PrecioUnitario,
				PrecioTotal:      total,
				Descuento:        descuento,
				PrecioTotalFinal: lineaFinal(total, descuento),
			}
			if err := s.repo.CreateDetalleTx(tx, detalle); err != nil {
				return err
			}

			if err := s.descontarStock(tx, d.CodigoBarras, d.Unidades, id); err != nil {
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

	return s.ObtenerPorID(ctx, ventaID)
}

// descontarStock decrements stock for the product matching barcode. Unmatched
// barcodes are a no-op, same as on the purchase side. When negative stock is
// disallowed the whole sale aborts rather than committing a partial one.
func (s *ventaService) descontarStock(tx *gorm.DB, barcode string, unidades int, ventaID int64) error {
	p, err := s.productoRepo.FindByBarcodeTx(tx, barcode)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if !s.allowNegativeStock && p.StockActual < unidades {
		return fmt.Errorf("%w: %s (stock %d, pedido %d)", ErrStockInsuficiente, p.NombreProducto, p.StockActual, unidades)
	}
	if err := s.productoRepo.AjustarStockTx(tx, p.ID, -unidades); err != nil {
		return err
	}
	mov := &model.MovimientoStock{
		ProductoID:    p.ID,
		Tipo:          "venta",
		Cantidad:      -unidades,
		StockAnterior: p.StockActual,
		StockNuevo:    p.StockActual - unidades,
		Motivo:        fmt.Sprintf("venta #%d", ventaID),
		ReferenciaID:  &ventaID,
	}
	return s.movimientoRepo.CreateTx(tx, mov)
}

func (s *ventaService) crearPagoTx(tx *gorm.DB, ventaID int64, p dto.PagoVentaRequest) error {
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
	pago := &model.PagoVenta{
		ID:            pagoID,
		VentaID:       ventaID,
		TipoPago:      p.TipoPago,
		MontoPago:     p.MontoPago,
		FechaPago:     fechaPago,
		Observaciones: p.Observaciones,
	}
	return s.repo.CreatePagoTx(tx, pago)
}

func (s *ventaService) recomputarTotalesTx(tx *gorm.DB, ventaID int64) error {
	total, err := s.repo.SumDetallesTx(tx, ventaID)
	if err != nil {
		return err
	}
	pagado, err := s.repo.SumPagosTx(tx, ventaID)
	if err != nil {
		return err
	}
	deuda, estado := derivarEstadoPago(total, pagado, ventaEstados)
	return s.repo.UpdateTotalesTx(tx, ventaID, pagado, deuda, estado)
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *ventaService) ObtenerPorID(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}
	return ventaToResponse(v), nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) ([]dto.VentaResponse, error) {
	var (
		list []model.Venta
		err  error
	)
	switch {
	case filter.Fecha != "":
		desde, perr := time.Parse("2006-01-02", filter.Fecha)
		if perr != nil {
			return nil, fmt.Errorf("fecha inválida: %w", perr)
		}
		list, err = s.repo.ListByFecha(ctx, desde, desde.AddDate(0, 0, 1))
	case filter.ClienteID > 0:
		list, err = s.repo.ListByCliente(ctx, filter.ClienteID)
	default:
		list, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]dto.VentaResponse, 0, len(list))
	for i := range list {
		if filter.Estado != "" && list[i].EstadoPago != filter.Estado {
			continue
		}
		result = append(result, *ventaToResponse(&list[i]))
	}
	return result, nil
}

func (s *ventaService) ListarPendientes(ctx context.Context) ([]dto.VentaResponse, error) {
	list, err := s.repo.ListPendientes(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VentaResponse, 0, len(list))
	for i := range list {
		result = append(result, *ventaToResponse(&list[i]))
	}
	return result, nil
}

// ── Actualizar ───────────────────────────────────────────────────────────────

func (s *ventaService) Actualizar(ctx context.Context, id int64, req dto.ActualizarVentaRequest, usuario string) (*dto.VentaResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}

	if req.ClienteID != nil {
		if _, err := s.clienteRepo.FindByID(ctx, *req.ClienteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClienteNoEncontrado
			}
			return nil, err
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		fields := map[string]any{
			"fecha_actualizacion":   time.Now(),
			"usuario_actualizacion": usuario,
		}
		if req.ClienteID != nil {
			fields["cliente_id"] = *req.ClienteID
		}
		if req.FechaVenta != nil {
			fecha, err := time.Parse("2006-01-02", *req.FechaVenta)
			if err != nil {
				return fmt.Errorf("fecha_venta inválida: %w", err)
			}
			fields["fecha_venta"] = fecha
		}
		if req.Facturacion != nil {
			fields["facturacion"] = *req.Facturacion
		}
		if req.Observaciones != nil {
			fields["observaciones"] = *req.Observaciones
		}
		if err := s.repo.UpdateHeaderTx(tx, id, fields); err != nil {
			return err
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

func (s *ventaService) AgregarPago(ctx context.Context, id int64, req dto.PagoVentaRequest, usuario string) (*dto.VentaResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.crearPagoTx(tx, id, req); err != nil {
			return err
		}
		if err := s.repo.UpdateHeaderTx(tx, id, map[string]any{
			"fecha_actualizacion":   time.Now(),
			"usuario_actualizacion": usuario,
		}); err != nil {
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
// Restores the stock sold, then deletes payments, details and the header in
// one transaction.

func (s *ventaService) Eliminar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVentaNoEncontrada
		}
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Same rule as on the purchase side: reverse exactly the detail rows
		// that are about to be deleted, read under the same transaction.
		detalles, err := s.repo.DetallesTx(tx, id)
		if err != nil {
			return err
		}
		for _, d := range detalles {
			if err := s.restaurarStock(tx, d.CodigoBarras, d.UnidadesVendidas, id); err != nil {
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

func (s *ventaService) restaurarStock(tx *gorm.DB, barcode string, unidades int, ventaID int64) error {
	p, err := s.productoRepo.FindByBarcodeTx(tx, barcode)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if err := s.productoRepo.AjustarStockTx(tx, p.ID, unidades); err != nil {
		return err
	}
	mov := &model.MovimientoStock{
		ProductoID:    p.ID,
		Tipo:          "eliminacion_venta",
		Cantidad:      unidades,
		StockAnterior: p.StockActual,
		StockNuevo:    p.StockActual + unidades,
		Motivo:        fmt.Sprintf("eliminacion_venta #%d", ventaID),
		ReferenciaID:  &ventaID,
	}
	return s.movimientoRepo.CreateTx(tx, mov)
}

// TicketPDF renders the receipt for a sale using the stored snapshots.
func (s *ventaService) TicketPDF(ctx context.Context, id int64) (string, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrVentaNoEncontrada
		}
		return "", err
	}
	return infra.GenerateTicketPDF(v, s.pdfStoragePath)
}

// ── Mapping ─────────────────────────────────────────────────────────────────

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	totalVenta := decimal.Zero
	for _, d := range v.Detalles {
		totalVenta = totalVenta.Add(d.PrecioTotalFinal)
		detalles = append(detalles, dto.DetalleVentaResponse{
			ID:               d.ID,
			CodigoBarras:     d.CodigoBarras,
			NombreProducto:   d.NombreProducto,
			Unidades:         d.UnidadesVendidas,
			PrecioUnitario:   d.PrecioUnitario,
			PrecioTotal:      d.PrecioTotal,
			Descuento:        d.Descuento,
			PrecioTotalFinal: d.PrecioTotalFinal,
		})
	}
	pagos := make([]dto.PagoVentaResponse, 0, len(v.Pagos))
	for _, p := range v.Pagos {
		pagos = append(pagos, dto.PagoVentaResponse{
			ID:            p.ID,
			TipoPago:      p.TipoPago,
			MontoPago:     p.MontoPago,
			FechaPago:     p.FechaPago.Format("2006-01-02"),
			Observaciones: p.Observaciones,
		})
	}

	resp := &dto.VentaResponse{
		ID:              v.ID,
		ClienteID:       v.ClienteID,
		FechaVenta:      v.FechaVenta.Format("2006-01-02"),
		Facturacion:     v.Facturacion,
		Observaciones:   v.Observaciones,
		TotalVenta:      totalVenta,
		TotalPagado:     v.TotalPagado,
		TotalDeuda:      v.TotalDeuda,
		EstadoPago:      v.EstadoPago,
		UsuarioRegistro: v.UsuarioRegistro,
		Detalles:        detalles,
		Pagos:           pagos,
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.NombreCliente
	}
	if v.FechaActualizacion != nil {
		f := v.FechaActualizacion.Format(time.RFC3339)
		resp.FechaActualizacion = &f
	}
	resp.UsuarioActualizacion = v.UsuarioActualizacion
	return resp
}
