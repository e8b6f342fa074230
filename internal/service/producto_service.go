package service

import (
	"context"
	"errors"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductoNoEncontrado  = errors.New("producto no encontrado")
	ErrCodigoBarrasDuplicado = errors.New("ya existe un producto con ese código de barras")
	ErrDescuentoInvalido     = errors.New("el descuento debe estar entre 0 y 100")
)

var cien = decimal.NewFromInt(100)

// ProductoService defines business operations for the product catalog.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest, usuario string) (dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.ProductoResponse, error)
	ObtenerPorBarcode(ctx context.Context, barcode string) (dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, error)
	StockBajo(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarProductoRequest, usuario string) (dto.ProductoResponse, error)
	AjustarStock(ctx context.Context, id int64, req dto.AjusteStockRequest) (dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id int64) error
	Reactivar(ctx context.Context, id int64) error
	HistorialPrecios(ctx context.Context, id int64) ([]dto.HistorialPrecioResponse, error)
	Movimientos(ctx context.Context, id int64) ([]dto.MovimientoStockResponse, error)
	MovimientosRecientes(ctx context.Context) ([]dto.MovimientoStockResponse, error)
}

type productoService struct {
	repo           repository.ProductoRepository
	historialRepo  repository.HistorialPrecioRepository
	movimientoRepo repository.MovimientoStockRepository
	lowStockUmbral int
}

func NewProductoService(
	repo repository.ProductoRepository,
	historialRepo repository.HistorialPrecioRepository,
	movimientoRepo repository.MovimientoStockRepository,
	lowStockUmbral int,
) ProductoService {
	return &productoService{
		repo:           repo,
		historialRepo:  historialRepo,
		movimientoRepo: movimientoRepo,
		lowStockUmbral: lowStockUmbral,
	}
}

// precioFinal applies the percentage discount to the list price,
// rounded to 2 decimal places.
func precioFinal(precio, descuento decimal.Decimal) decimal.Decimal {
	if descuento.IsZero() {
		return precio
	}
	factor := cien.Sub(descuento).Div(cien)
	return precio.Mul(factor).Round(2)
}

func mapProducto(p model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:             p.ID,
		CodigoBarras:   p.CodigoBarras,
		NombreProducto: p.NombreProducto,
		CategoriaID:    p.CategoriaID,
		MarcaID:        p.MarcaID,
		PrecioVenta:    p.PrecioVenta,
		Descuento:      p.Descuento,
		PrecioFinal:    p.PrecioFinal,
		StockActual:    p.StockActual,
		Activo:         p.Activo,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.NombreCategoria
	}
	if p.Marca != nil {
		resp.Marca = p.Marca.NombreMarca
	}
	if p.FechaFinalDescuento != nil {
		f := p.FechaFinalDescuento.Format("2006-01-02")
		resp.FechaFinalDescuento = &f
	}
	return resp
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest, usuario string) (dto.ProductoResponse, error) {
	dup, err := s.repo.ExistsBarcode(ctx, req.CodigoBarras, 0)
	if err != nil {
		return dto.ProductoResponse{}, err
	}
	if dup {
		return dto.ProductoResponse{}, ErrCodigoBarrasDuplicado
	}

	descuento := decimal.Zero
	if req.Descuento != nil {
		descuento = *req.Descuento
	}
	if descuento.Sign() < 0 || descuento.GreaterThan(cien) {
		return dto.ProductoResponse{}, ErrDescuentoInvalido
	}

	p := &model.Producto{
		CodigoBarras:   req.CodigoBarras,
		NombreProducto: req.NombreProducto,
		CategoriaID:    req.CategoriaID,
		MarcaID:        req.MarcaID,
		PrecioVenta:    req.PrecioVenta,
		Descuento:      descuento,
		PrecioFinal:    precioFinal(req.PrecioVenta, descuento),
		Activo:         true,
	}
	if req.StockActual != nil {
		p.StockActual = *req.StockActual
	}
	if req.FechaFinalDescuento != nil {
		f, err := time.Parse("2006-01-02", *req.FechaFinalDescuento)
		if err != nil {
			return dto.ProductoResponse{}, err
		}
		p.FechaFinalDescuento = &f
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id int64) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrProductoNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*p), nil
}

func (s *productoService) ObtenerPorBarcode(ctx context.Context, barcode string) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrProductoNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, error) {
	var (
		list []model.Producto
		err  error
	)
	if filter.Buscar != "" {
		list, err = s.repo.Search(ctx, filter.Buscar)
	} else {
		list, err = s.repo.List(ctx, filter.Estado)
	}
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProducto(p))
	}
	return result, nil
}

func (s *productoService) StockBajo(ctx context.Context) ([]dto.ProductoResponse, error) {
	list, err := s.repo.LowStock(ctx, s.lowStockUmbral)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProducto(p))
	}
	return result, nil
}

func (s *productoService) Actualizar(ctx context.Context, id int64, req dto.ActualizarProductoRequest, usuario string) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrProductoNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}

	dup, err := s.repo.ExistsBarcode(ctx, req.CodigoBarras, id)
	if err != nil {
		return dto.ProductoResponse{}, err
	}
	if dup {
		return dto.ProductoResponse{}, ErrCodigoBarrasDuplicado
	}

	descuento := decimal.Zero
	if req.Descuento != nil {
		descuento = *req.Descuento
	}
	if descuento.Sign() < 0 || descuento.GreaterThan(cien) {
		return dto.ProductoResponse{}, ErrDescuentoInvalido
	}

	precioCambio := !p.PrecioVenta.Equal(req.PrecioVenta) || !p.Descuento.Equal(descuento)
	precioAnterior := p.PrecioVenta
	descuentoAnterior := p.Descuento

	p.CodigoBarras = req.CodigoBarras
	p.NombreProducto = req.NombreProducto
	p.CategoriaID = req.CategoriaID
	p.MarcaID = req.MarcaID
	p.PrecioVenta = req.PrecioVenta
	p.Descuento = descuento
	p.PrecioFinal = precioFinal(req.PrecioVenta, descuento)
	p.FechaFinalDescuento = nil
	if req.FechaFinalDescuento != nil {
		f, err := time.Parse("2006-01-02", *req.FechaFinalDescuento)
		if err != nil {
			return dto.ProductoResponse{}, err
		}
		p.FechaFinalDescuento = &f
	}

	// The history row commits together with the update it records.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, p); err != nil {
			return err
		}
		if !precioCambio {
			return nil
		}
		h := &model.HistorialPrecio{
			ProductoID:        p.ID,
			PrecioAnterior:    precioAnterior,
			PrecioNuevo:       req.PrecioVenta,
			DescuentoAnterior: descuentoAnterior,
			DescuentoNuevo:    descuento,
			Usuario:           usuario,
		}
		return s.historialRepo.CreateTx(tx, h)
	})
	if txErr != nil {
		return dto.ProductoResponse{}, txErr
	}
	return mapProducto(*p), nil
}

// AjustarStock applies a manual stock correction and records the movement.
func (s *productoService) AjustarStock(ctx context.Context, id int64, req dto.AjusteStockRequest) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrProductoNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.AjustarStockTx(tx, id, req.Cantidad); err != nil {
			return err
		}
		mov := &model.MovimientoStock{
			ProductoID:    id,
			Tipo:          "ajuste_manual",
			Cantidad:      req.Cantidad,
			StockAnterior: p.StockActual,
			StockNuevo:    p.StockActual + req.Cantidad,
			Motivo:        req.Motivo,
		}
		return s.movimientoRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return dto.ProductoResponse{}, txErr
	}

	p.StockActual += req.Cantidad
	return mapProducto(*p), nil
}

func (s *productoService) Desactivar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	return s.repo.SetEstado(ctx, id, false)
}

func (s *productoService) Reactivar(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	return s.repo.SetEstado(ctx, id, true)
}

func (s *productoService) HistorialPrecios(ctx context.Context, id int64) ([]dto.HistorialPrecioResponse, error) {
	list, err := s.historialRepo.ListByProducto(ctx, id, 100)
	if err != nil {
		return nil, err
	}
	result := make([]dto.HistorialPrecioResponse, 0, len(list))
	for _, h := range list {
		result = append(result, dto.HistorialPrecioResponse{
			ID:                h.ID,
			ProductoID:        h.ProductoID,
			PrecioAnterior:    h.PrecioAnterior,
			PrecioNuevo:       h.PrecioNuevo,
			DescuentoAnterior: h.DescuentoAnterior,
			DescuentoNuevo:    h.DescuentoNuevo,
			Usuario:           h.Usuario,
			Fecha:             h.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (s *productoService) Movimientos(ctx context.Context, id int64) ([]dto.MovimientoStockResponse, error) {
	list, err := s.movimientoRepo.ListByProducto(ctx, id, 100)
	if err != nil {
		return nil, err
	}
	return mapMovimientos(list), nil
}

// MovimientosRecientes returns the latest stock movements across all products.
func (s *productoService) MovimientosRecientes(ctx context.Context) ([]dto.MovimientoStockResponse, error) {
	list, err := s.movimientoRepo.ListRecientes(ctx, 100)
	if err != nil {
		return nil, err
	}
	return mapMovimientos(list), nil
}

func mapMovimientos(list []model.MovimientoStock) []dto.MovimientoStockResponse {
	result := make([]dto.MovimientoStockResponse, 0, len(list))
	for _, m := range list {
		result = append(result, dto.MovimientoStockResponse{
			ID:            m.ID,
			ProductoID:    m.ProductoID,
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			Motivo:        m.Motivo,
			ReferenciaID:  m.ReferenciaID,
			Fecha:         m.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
