package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"

	"github.com/shopspring/decimal"
)

// ReporteService aggregates read-only figures for the dashboard: daily sales
// summary, pending accounts on both sides of the ledger, and low stock.
type ReporteService interface {
	ResumenDia(ctx context.Context, fecha string) (*dto.ResumenDiaResponse, error)
	CuentasPorCobrar(ctx context.Context) ([]dto.CuentaPendienteResponse, error)
	CuentasPorPagar(ctx context.Context) ([]dto.CuentaPendienteResponse, error)
}

type reporteService struct {
	ventaRepo    repository.VentaRepository
	compraRepo   repository.CompraRepository
	productoRepo repository.ProductoRepository
	lowStock     int
}

func NewReporteService(
	ventaRepo repository.VentaRepository,
	compraRepo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	lowStock int,
) ReporteService {
	return &reporteService{
		ventaRepo:    ventaRepo,
		compraRepo:   compraRepo,
		productoRepo: productoRepo,
		lowStock:     lowStock,
	}
}

func (s *reporteService) ResumenDia(ctx context.Context, fecha string) (*dto.ResumenDiaResponse, error) {
	dia := time.Now()
	if fecha != "" {
		parsed, err := time.Parse("2006-01-02", fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		dia = parsed
	}
	desde := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())

	ventas, err := s.ventaRepo.ListByFecha(ctx, desde, desde.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	totalVendido := decimal.Zero
	totalCobrado := decimal.Zero
	deuda := decimal.Zero
	for _, v := range ventas {
		for _, d := range v.Detalles {
			totalVendido = totalVendido.Add(d.PrecioTotalFinal)
		}
		totalCobrado = totalCobrado.Add(v.TotalPagado)
		deuda = deuda.Add(v.TotalDeuda)
	}

	bajoStock, err := s.productoRepo.LowStock(ctx, s.lowStock)
	if err != nil {
		return nil, err
	}

	return &dto.ResumenDiaResponse{
		Fecha:              desde.Format("2006-01-02"),
		CantidadVentas:     len(ventas),
		TotalVendido:       totalVendido,
		TotalCobrado:       totalCobrado,
		DeudaGenerada:      deuda,
		ProductosStockBajo: len(bajoStock),
	}, nil
}

// CuentasPorCobrar lists sales that still carry debt.
func (s *reporteService) CuentasPorCobrar(ctx context.Context) ([]dto.CuentaPendienteResponse, error) {
	ventas, err := s.ventaRepo.ListPendientes(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CuentaPendienteResponse, 0, len(ventas))
	for _, v := range ventas {
		total := decimal.Zero
		for _, d := range v.Detalles {
			total = total.Add(d.PrecioTotalFinal)
		}
		row := dto.CuentaPendienteResponse{
			DocumentoID: v.ID,
			Fecha:       v.FechaVenta.Format("2006-01-02"),
			Total:       total,
			Pagado:      v.TotalPagado,
			Deuda:       v.TotalDeuda,
			EstadoPago:  v.EstadoPago,
		}
		if v.Cliente != nil {
			row.Tercero = v.Cliente.NombreCliente
		}
		result = append(result, row)
	}
	return result, nil
}

// CuentasPorPagar lists purchases that still carry debt.
func (s *reporteService) CuentasPorPagar(ctx context.Context) ([]dto.CuentaPendienteResponse, error) {
	compras, err := s.compraRepo.ListPendientes(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CuentaPendienteResponse, 0, len(compras))
	for _, c := range compras {
		total := decimal.Zero
		for _, d := range c.Detalles {
			total = total.Add(d.PrecioTotal)
		}
		result = append(result, dto.CuentaPendienteResponse{
			DocumentoID: c.ID,
			Fecha:       c.FechaCompra.Format("2006-01-02"),
			Total:       total,
			Pagado:      c.TotalPagado,
			Deuda:       c.TotalDeuda,
			EstadoPago:  c.EstadoPago,
		})
	}
	return result, nil
}
