package repository

import (
	"context"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaRepository defines persistence for sales, mirroring CompraRepository.
// The *Tx methods run against the caller's transaction handle.
type VentaRepository interface {
	NextID(tx *gorm.DB) (int64, error)
	NextDetalleID(tx *gorm.DB) (int64, error)
	NextPagoID(tx *gorm.DB) (int64, error)

	CreateTx(tx *gorm.DB, v *model.Venta) error
	CreateDetalleTx(tx *gorm.DB, d *model.DetalleVenta) error
	CreatePagoTx(tx *gorm.DB, p *model.PagoVenta) error

	FindByID(ctx context.Context, id int64) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)
	ListByCliente(ctx context.Context, clienteID int64) ([]model.Venta, error)
	ListByFecha(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error)
	ListPendientes(ctx context.Context) ([]model.Venta, error)

	SumDetallesTx(tx *gorm.DB, ventaID int64) (decimal.Decimal, error)
	SumPagosTx(tx *gorm.DB, ventaID int64) (decimal.Decimal, error)
	DetallesTx(tx *gorm.DB, ventaID int64) ([]model.DetalleVenta, error)

	UpdateHeaderTx(tx *gorm.DB, id int64, fields map[string]any) error
	UpdateTotalesTx(tx *gorm.DB, id int64, pagado, deuda decimal.Decimal, estado string) error

	DeletePagosTx(tx *gorm.DB, ventaID int64) error
	DeleteDetallesTx(tx *gorm.DB, ventaID int64) error
	DeleteTx(tx *gorm.DB, id int64) error

	CountByCliente(ctx context.Context, clienteID int64) (int64, error)

	DB() *gorm.DB
}

type ventaRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewVentaRepository(db *gorm.DB, ids IDAllocator) VentaRepository {
	return &ventaRepo{db: db, ids: ids}
}

func (r *ventaRepo) NextID(tx *gorm.DB) (int64, error) {
	return r.ids.Next(tx, "ventas", "id")
}

func (r *ventaRepo) NextDetalleID(tx *gorm.DB) (int64, error) {
	return r.ids.Next(tx, "detalle_ventas", "id")
}

func (r *ventaRepo) NextPagoID(tx *gorm.DB) (int64, error) {
	return r.ids.Next(tx, "pagos_ventas", "id")
}

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Omit("Cliente", "Detalles", "Pagos").Create(v).Error
}

func (r *ventaRepo) CreateDetalleTx(tx *gorm.DB, d *model.DetalleVenta) error {
	return tx.Create(d).Error
}

func (r *ventaRepo) CreatePagoTx(tx *gorm.DB, p *model.PagoVenta) error {
	return tx.Create(p).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id int64) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles").
		Preload("Pagos").
		First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var list []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles").
		Preload("Pagos").
		Order("id DESC").Find(&list).Error
	return list, err
}

func (r *ventaRepo) ListByCliente(ctx context.Context, clienteID int64) ([]model.Venta, error) {
	var list []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Pagos").
		Where("cliente_id = ?", clienteID).
		Order("id DESC").Find(&list).Error
	return list, err
}

func (r *ventaRepo) ListByFecha(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var list []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles").
		Preload("Pagos").
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Order("id DESC").Find(&list).Error
	return list, err
}

func (r *ventaRepo) ListPendientes(ctx context.Context) ([]model.Venta, error) {
	var list []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles").
		Preload("Pagos").
		Where("estado_pago <> ?", model.VentaPagado).
		Order("id DESC").Find(&list).Error
	return list, err
}

func (r *ventaRepo) SumDetallesTx(tx *gorm.DB, ventaID int64) (decimal.Decimal, error) {
	return sumColumn(tx, &model.DetalleVenta{}, "precio_total_final", "venta_id", ventaID)
}

func (r *ventaRepo) SumPagosTx(tx *gorm.DB, ventaID int64) (decimal.Decimal, error) {
	return sumColumn(tx, &model.PagoVenta{}, "monto_pago", "venta_id", ventaID)
}

func (r *ventaRepo) DetallesTx(tx *gorm.DB, ventaID int64) ([]model.DetalleVenta, error) {
	var list []model.DetalleVenta
	err := tx.Where("venta_id = ?", ventaID).Find(&list).Error
	return list, err
}

func (r *ventaRepo) UpdateHeaderTx(tx *gorm.DB, id int64, fields map[string]any) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ventaRepo) UpdateTotalesTx(tx *gorm.DB, id int64, pagado, deuda decimal.Decimal, estado string) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Updates(map[string]any{
		"total_pagado": pagado,
		"total_deuda":  deuda,
		"estado_pago":  estado,
	}).Error
}

func (r *ventaRepo) DeletePagosTx(tx *gorm.DB, ventaID int64) error {
	return tx.Where("venta_id = ?", ventaID).Delete(&model.PagoVenta{}).Error
}

func (r *ventaRepo) DeleteDetallesTx(tx *gorm.DB, ventaID int64) error {
	return tx.Where("venta_id = ?", ventaID).Delete(&model.DetalleVenta{}).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, id int64) error {
	return tx.Delete(&model.Venta{}, id).Error
}

func (r *ventaRepo) CountByCliente(ctx context.Context, clienteID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("cliente_id = ?", clienteID).Count(&count).Error
	return count, err
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
