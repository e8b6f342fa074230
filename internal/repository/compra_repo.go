package repository

import (
	"context"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompraRepository defines persistence for purchases and their detail and
// payment rows. The *Tx methods take the caller's transaction handle so the
// service layer can group header, details, payments and stock updates into a
// single atomic unit.
type CompraRepository interface {
	NextID(tx *gorm.DB) (int64, error)
	NextDetalleID(tx *gorm.DB) (int64, error)
	NextPagoID(tx *gorm.DB) (int64, error)

	CreateTx(tx *gorm.DB, c *model.Compra) error
	CreateDetalleTx(tx *gorm.DB, d *model.DetalleCompra) error
	CreatePagoTx(tx *gorm.DB, p *model.PagoCompra) error

	FindByID(ctx context.Context, id int64) (*model.Compra, error)
	List(ctx context.Context) ([]model.Compra, error)
	ListByProveedor(ctx context.Context, proveedorID int64) ([]model.Compra, error)
	ListPendientes(ctx context.Context) ([]model.Compra, error)

	SumDetallesTx(tx *gorm.DB, compraID int64) (decimal.Decimal, error)
	SumPagosTx(tx *gorm.DB, compraID int64) (decimal.Decimal, error)
	DetallesTx(tx *gorm.DB, compraID int64) ([]model.DetalleCompra, error)

	UpdateHeaderTx(tx *gorm.DB, id int64, fields map[string]any) error
	UpdateTotalesTx(tx *gorm.DB, id int64, pagado, deuda decimal.Decimal, estado string) error

	DeletePagosTx(tx *gorm.DB, compraID int64) error
	DeleteDetallesTx(tx *gorm.DB, compraID int64) error
	DeleteTx(tx *gorm.DB, id int64) error

	CountByProveedor(ctx context.Context, proveedorID int64) (int64, error)

	DB() *gorm.DB
}

type compraRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewCompraRepository(db *gorm.DB, ids IDAllocator) CompraRepository {
	return &compraRepo{db: db, ids: ids}
}

func (r *compraRepo) NextID(tx *gorm.DB) (int64, error) {
	return r.ids.Next(tx, "compras", "id")
}

func (r *compraRepo) NextDetalleID(tx *gorm.DB) (int64, error) {
	return r.ids.Next(tx, "detalle_compras", "id")
}

func (r *compraRepo) NextPagoID(tx *gorm.DB) (int64, error) {
	return r.ids.Next(tx, "pagos_compras", "id")
}

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Omit("Detalles", "Pagos").Create(c).Error
}

func (r *compraRepo) CreateDetalleTx(tx *gorm.DB, d *model.DetalleCompra) error {
	return tx.Create(d).Error
}

func (r *compraRepo) CreatePagoTx(tx *gorm.DB, p *model.PagoCompra) error {
	return tx.Create(p).Error
}

func (r *compraRepo) FindByID(ctx context.Context, id int64) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Pagos").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) List(ctx context.Context) ([]model.Compra, error) {
	var list []model.Compra
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Pagos").
		Order("id DESC").Find(&list).Error
	return list, err
}

func (r *compraRepo) ListByProveedor(ctx context.Context, proveedorID int64) ([]model.Compra, error) {
	var list []model.Compra
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Pagos").
		Where("id IN (?)", r.db.Model(&model.DetalleCompra{}).
			Select("compra_id").Where("proveedor_id = ?", proveedorID)).
		Order("id DESC").Find(&list).Error
	return list, err
}

func (r *compraRepo) ListPendientes(ctx context.Context) ([]model.Compra, error) {
	var list []model.Compra
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Pagos").
		Where("estado_pago <> ?", model.CompraPagado).
		Order("id DESC").Find(&list).Error
	return list, err
}

func (r *compraRepo) SumDetallesTx(tx *gorm.DB, compraID int64) (decimal.Decimal, error) {
	return sumColumn(tx, &model.DetalleCompra{}, "precio_total", "compra_id", compraID)
}

func (r *compraRepo) SumPagosTx(tx *gorm.DB, compraID int64) (decimal.Decimal, error) {
	return sumColumn(tx, &model.PagoCompra{}, "monto_pago", "compra_id", compraID)
}

func (r *compraRepo) DetallesTx(tx *gorm.DB, compraID int64) ([]model.DetalleCompra, error) {
	var list []model.DetalleCompra
	err := tx.Where("compra_id = ?", compraID).Find(&list).Error
	return list, err
}

func (r *compraRepo) UpdateHeaderTx(tx *gorm.DB, id int64, fields map[string]any) error {
	return tx.Model(&model.Compra{}).Where("id = ?", id).Updates(fields).Error
}

func (r *compraRepo) UpdateTotalesTx(tx *gorm.DB, id int64, pagado, deuda decimal.Decimal, estado string) error {
	return tx.Model(&model.Compra{}).Where("id = ?", id).Updates(map[string]any{
		"total_pagado": pagado,
		"total_deuda":  deuda,
		"estado_pago":  estado,
	}).Error
}

func (r *compraRepo) DeletePagosTx(tx *gorm.DB, compraID int64) error {
	return tx.Where("compra_id = ?", compraID).Delete(&model.PagoCompra{}).Error
}

func (r *compraRepo) DeleteDetallesTx(tx *gorm.DB, compraID int64) error {
	return tx.Where("compra_id = ?", compraID).Delete(&model.DetalleCompra{}).Error
}

func (r *compraRepo) DeleteTx(tx *gorm.DB, id int64) error {
	return tx.Delete(&model.Compra{}, id).Error
}

func (r *compraRepo) CountByProveedor(ctx context.Context, proveedorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DetalleCompra{}).
		Where("proveedor_id = ?", proveedorID).Count(&count).Error
	return count, err
}

func (r *compraRepo) DB() *gorm.DB { return r.db }

// sumColumn sums a decimal column over rows matching filterColumn = filterValue.
// SQLite returns the aggregate as a float or text, both of which decimal parses.
func sumColumn(tx *gorm.DB, mdl any, column, filterColumn string, filterValue int64) (decimal.Decimal, error) {
	var raw *string
	err := tx.Model(mdl).
		Select("CAST(COALESCE(SUM("+column+"), 0) AS TEXT)").
		Where(filterColumn+" = ?", filterValue).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if raw == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}
