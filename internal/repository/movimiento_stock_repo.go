package repository

import (
	"context"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/gorm"
)

// MovimientoStockRepository records and queries the stock movement audit trail.
// CreateTx participates in the caller's transaction.
type MovimientoStockRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoStock) error
	ListByProducto(ctx context.Context, productoID int64, limit int) ([]model.MovimientoStock, error)
	ListRecientes(ctx context.Context, limit int) ([]model.MovimientoStock, error)
}

type movimientoStockRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewMovimientoStockRepository(db *gorm.DB, ids IDAllocator) MovimientoStockRepository {
	return &movimientoStockRepo{db: db, ids: ids}
}

func (r *movimientoStockRepo) CreateTx(tx *gorm.DB, m *model.MovimientoStock) error {
	next, err := r.ids.Next(tx, "movimientos_stock", "id")
	if err != nil {
		return err
	}
	m.ID = next
	return tx.Create(m).Error
}

func (r *movimientoStockRepo) ListByProducto(ctx context.Context, productoID int64, limit int) ([]model.MovimientoStock, error) {
	var list []model.MovimientoStock
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("id DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *movimientoStockRepo) ListRecientes(ctx context.Context, limit int) ([]model.MovimientoStock, error) {
	var list []model.MovimientoStock
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&list).Error
	return list, err
}
