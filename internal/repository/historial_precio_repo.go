package repository

import (
	"context"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/gorm"
)

// HistorialPrecioRepository records price change history for products.
// The insert is transactional: the history row must commit together with the
// product update it describes.
type HistorialPrecioRepository interface {
	CreateTx(tx *gorm.DB, h *model.HistorialPrecio) error
	ListByProducto(ctx context.Context, productoID int64, limit int) ([]model.HistorialPrecio, error)
}

type historialPrecioRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewHistorialPrecioRepository(db *gorm.DB, ids IDAllocator) HistorialPrecioRepository {
	return &historialPrecioRepo{db: db, ids: ids}
}

func (r *historialPrecioRepo) CreateTx(tx *gorm.DB, h *model.HistorialPrecio) error {
	next, err := r.ids.Next(tx, "historial_precios", "id")
	if err != nil {
		return err
	}
	h.ID = next
	return tx.Create(h).Error
}

func (r *historialPrecioRepo) ListByProducto(ctx context.Context, productoID int64, limit int) ([]model.HistorialPrecio, error) {
	var list []model.HistorialPrecio
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("id DESC").Limit(limit).Find(&list).Error
	return list, err
}
