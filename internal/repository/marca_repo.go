package repository

import (
	"context"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/gorm"
)

// MarcaRepository defines CRUD operations for Marca.
type MarcaRepository interface {
	Create(ctx context.Context, m *model.Marca) error
	List(ctx context.Context) ([]model.Marca, error)
	ListByCategoria(ctx context.Context, categoriaID int64) ([]model.Marca, error)
	FindByID(ctx context.Context, id int64) (*model.Marca, error)
	ExistsNombreEnCategoria(ctx context.Context, nombre string, categoriaID, excludeID int64) (bool, error)
	CountByCategoria(ctx context.Context, categoriaID int64) (int64, error)
	Update(ctx context.Context, m *model.Marca) error
	Delete(ctx context.Context, id int64) error
}

type marcaRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewMarcaRepository(db *gorm.DB, ids IDAllocator) MarcaRepository {
	return &marcaRepo{db: db, ids: ids}
}

func (r *marcaRepo) Create(ctx context.Context, m *model.Marca) error {
	next, err := r.ids.Next(r.db, "marcas", "id")
	if err != nil {
		return err
	}
	m.ID = next
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *marcaRepo) List(ctx context.Context) ([]model.Marca, error) {
	var list []model.Marca
	err := r.db.WithContext(ctx).Preload("Categoria").Order("nombre_marca ASC").Find(&list).Error
	return list, err
}

func (r *marcaRepo) ListByCategoria(ctx context.Context, categoriaID int64) ([]model.Marca, error) {
	var list []model.Marca
	err := r.db.WithContext(ctx).Where("categoria_id = ?", categoriaID).
		Order("nombre_marca ASC").Find(&list).Error
	return list, err
}

func (r *marcaRepo) FindByID(ctx context.Context, id int64) (*model.Marca, error) {
	var m model.Marca
	err := r.db.WithContext(ctx).Preload("Categoria").First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *marcaRepo) ExistsNombreEnCategoria(ctx context.Context, nombre string, categoriaID, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Marca{}).
		Where("lower(nombre_marca) = lower(?) AND categoria_id = ? AND id <> ?", nombre, categoriaID, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *marcaRepo) CountByCategoria(ctx context.Context, categoriaID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Marca{}).
		Where("categoria_id = ?", categoriaID).Count(&count).Error
	return count, err
}

func (r *marcaRepo) Update(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *marcaRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Marca{}, id).Error
}
