package repository

import (
	"context"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/gorm"
)

// ProveedorRepository defines CRUD operations for Proveedor.
type ProveedorRepository interface {
	Create(ctx context.Context, p *model.Proveedor) error
	List(ctx context.Context) ([]model.Proveedor, error)
	Search(ctx context.Context, term string) ([]model.Proveedor, error)
	FindByID(ctx context.Context, id int64) (*model.Proveedor, error)
	ExistsNombre(ctx context.Context, nombre string, excludeID int64) (bool, error)
	Update(ctx context.Context, p *model.Proveedor) error
	Delete(ctx context.Context, id int64) error
}

type proveedorRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewProveedorRepository(db *gorm.DB, ids IDAllocator) ProveedorRepository {
	return &proveedorRepo{db: db, ids: ids}
}

func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	next, err := r.ids.Next(r.db, "proveedores", "id")
	if err != nil {
		return err
	}
	p.ID = next
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) List(ctx context.Context) ([]model.Proveedor, error) {
	var list []model.Proveedor
	err := r.db.WithContext(ctx).Order("nombre_proveedor ASC").Find(&list).Error
	return list, err
}

func (r *proveedorRepo) Search(ctx context.Context, term string) ([]model.Proveedor, error) {
	var list []model.Proveedor
	like := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("nombre_proveedor LIKE ? OR contacto LIKE ?", like, like).
		Order("nombre_proveedor ASC").Find(&list).Error
	return list, err
}

func (r *proveedorRepo) FindByID(ctx context.Context, id int64) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) ExistsNombre(ctx context.Context, nombre string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("lower(nombre_proveedor) = lower(?) AND id <> ?", nombre, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *proveedorRepo) Update(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Proveedor{}, id).Error
}
