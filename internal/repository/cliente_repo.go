package repository

import (
	"context"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/gorm"
)

// ClienteRepository defines CRUD operations for Cliente (soft delete only).
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	List(ctx context.Context, estado string) ([]model.Cliente, error)
	Search(ctx context.Context, term string) ([]model.Cliente, error)
	FindByID(ctx context.Context, id int64) (*model.Cliente, error)
	ExistsNombre(ctx context.Context, nombre string, excludeID int64) (bool, error)
	Update(ctx context.Context, c *model.Cliente) error
	SetEstado(ctx context.Context, id int64, activo bool) error
}

type clienteRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewClienteRepository(db *gorm.DB, ids IDAllocator) ClienteRepository {
	return &clienteRepo{db: db, ids: ids}
}

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	next, err := r.ids.Next(r.db, "clientes", "id")
	if err != nil {
		return err
	}
	c.ID = next
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) List(ctx context.Context, estado string) ([]model.Cliente, error) {
	var list []model.Cliente
	q := r.db.WithContext(ctx)

	switch estado {
	case "inactivo":
		q = q.Where("activo = ?", false)
	case "todos":
		// no filter
	default:
		q = q.Where("activo = ?", true)
	}

	err := q.Order("nombre_cliente ASC").Find(&list).Error
	return list, err
}

func (r *clienteRepo) Search(ctx context.Context, term string) ([]model.Cliente, error) {
	var list []model.Cliente
	like := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("nombre_cliente LIKE ? OR contacto LIKE ?", like, like).
		Order("nombre_cliente ASC").Find(&list).Error
	return list, err
}

func (r *clienteRepo) FindByID(ctx context.Context, id int64) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) ExistsNombre(ctx context.Context, nombre string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("lower(nombre_cliente) = lower(?) AND id <> ?", nombre, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) SetEstado(ctx context.Context, id int64, activo bool) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).
		Update("activo", activo).Error
}
