package repository

import (
	"context"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository defines CRUD operations for Categoria.
type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	List(ctx context.Context) ([]model.Categoria, error)
	FindByID(ctx context.Context, id int64) (*model.Categoria, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Update(ctx context.Context, c *model.Categoria) error
	Delete(ctx context.Context, id int64) error
	DB() *gorm.DB
}

type categoriaRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewCategoriaRepository(db *gorm.DB, ids IDAllocator) CategoriaRepository {
	return &categoriaRepo{db: db, ids: ids}
}

func (r *categoriaRepo) DB() *gorm.DB { return r.db }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	next, err := r.ids.Next(r.db, "categorias", "id")
	if err != nil {
		return err
	}
	c.ID = next
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) List(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre_categoria ASC").Find(&list).Error
	return list, err
}

func (r *categoriaRepo) FindByID(ctx context.Context, id int64) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("lower(nombre_categoria) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Categoria{}, id).Error
}
