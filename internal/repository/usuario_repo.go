package repository

import (
	"context"
	"errors"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/gorm"
)

// UsuarioRepository defines persistence operations for system users.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	List(ctx context.Context) ([]model.Usuario, error)
	FindByID(ctx context.Context, id int64) (*model.Usuario, error)
	// FindByNombre returns (nil, nil) when no user matches.
	FindByNombre(ctx context.Context, nombre string) (*model.Usuario, error)
	ExistsNombre(ctx context.Context, nombre string, excludeID int64) (bool, error)
	Update(ctx context.Context, u *model.Usuario) error
	Delete(ctx context.Context, id int64) error
}

type usuarioRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewUsuarioRepository(db *gorm.DB, ids IDAllocator) UsuarioRepository {
	return &usuarioRepo{db: db, ids: ids}
}

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	next, err := r.ids.Next(r.db, "usuarios", "id")
	if err != nil {
		return err
	}
	u.ID = next
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var list []model.Usuario
	err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id int64) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByNombre(ctx context.Context, nombre string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("nombre_usuario = ?", nombre).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ExistsNombre(ctx context.Context, nombre string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("lower(nombre_usuario) = lower(?) AND id <> ?", nombre, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Usuario{}, id).Error
}
