package repository

import (
	"context"
	"errors"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id int64) (*model.Producto, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Producto, error)
	List(ctx context.Context, estado string) ([]model.Producto, error)
	Search(ctx context.Context, term string) ([]model.Producto, error)
	LowStock(ctx context.Context, threshold int) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SetEstado(ctx context.Context, id int64, activo bool) error
	ExistsBarcode(ctx context.Context, barcode string, excludeID int64) (bool, error)
	CountByCategoria(ctx context.Context, categoriaID int64) (int64, error)
	CountByMarca(ctx context.Context, marcaID int64) (int64, error)

	// Transactional helpers used by the ledger — callers must pass the tx.
	// FindByBarcodeTx returns (nil, nil) when the barcode has no catalog row:
	// the ledger treats that as a recorded-but-unmatched detail, not an error.
	FindByBarcodeTx(tx *gorm.DB, barcode string) (*model.Producto, error)
	AjustarStockTx(tx *gorm.DB, id int64, delta int) error
	UpdateTx(tx *gorm.DB, p *model.Producto) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct {
	db  *gorm.DB
	ids IDAllocator
}

func NewProductoRepository(db *gorm.DB, ids IDAllocator) ProductoRepository {
	return &productoRepo{db: db, ids: ids}
}

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	next, err := r.ids.Next(r.db, "productos", "id")
	if err != nil {
		return err
	}
	p.ID = next
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id int64) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Marca").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Marca").
		Where("codigo_barras = ?", barcode).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, estado string) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Preload("Categoria").Preload("Marca")

	// estado: "activo" (default) | "inactivo" | "todos"
	switch estado {
	case "inactivo":
		q = q.Where("activo = ?", false)
	case "todos":
		// no filter
	default:
		q = q.Where("activo = ?", true)
	}

	err := q.Order("nombre_producto ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Search(ctx context.Context, term string) ([]model.Producto, error) {
	var productos []model.Producto
	like := "%" + term + "%"
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Marca").
		Where("codigo_barras LIKE ? OR nombre_producto LIKE ?", like, like).
		Order("nombre_producto ASC").Limit(50).
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) LowStock(ctx context.Context, threshold int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Marca").
		Where("stock_actual <= ? AND activo = ?", threshold, true).
		Order("stock_actual ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) UpdateTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Save(p).Error
}

func (r *productoRepo) SetEstado(ctx context.Context, id int64, activo bool) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).
		Update("activo", activo).Error
}

func (r *productoRepo) ExistsBarcode(ctx context.Context, barcode string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("codigo_barras = ? AND id <> ?", barcode, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *productoRepo) CountByCategoria(ctx context.Context, categoriaID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("categoria_id = ?", categoriaID).Count(&count).Error
	return count, err
}

func (r *productoRepo) CountByMarca(ctx context.Context, marcaID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("marca_id = ?", marcaID).Count(&count).Error
	return count, err
}

func (r *productoRepo) FindByBarcodeTx(tx *gorm.DB, barcode string) (*model.Producto, error) {
	var p model.Producto
	err := tx.Where("codigo_barras = ?", barcode).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) AjustarStockTx(tx *gorm.DB, id int64, delta int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock_actual", gorm.Expr("stock_actual + ?", delta)).Error
}
