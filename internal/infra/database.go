package infra

import (
	"fmt"

	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens (or creates) the sqlite file and runs AutoMigrate for the
// full schema. The pool is capped at a single open connection: the application
// is a single-writer system and sqlite serializes writers anyway, so one
// connection removes SQLITE_BUSY retries entirely.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("pragma foreign_keys: %w", err)
	}
	// Crash between two writes must never corrupt the previous on-disk state.
	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("pragma journal_mode: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates/updates all tables. Also used by integration tests
// against an in-memory database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Categoria{},
		&model.Marca{},
		&model.Proveedor{},
		&model.Cliente{},
		&model.Producto{},
		&model.Compra{},
		&model.DetalleCompra{},
		&model.PagoCompra{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.PagoVenta{},
		&model.Usuario{},
		&model.MovimientoStock{},
		&model.HistorialPrecio{},
	)
}
