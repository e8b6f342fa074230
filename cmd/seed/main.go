// cmd/seed/main.go — Crea el usuario administrador inicial y un catálogo de
// muestra sobre una base vacía. Uso: go run ./cmd/seed
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mo826440-cpu/sistema-kioscos/internal/infra"
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "pos.db"
	}

	db, err := infra.NewDatabase(path)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	admin := model.Usuario{
		ID:            1,
		NombreUsuario: "admin",
		Contrasena:    string(hash),
		Cargo:         "administrador",
		Activo:        true,
	}
	if err := db.Where("id = ?", 1).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("seed admin error: %v", err)
	}

	if err := seedCatalogo(db); err != nil {
		log.Fatalf("seed catálogo error: %v", err)
	}

	fmt.Println("Usuario 'admin' (password 'admin123') y catálogo de muestra listos.")
}

func seedCatalogo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Categoria{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	categorias := []model.Categoria{
		{ID: 1, NombreCategoria: "Bebidas"},
		{ID: 2, NombreCategoria: "Golosinas"},
		{ID: 3, NombreCategoria: "Almacén"},
	}
	if err := db.Create(&categorias).Error; err != nil {
		return err
	}

	marcas := []model.Marca{
		{ID: 1, NombreMarca: "Coca-Cola", CategoriaID: 1},
		{ID: 2, NombreMarca: "Arcor", CategoriaID: 2},
	}
	if err := db.Create(&marcas).Error; err != nil {
		return err
	}

	proveedores := []model.Proveedor{
		{ID: 1, NombreProveedor: "Distribuidora Central"},
	}
	if err := db.Create(&proveedores).Error; err != nil {
		return err
	}

	cat1, cat2 := int64(1), int64(2)
	marca1, marca2 := int64(1), int64(2)
	productos := []model.Producto{
		{
			ID:             1,
			CodigoBarras:   "7790895000997",
			NombreProducto: "Coca-Cola 1.5L",
			CategoriaID:    &cat1,
			MarcaID:        &marca1,
			PrecioVenta:    decimal.NewFromInt(1800),
			PrecioFinal:    decimal.NewFromInt(1800),
			StockActual:    24,
			Activo:         true,
		},
		{
			ID:             2,
			CodigoBarras:   "7790580136803",
			NombreProducto: "Bon o Bon 30g",
			CategoriaID:    &cat2,
			MarcaID:        &marca2,
			PrecioVenta:    decimal.NewFromInt(500),
			PrecioFinal:    decimal.NewFromInt(500),
			StockActual:    50,
			Activo:         true,
		},
	}
	if err := db.Create(&productos).Error; err != nil {
		return err
	}

	clientes := []model.Cliente{
		{ID: 1, NombreCliente: "Consumidor Final", Activo: true},
	}
	return db.Create(&clientes).Error
}
