package router

import (
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/config"
	"github.com/mo826440-cpu/sistema-kioscos/internal/handler"
	"github.com/mo826440-cpu/sistema-kioscos/internal/middleware"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"
	"github.com/mo826440-cpu/sistema-kioscos/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	ids := repository.NewMaxPlusOneAllocator()
	usuarioRepo := repository.NewUsuarioRepository(db, ids)
	productoRepo := repository.NewProductoRepository(db, ids)
	categoriaRepo := repository.NewCategoriaRepository(db, ids)
	marcaRepo := repository.NewMarcaRepository(db, ids)
	proveedorRepo := repository.NewProveedorRepository(db, ids)
	clienteRepo := repository.NewClienteRepository(db, ids)
	compraRepo := repository.NewCompraRepository(db, ids)
	ventaRepo := repository.NewVentaRepository(db, ids)
	movimientoRepo := repository.NewMovimientoStockRepository(db, ids)
	historialRepo := repository.NewHistorialPrecioRepository(db, ids)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, historialRepo, movimientoRepo, cfg.LowStockThreshold)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, productoRepo, marcaRepo)
	marcaSvc := service.NewMarcaService(marcaRepo, categoriaRepo, productoRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo, compraRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	compraSvc := service.NewCompraService(compraRepo, productoRepo, movimientoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clienteRepo, movimientoRepo, cfg.AllowNegativeStock, cfg.PDFStoragePath)
	backupSvc := service.NewBackupService(db)
	reporteSvc := service.NewReporteService(ventaRepo, compraRepo, productoRepo, cfg.LowStockThreshold)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	marcasH := handler.NewMarcasHandler(marcaSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	backupH := handler.NewBackupHandler(backupSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Price check for the store front scanner — read-only, no auth
	r.GET("/v1/precio/:codigo", productosH.ObtenerPorBarcode)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	lectura := middleware.RequireRole("administrador", "gerente", "cajero", "visor")
	operacion := middleware.RequireRole("administrador", "gerente", "cajero")
	gestion := middleware.RequireRole("administrador", "gerente")
	admin := middleware.RequireRole("administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		// Productos
		v1.GET("/productos", lectura, productosH.Listar)
		v1.GET("/productos/stock-bajo", lectura, productosH.StockBajo)
		v1.GET("/productos/barcode/:codigo", lectura, productosH.ObtenerPorBarcode)
		v1.GET("/productos/:id", lectura, productosH.Obtener)
		v1.GET("/productos/:id/historial-precios", lectura, productosH.HistorialPrecios)
		v1.GET("/productos/:id/movimientos", lectura, productosH.Movimientos)
		v1.GET("/movimientos-stock", lectura, productosH.MovimientosRecientes)
		v1.POST("/productos", gestion, productosH.Crear)
		v1.PUT("/productos/:id", gestion, productosH.Actualizar)
		v1.POST("/productos/:id/ajuste-stock", gestion, productosH.AjustarStock)
		v1.DELETE("/productos/:id", gestion, productosH.Desactivar)
		v1.POST("/productos/:id/reactivar", gestion, productosH.Reactivar)

		// Categorías
		v1.GET("/categorias", lectura, categoriasH.Listar)
		v1.GET("/categorias/:id", lectura, categoriasH.Obtener)
		v1.POST("/categorias", gestion, categoriasH.Crear)
		v1.PUT("/categorias/:id", gestion, categoriasH.Actualizar)
		v1.DELETE("/categorias/:id", gestion, categoriasH.Eliminar)

		// Marcas
		v1.GET("/marcas", lectura, marcasH.Listar)
		v1.POST("/marcas", gestion, marcasH.Crear)
		v1.PUT("/marcas/:id", gestion, marcasH.Actualizar)
		v1.DELETE("/marcas/:id", gestion, marcasH.Eliminar)

		// Proveedores
		v1.GET("/proveedores", lectura, proveedoresH.Listar)
		v1.GET("/proveedores/:id", lectura, proveedoresH.Obtener)
		v1.POST("/proveedores", gestion, proveedoresH.Crear)
		v1.PUT("/proveedores/:id", gestion, proveedoresH.Actualizar)
		v1.DELETE("/proveedores/:id", gestion, proveedoresH.Eliminar)

		// Clientes
		v1.GET("/clientes", lectura, clientesH.Listar)
		v1.GET("/clientes/:id", lectura, clientesH.Obtener)
		v1.POST("/clientes", operacion, clientesH.Crear)
		v1.PUT("/clientes/:id", operacion, clientesH.Actualizar)
		v1.DELETE("/clientes/:id", gestion, clientesH.Desactivar)
		v1.POST("/clientes/:id/reactivar", gestion, clientesH.Reactivar)

		// Compras
		v1.GET("/compras", lectura, comprasH.Listar)
		v1.GET("/compras/:id", lectura, comprasH.Obtener)
		v1.POST("/compras", gestion, comprasH.Registrar)
		v1.PUT("/compras/:id", gestion, comprasH.Actualizar)
		v1.POST("/compras/:id/pagos", gestion, comprasH.AgregarPago)
		v1.DELETE("/compras/:id", admin, comprasH.Eliminar)

		// Ventas
		v1.GET("/ventas", lectura, ventasH.Listar)
		v1.GET("/ventas/pendientes", lectura, ventasH.Pendientes)
		v1.GET("/ventas/:id", lectura, ventasH.Obtener)
		v1.GET("/ventas/:id/ticket", lectura, ventasH.Ticket)
		v1.POST("/ventas", operacion, ventasH.Registrar)
		v1.PUT("/ventas/:id", operacion, ventasH.Actualizar)
		v1.POST("/ventas/:id/pagos", operacion, ventasH.AgregarPago)
		v1.DELETE("/ventas/:id", admin, ventasH.Eliminar)

		// Reportes
		v1.GET("/reportes/resumen-dia", lectura, reportesH.ResumenDia)
		v1.GET("/reportes/cuentas-por-cobrar", lectura, reportesH.CuentasPorCobrar)
		v1.GET("/reportes/cuentas-por-pagar", lectura, reportesH.CuentasPorPagar)

		// Respaldo y usuarios — administrador
		v1.GET("/backup/export", admin, backupH.Export)
		v1.GET("/usuarios", admin, authH.ListarUsuarios)
		v1.POST("/usuarios", admin, authH.CrearUsuario)
		v1.PUT("/usuarios/:id", admin, authH.ActualizarUsuario)
		v1.DELETE("/usuarios/:id", admin, authH.EliminarUsuario)
	}

	return r
}
