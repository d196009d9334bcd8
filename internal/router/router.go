package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/config"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/handler"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/infra"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/middleware"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, rdb, cfg.CatalogoCacheTTLSeconds, dispatcher)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	ventaSvc := service.NewVentaService(ventaRepo, clienteRepo, productoRepo, productoSvc, dispatcher, dispatcher)
	pedidoSvc := service.NewPedidoService(pedidoRepo, proveedorRepo, productoRepo, productoSvc, dispatcher)
	dashboardSvc := service.NewDashboardService(productoSvc)
	reporteSvc := service.NewReporteService(ventaRepo, productoSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, mailer))
	r.POST("/api/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	ambos := middleware.RequireRole(model.RolAdministrador, model.RolTrabajador)
	admin := middleware.RequireRole(model.RolAdministrador)

	api := r.Group("/api", jwtMW)
	{
		// Catalog reads — both roles (the sale form needs them)
		api.GET("/productos", ambos, productosH.Listar)
		api.GET("/productos/:id", ambos, productosH.ObtenerPorID)
		api.GET("/categorias", ambos, categoriasH.Listar)
		api.GET("/categorias/:id", ambos, categoriasH.ObtenerPorID)

		// Catalog writes — administrador only
		productos := api.Group("/productos", admin)
		{
			productos.POST("", productosH.Crear)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}
		categorias := api.Group("/categorias", admin)
		{
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
		}

		// Clientes — both roles (registered at the counter)
		clientes := api.Group("/clientes", ambos)
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.PUT("/:id", clientesH.Actualizar)
		}
		api.DELETE("/clientes/:id", admin, clientesH.Eliminar)

		// Proveedores — administrador only
		proveedores := api.Group("/proveedores", admin)
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.GET("", proveedoresH.Listar)
			proveedores.GET("/:id", proveedoresH.ObtenerPorID)
			proveedores.PUT("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", proveedoresH.Eliminar)
		}

		// Ventas — both roles
		ventas := api.Group("/ventas", ambos)
		{
			ventas.POST("", ventasH.Registrar)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.ObtenerPorID)
			ventas.GET("/:id/boleta", ventasH.Boleta)
		}

		// Pedidos — administrador manages supplier orders
		pedidos := api.Group("/pedidos", admin)
		{
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.ObtenerPorID)
			pedidos.PUT("/:id/estado", pedidosH.ActualizarEstado)
		}

		// Dashboard — both roles
		api.GET("/dashboard", ambos, dashboardH.Resumen)
		api.GET("/dashboard/alertas", ambos, dashboardH.Alertas)
		api.GET("/dashboard/estadisticas", ambos, dashboardH.Estadisticas)

		// Reportes — administrador only
		api.GET("/reportes/ventas", admin, reportesH.Ventas)
		api.GET("/reportes/inventario", admin, reportesH.Inventario)

		// Usuarios — administrador only
		usuarios := api.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
