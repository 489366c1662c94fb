package router

import (
	"time"

	"floristeria/internal/config"
	"floristeria/internal/handler"
	"floristeria/internal/middleware"
	"floristeria/internal/repository"
	"floristeria/internal/service"
	"floristeria/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	arregloRepo := repository.NewArregloRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	ventaRepo := repository.NewVentaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo, ventaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo, compraRepo)
	catalogoSvc := service.NewCatalogoService(productoRepo, rdb)
	arregloSvc := service.NewArregloService(arregloRepo)
	compraSvc := service.NewCompraService(compraRepo, proveedorRepo, productoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, clienteRepo, arregloRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	productosH := handler.NewProductosHandler(catalogoSvc)
	arreglosH := handler.NewArreglosHandler(arregloSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	operadores := middleware.RequireRole(middleware.RolSuperadmin, middleware.RolStaff)
	lectores := middleware.RequireRole(middleware.RolSuperadmin, middleware.RolStaff, middleware.RolUsuario)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		// Clientes — staff operates, usuario can read
		v1.GET("/clientes", lectores, clientesH.ListarClientes)
		v1.GET("/clientes/buscar", operadores, clientesH.BuscarClientes)
		v1.GET("/clientes/:id", lectores, clientesH.ObtenerCliente)
		clientes := v1.Group("/clientes", operadores)
		{
			clientes.POST("", clientesH.CrearCliente)
			clientes.PUT("/:id", clientesH.ActualizarCliente)
			clientes.DELETE("/:id", clientesH.EliminarCliente)
		}

		// Proveedores
		v1.GET("/proveedores", lectores, proveedoresH.ListarProveedores)
		v1.GET("/proveedores/:id", lectores, proveedoresH.ObtenerProveedor)
		proveedores := v1.Group("/proveedores", operadores)
		{
			proveedores.POST("", proveedoresH.CrearProveedor)
			proveedores.PUT("/:id", proveedoresH.ActualizarProveedor)
			proveedores.DELETE("/:id", proveedoresH.EliminarProveedor)
		}

		// Catalogo de productos
		v1.GET("/productos", lectores, productosH.ListarProductos)
		v1.GET("/productos/buscar", operadores, productosH.BuscarProductos)
		v1.GET("/productos/:id", lectores, productosH.ObtenerProducto)
		productos := v1.Group("/productos", operadores)
		{
			productos.POST("", productosH.CrearProducto)
			productos.PUT("/:id", productosH.ActualizarProducto)
			productos.DELETE("/:id", productosH.EliminarProducto)
		}

		// Arreglos florales
		v1.GET("/arreglos", lectores, arreglosH.ListarArreglos)
		v1.GET("/arreglos/buscar", operadores, arreglosH.BuscarArreglos)
		v1.GET("/arreglos/:id", lectores, arreglosH.ObtenerArreglo)
		arreglos := v1.Group("/arreglos", operadores)
		{
			arreglos.POST("", arreglosH.CrearArreglo)
			arreglos.PUT("/:id", arreglosH.ActualizarArreglo)
			arreglos.DELETE("/:id", arreglosH.EliminarArreglo)
		}

		// Compras y ventas — staff only
		compras := v1.Group("/compras", operadores)
		{
			compras.POST("", comprasH.CrearCompra)
			compras.GET("", comprasH.ListarCompras)
			compras.GET("/:id", comprasH.ObtenerCompra)
			compras.PUT("/:id", comprasH.ActualizarCompra)
			compras.DELETE("/:id", comprasH.EliminarCompra)
		}

		ventas := v1.Group("/ventas", operadores)
		{
			ventas.POST("", ventasH.CrearVenta)
			ventas.GET("", ventasH.ListarVentas)
			ventas.GET("/:id", ventasH.ObtenerVenta)
			ventas.PUT("/:id", ventasH.ActualizarVenta)
			ventas.DELETE("/:id", ventasH.EliminarVenta)
		}

		// Usuarios — superadmin only
		usuarios := v1.Group("/usuarios", middleware.RequireRole(middleware.RolSuperadmin))
		{
			usuarios.POST("", usuariosH.CrearUsuario)
			usuarios.GET("", usuariosH.ListarUsuarios)
			usuarios.PUT("/:id", usuariosH.ActualizarUsuario)
			usuarios.DELETE("/:id", usuariosH.DesactivarUsuario)
			usuarios.POST("/:id/reactivar", usuariosH.ReactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
