package router

import (
	"net/http"
	"time"

	"github.com/IgnacioMorard/AppServerTest/internal/config"
	"github.com/IgnacioMorard/AppServerTest/internal/handler"
	"github.com/IgnacioMorard/AppServerTest/internal/middleware"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"
	"github.com/IgnacioMorard/AppServerTest/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	productoRepo := repository.NewProductoRepository(db)
	transaccionRepo := repository.NewTransaccionRepository(db)
	egresoRepo := repository.NewEgresoRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	productoSvc := service.NewProductoService(productoRepo)
	transaccionSvc := service.NewTransaccionService(transaccionRepo)
	egresoSvc := service.NewEgresoService(egresoRepo)
	reporteSvc := service.NewReporteService(reporteRepo, egresoRepo)
	consolidadoSvc := service.NewConsolidadoService(transaccionRepo, egresoRepo, clienteRepo)
	seedSvc := service.NewSeedService(transaccionRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	transaccionesH := handler.NewTransaccionesHandler(transaccionSvc, reporteSvc)
	egresosH := handler.NewEgresosHandler(egresoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc, consolidadoSvc, rdb, time.Duration(cfg.ReportCacheTTL)*time.Second)
	seedH := handler.NewSeedHandler(seedSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running!")
	})
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	// Credentials travel as query parameters — the mobile client has always
	// issued GET /login?Username&Password.
	r.GET("/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/register", authH.Register)

	// Clients
	r.POST("/register-client", clientesH.Registrar)
	r.GET("/clients", clientesH.Listar)
	r.POST("/search-clients", clientesH.Buscar)
	r.POST("/updateSaldo", clientesH.UpdateSaldo)
	r.POST("/getLastLocation", clientesH.UltimaUbicacion)
	r.POST("/getClientData", clientesH.Obtener)
	r.POST("/updateClientData", clientesH.ActualizarData)
	r.PUT("/clients/:id", clientesH.ActualizarPorID)
	r.PUT("/clients/:id/status", clientesH.ActualizarStatus)

	// Products
	r.POST("/register-product", productosH.Registrar)
	r.GET("/products", productosH.ListarActivos)
	r.GET("/products/all", productosH.ListarTodos)
	r.PATCH("/update-product/:id", productosH.Actualizar)
	r.PATCH("/update-product-status/:id", productosH.ActualizarStatus)

	// Transactions and inventory
	r.POST("/registerTransaction", transaccionesH.Registrar)
	r.POST("/registerInventory", transaccionesH.RegistrarInventario)
	r.GET("/transactions", transaccionesH.Listar)
	r.GET("/inventory", transaccionesH.ListarInventario)
	r.GET("/inventory-summary", transaccionesH.ResumenInventario)

	// Expenses
	r.POST("/add-egreso", egresosH.Agregar)
	r.GET("/expenses", egresosH.Listar)

	// Reports
	r.GET("/report", reportesH.Reporte)
	r.GET("/consolidated-report", reportesH.Consolidado)

	// Users (public listing, per the mobile client contract)
	r.GET("/users", usuariosH.Listar)

	// Administration — JWT required, hierarchy 0 (admin) only
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	admin := r.Group("/", jwtMW, middleware.RequireHierarchy(0))
	{
		admin.GET("/user-management", usuariosH.Listar)
		admin.PUT("/user-management/update/:id", usuariosH.Actualizar)
		admin.PUT("/user-management/status/:id", usuariosH.ActualizarStatus)
		admin.PUT("/user-management/password/:id", usuariosH.ActualizarPassword)
		admin.POST("/populate-test-data", seedH.Populate)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
