package router

import (
	"time"

	"magictravel/internal/config"
	"magictravel/internal/handler"
	"magictravel/internal/middleware"
	"magictravel/internal/repository"
	"magictravel/internal/service"
	"magictravel/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// magicTravelID is the operator agency id resolved at startup.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, magicTravelID uuid.UUID) (*gin.Engine, service.LiquidacionService) {
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
	agenciaRepo := repository.NewAgenciaRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	estadoRepo := repository.NewEstadoRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	rutaActivadaRepo := repository.NewRutaActivadaRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	egresoRepo := repository.NewEgresoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	precioSvc := service.NewPrecioService(servicioRepo)
	capacidadSvc := service.NewCapacidadService(rutaActivadaRepo, reservaRepo)
	transferenciaSvc := service.NewTransferenciaService(reservaRepo, magicTravelID)
	pagoSvc := service.NewPagoService(reservaRepo, cajaRepo, estadoRepo)
	reservaSvc := service.NewReservaService(reservaRepo, rutaActivadaRepo, estadoRepo, precioSvc, capacidadSvc, dispatcher)
	liquidacionSvc := service.NewLiquidacionService(
		rutaActivadaRepo, egresoRepo, estadoRepo,
		transferenciaSvc, pagoSvc, capacidadSvc,
		dispatcher, cfg.ReportesEmail)
	catalogoSvc := service.NewCatalogoService(agenciaRepo, vehiculoRepo, egresoRepo, cajaRepo, rutaActivadaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	reservasH := handler.NewReservasHandler(reservaSvc, pagoSvc, transferenciaSvc)
	preciosH := handler.NewPreciosHandler(precioSvc)
	rutasH := handler.NewRutasActivadasHandler(capacidadSvc, liquidacionSvc, reservaSvc)
	liquidacionesH := handler.NewLiquidacionesHandler(liquidacionSvc)
	transferenciasH := handler.NewTransferenciasHandler(transferenciaSvc)
	catalogosH := handler.NewCatalogosHandler(catalogoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: vendedor, supervisor, administrador — declared per-endpoint
		todos := middleware.RequireRole("vendedor", "supervisor", "administrador")
		gerencia := middleware.RequireRole("supervisor", "administrador")
		admin := middleware.RequireRole("administrador")

		reservas := v1.Group("/reservas")
		{
			reservas.POST("", todos, reservasH.Crear)
			reservas.GET("/:id", todos, reservasH.Obtener)
			reservas.PUT("/:id", todos, reservasH.Actualizar)
			reservas.DELETE("/:id", gerencia, reservasH.Eliminar)
			reservas.GET("/:id/pago", todos, reservasH.Pago)
			reservas.POST("/:id/confirmar-pago", todos, reservasH.ConfirmarPago)
			reservas.GET("/:id/transferencia", todos, reservasH.Transferencia)
		}

		v1.GET("/servicios/:id/precio", todos, preciosH.Desglose)

		rutas := v1.Group("/rutas-activadas")
		{
			rutas.GET("/:id/disponibilidad", todos, rutasH.Disponibilidad)
			rutas.GET("/:id/reservas", todos, rutasH.Reservas)
			rutas.GET("/:id/liquidacion", gerencia, rutasH.Liquidacion)
			rutas.POST("/:id/liquidar", gerencia, rutasH.Liquidar)
			rutas.GET("/:id/egresos", todos, catalogosH.ListarEgresos)
		}

		liq := v1.Group("/liquidaciones", gerencia)
		{
			liq.GET("/pendientes", liquidacionesH.Pendientes)
			liq.POST("/actualizar-estados", liquidacionesH.ActualizarEstados)
		}

		v1.GET("/transferencias/:escenario", gerencia, transferenciasH.PorEscenario)

		agencias := v1.Group("/agencias")
		{
			agencias.GET("", todos, catalogosH.ListarAgencias)
			agencias.POST("", admin, catalogosH.CrearAgencia)
			agencias.PUT("/:id", admin, catalogosH.ActualizarAgencia)
		}

		vehiculos := v1.Group("/vehiculos")
		{
			vehiculos.GET("", todos, catalogosH.ListarVehiculos)
			vehiculos.POST("", admin, catalogosH.CrearVehiculo)
			vehiculos.PUT("/:id", admin, catalogosH.ActualizarVehiculo)
		}

		egresos := v1.Group("/egresos", gerencia)
		{
			egresos.POST("", catalogosH.CrearEgreso)
			egresos.DELETE("/:id", catalogosH.EliminarEgreso)
		}

		v1.GET("/cajas", gerencia, catalogosH.ListarCajas)

		usuarios := v1.Group("/usuarios", admin)
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

	return r, liquidacionSvc
}
