package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	pool *pgxpool.Pool,
	catalogHandler *api.CatalogHandler,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, pool, catalogHandler, availabilityHandler, appointmentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	pool *pgxpool.Pool,
	catalogHandler *api.CatalogHandler,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
) {
	engine.GET("/health", healthCheck(pool))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/services", Handler: catalogHandler.ListServices},
		{Method: http.MethodGet, Path: "/professionals", Handler: catalogHandler.ListProfessionals},
		{Method: http.MethodGet, Path: "/professionals/:id/availability", Handler: availabilityHandler.GetAvailability},
		{Method: http.MethodPost, Path: "/appointments", Handler: appointmentHandler.CreateAppointment},
		{Method: http.MethodPatch, Path: "/appointments/:id/cancel", Handler: appointmentHandler.CancelAppointment},
	})
}

// @Summary Health check
// @Description Check that the service and its store are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func healthCheck(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var one int
		if err := pool.QueryRow(c.Request.Context(), "SELECT 1").Scan(&one); err != nil {
			c.JSON(http.StatusServiceUnavailable, httperr.Response{Success: false, Error: "Store unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
