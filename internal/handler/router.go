package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"turfbook/internal/handler/api"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/config"
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
	turfHandler *api.TurfHandler,
	scheduleHandler *api.ScheduleHandler,
	bookingHandler *api.BookingHandler,
	squadHandler *api.SquadHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, turfHandler, scheduleHandler, bookingHandler, squadHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	turfHandler *api.TurfHandler,
	scheduleHandler *api.ScheduleHandler,
	bookingHandler *api.BookingHandler,
	squadHandler *api.SquadHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/calendar", Handler: scheduleHandler.Calendar},
			{Method: http.MethodGet, Path: "/turfs", Handler: turfHandler.List},
			{Method: http.MethodGet, Path: "/turfs/:id", Handler: turfHandler.Get},
			{Method: http.MethodGet, Path: "/turfs/:id/slots", Handler: scheduleHandler.Slots},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: bookingHandler.Quote},
				{Method: http.MethodPost, Path: "/checkout", Handler: bookingHandler.Checkout},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			})
		}

		squads := apiGroup.Group("/squads")
		squads.Use(authMiddleware.RequireAuth())
		{
			addRoutes(squads, []route{
				{Method: http.MethodPost, Path: "", Handler: squadHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: squadHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: squadHandler.Resize},
				{Method: http.MethodDelete, Path: "/:id", Handler: squadHandler.Discard},
				{Method: http.MethodPost, Path: "/:id/players", Handler: squadHandler.AddPlayer},
				{Method: http.MethodPatch, Path: "/:id/players/:playerId", Handler: squadHandler.RenamePlayer},
				{Method: http.MethodDelete, Path: "/:id/players/:playerId", Handler: squadHandler.RemovePlayer},
				{Method: http.MethodPost, Path: "/:id/matchmaking", Handler: squadHandler.RequestPlayers},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
