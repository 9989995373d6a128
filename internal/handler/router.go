package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dropdeck/internal/handler/api"
	"dropdeck/internal/handler/middleware"
	"dropdeck/internal/pkg/config"
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
	dropHandler *api.DropHandler,
	settingsHandler *api.SettingsHandler,
	catalogHandler *api.CatalogHandler,
	eventHandler *api.EventHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, dropHandler, settingsHandler, catalogHandler, eventHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	dropHandler *api.DropHandler,
	settingsHandler *api.SettingsHandler,
	catalogHandler *api.CatalogHandler,
	eventHandler *api.EventHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireSession())
	{
		drops := apiGroup.Group("/drops")
		{
			addRoutes(drops, []route{
				{Method: http.MethodGet, Path: "", Handler: dropHandler.List},
				{Method: http.MethodPost, Path: "", Handler: dropHandler.Create},
				{Method: http.MethodDelete, Path: "", Handler: dropHandler.Delete},
				{Method: http.MethodGet, Path: "/active", Handler: dropHandler.Active},
				{Method: http.MethodPost, Path: "/schedule", Handler: dropHandler.Schedule},
				{Method: http.MethodDelete, Path: "/queued", Handler: dropHandler.ClearQueued},
				{Method: http.MethodDelete, Path: "/completed", Handler: dropHandler.ClearCompleted},
				{Method: http.MethodPost, Path: "/stop-and-clear", Handler: dropHandler.StopAndClear},
			})
		}

		settings := apiGroup.Group("/settings")
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: settingsHandler.Get},
				{Method: http.MethodPut, Path: "", Handler: settingsHandler.Update},
			})
		}

		collections := apiGroup.Group("/collections")
		{
			addRoutes(collections, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.Collections},
				{Method: http.MethodGet, Path: "/:id/products", Handler: catalogHandler.CollectionProducts},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/events", Handler: eventHandler.Stream},
		})
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
