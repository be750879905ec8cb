package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"interview-scheduler/internal/handler/api"
	"interview-scheduler/internal/handler/middleware"
	"interview-scheduler/internal/pkg/config"
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
	conflictHandler *api.ConflictHandler,
	interviewHandler *api.InterviewHandler,
	authMiddleware *middleware.AuthMiddleware,
	registry *prometheus.Registry,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, conflictHandler, interviewHandler, authMiddleware, registry)
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
	conflictHandler *api.ConflictHandler,
	interviewHandler *api.InterviewHandler,
	authMiddleware *middleware.AuthMiddleware,
	registry *prometheus.Registry,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		conflicts := apiGroup.Group("/conflicts")
		conflicts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(conflicts, []route{
				{Method: http.MethodPost, Path: "/check", Handler: conflictHandler.CheckConflicts},
			})
		}

		interviews := apiGroup.Group("/interviews")
		interviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(interviews, []route{
				{Method: http.MethodPost, Path: "", Handler: interviewHandler.CreateInterview},
				{Method: http.MethodPatch, Path: "/:id", Handler: interviewHandler.RescheduleInterview},
				{Method: http.MethodDelete, Path: "/:id", Handler: interviewHandler.CancelInterview},
				{Method: http.MethodGet, Path: "/:id", Handler: interviewHandler.GetInterview},
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
