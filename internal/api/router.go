package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"escp2render/internal/api/middleware"
	"escp2render/internal/config"
	"escp2render/internal/ws"
)

// Router assembles escp2renderd's gin engine, following the teacher's
// routes.Router.SetupRouter/addMiddleware/addRoutes three-step shape.
type Router struct {
	config  *config.Config
	logger  *zap.Logger
	handler *Handler
	ws      *ws.Handler
}

// NewRouter builds a Router from its dependencies.
func NewRouter(cfg *config.Config, logger *zap.Logger, handler *Handler, wsHandler *ws.Handler) *Router {
	return &Router{config: cfg, logger: logger, handler: handler, ws: wsHandler}
}

// Setup creates and configures the gin engine: mode, middleware, routes.
func (r *Router) Setup() *gin.Engine {
	if r.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	r.addMiddleware(engine)
	r.addRoutes(engine)
	return engine
}

func (r *Router) addMiddleware(engine *gin.Engine) {
	engine.Use(middleware.Recovery(r.logger))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logging(r.logger))
	engine.Use(middleware.CORS())
}

func (r *Router) addRoutes(engine *gin.Engine) {
	engine.GET("/health", r.health)

	v1 := engine.Group("/v1")
	{
		v1.POST("/render", r.handler.Render)
		v1.POST("/print", r.handler.Print)
		v1.GET("/jobs/:job_id", r.handler.GetJob)
		v1.GET("/samples/:name", r.handler.RenderSample)
	}

	wsGroup := engine.Group("/ws")
	r.ws.RegisterRoutes(wsGroup)

	r.logger.Info("routes configured")
}

func (r *Router) health(c *gin.Context) {
	Success(c, 200, "ok", gin.H{"status": "up"})
}
