package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"member-rewards/internal/handler/api"
	"member-rewards/internal/handler/middleware"
	"member-rewards/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, memberHandler *api.MemberHandler, pointsHandler *api.PointsHandler, couponsHandler *api.CouponsHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, memberHandler, pointsHandler, couponsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, memberHandler *api.MemberHandler, pointsHandler *api.PointsHandler, couponsHandler *api.CouponsHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		members := apiGroup.Group("/members")
		{
			addRoutes(members, []route{
				{Method: http.MethodPost, Path: "/register", Handler: memberHandler.Register},
				{Method: http.MethodPost, Path: "/verify", Handler: memberHandler.Verify},
			})
		}

		points := apiGroup.Group("/points")
		points.Use(authMiddleware.RequireAuth())
		{
			addRoutes(points, []route{
				{Method: http.MethodPost, Path: "/add", Handler: pointsHandler.AddPoints},
				{Method: http.MethodGet, Path: "/my-points", Handler: pointsHandler.GetMyPoints},
				{Method: http.MethodGet, Path: "/:memberId", Handler: pointsHandler.GetMemberPoints},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "/available", Handler: couponsHandler.ListMyAvailable},
				{Method: http.MethodGet, Path: "/available/:memberId", Handler: couponsHandler.ListAvailableForMember},
				{Method: http.MethodPost, Path: "/redeem", Handler: couponsHandler.Redeem},
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
