// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZORO77a/Lockey/controller"
	"github.com/ZORO77a/Lockey/middleware"
	"github.com/ZORO77a/Lockey/model"
)

type Options struct {
	JWTSecret         string
	RateLimit         middleware.LimitFunc
	RateLimitRequests int
	RateLimitDuration time.Duration
	MaxUploadSize     int64
}

func SetupRouter(controllers *controller.Controllers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	if opts.RateLimit != nil {
		router.Use(middleware.RateLimiter(opts.RateLimit, opts.RateLimitRequests, opts.RateLimitDuration))
	}
	if opts.MaxUploadSize > 0 {
		// Multipart parts beyond this spill to temp files instead of memory.
		router.MaxMultipartMemory = opts.MaxUploadSize
	}

	api := router.Group("/api/v1", middleware.Authenticate(opts.JWTSecret))
	admin := api.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	employee := api.Group("/employee", middleware.RequireRole(model.RoleEmployee))

	controllers.PolicyConfig.RegisterRoutes(admin)
	controllers.Bypass.RegisterRoutes(admin, employee)
	controllers.File.RegisterRoutes(admin, employee)
	controllers.Audit.RegisterRoutes(admin, employee)

	return router
}
