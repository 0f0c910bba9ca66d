package v1

import (
	"net/http"

	"user-directory/config"
	"user-directory/internal/delivery/http/middleware"
	"user-directory/internal/delivery/http/response"
	"user-directory/internal/domain"
	"user-directory/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC  domain.ContactUsecase
	UserListUC domain.UserListUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	frontendURL := ""
	if deps.Config != nil {
		frontendURL = deps.Config.FrontendURL
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(frontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(metrics.Middleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewContactHandler(v1, deps.ContactUC)
	NewUserHandler(v1, deps.UserListUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
