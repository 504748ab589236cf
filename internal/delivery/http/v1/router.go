package v1

import (
	"net/http"

	"contact-relay-backend/config"
	"contact-relay-backend/internal/delivery/http/middleware"
	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const greeting = "Hello from the backend!"

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares. Request id and logging come first so rejected
	// origins are still logged. ErrorHandler wraps CORS to render its 403.
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins))

	r.GET("/", middleware.SecurityHeadersMiddleware(), HandleRoot)

	// Swagger UI needs scripts, so it stays outside the strict CSP group
	r.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.SecurityHeadersMiddleware())
	api.Use(middleware.BodyLimit(deps.Config.MaxBodyBytes))
	NewContactHandler(api, deps.ContactUC)

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound(domain.MsgNotFound))
	})

	return r
}

// HandleRoot godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "Hello from the backend!"
// @Router       / [get]
func HandleRoot(c *gin.Context) {
	c.String(http.StatusOK, greeting)
}
