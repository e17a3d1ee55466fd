package handlers

import (
	"github.com/SscSPs/mero_khata/cmd/docs"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterBackendRoutes sets up all backend routes, injecting dependencies using interfaces
func RegisterBackendRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)
	r.GET("/", getHome)

	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// RegisterStoreRoutes sets up the remote document endpoint routes
func RegisterStoreRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	r.GET("/health", getHealth)

	registerStoreDocumentRoutes(r.Group("/api"), services.Store)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerDocumentRoutes(v1, services.Gateway)
	registerCustomerRoutes(v1, services.Khata, services.Reporting, services.Export)
	registerExpenseRoutes(v1, services.Khata, services.Reporting)
	registerSettingsRoutes(v1, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
