package routes

import (
	"os"
	_ "policy_pricing/docs" // swag-generated spec
	"policy_pricing/internal/adapter/http/handlers"
	"policy_pricing/internal/adapter/persistence/repository"
	"policy_pricing/internal/infrastructure/database"
	"policy_pricing/internal/infrastructure/logging"
	"policy_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	ddb := database.ConnectDynamoDB()
	policyUseCase := usecase.NewPolicyUseCase(repository.NewPolicyDynamoRepository(ddb))

	router := NewRouter(handlers.NewPolicyHandler(policyUseCase))

	addr := ":" + getenvDefault("PORT", defaultPort)
	logging.Logger.Info("starting policy pricing api", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logging.Logger.Fatal("failed to start the application", zap.Error(err))
	}
}

// NewRouter wires middlewares, swagger and the /v1 routes.
func NewRouter(policyHandler *handlers.PolicyHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPolicyRoutes(v1, policyHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.Logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logging.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
