package routes

import (
	"policy_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathPolicies  = "/policies"
	PathProviders = "/providers"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addPolicyRoutes(rg *gin.RouterGroup, policyHandler *handlers.PolicyHandler) {
	policies := rg.Group(PathPolicies)
	{
		policies.POST("/quote", policyHandler.QuotePolicy)
		policies.POST("", policyHandler.CreatePolicy)
		policies.GET("/:policy_number", policyHandler.GetPolicy)
		policies.PUT("/:policy_number", policyHandler.UpdatePolicy)
		policies.DELETE("/:policy_number", policyHandler.DeletePolicy)
	}

	providers := rg.Group(PathProviders)
	{
		providers.GET("/:provider_name/policies", policyHandler.ListByProvider)
	}
}
