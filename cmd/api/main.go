package main

import (
	_ "policy_pricing/docs"
	"policy_pricing/internal/adapter/http/routes"
	"policy_pricing/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Policy Pricing API
// @version         1.0
// @description     Insurance policy pricing (BMI and surcharge rules) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	logging.Initialize(logging.ConfigFromEnv())
	defer logging.Sync()

	routes.Run()
}
