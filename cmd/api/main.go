package main

import (
	_ "campuspay/docs"
	"campuspay/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Campus Payments API
// @version         1.0
// @description     Payment verification and reconciliation service (payables + enrollments) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
