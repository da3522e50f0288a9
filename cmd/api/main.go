package main

import (
	_ "portail_immigration/docs"
	"portail_immigration/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Portail immigration API
// @version         1.0
// @description     Immigration case portal: case progress, documents and permanent residence dependents, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
