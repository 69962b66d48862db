package main

import (
	_ "visionpos/docs"
	"visionpos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           VisionPOS Quote Workflow API
// @version         1.0
// @description     Quote lifecycle and signature workflow engine backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
