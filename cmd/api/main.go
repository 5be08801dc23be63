package main

import (
	_ "github.com/web-source-dev/Vos-backend-sub000/docs"
	"github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Vehicle Purchase Case API
// @version         1.0
// @description     Used-vehicle purchase case workflow (intake, inspection, quote, paperwork, completion) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the staff or admin API key.

func main() {
	routes.Run()
}
