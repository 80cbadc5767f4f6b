package main

import (
	_ "github.com/UntamedK1ddo/internet-smart-bill-kenya/docs"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Internet Smart Bill Kenya API
// @version         1.0
// @description     ISP admin dashboard API (customers, packages, invoices, payments) with M-PESA STK Push.
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
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
