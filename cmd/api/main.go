package main

import (
	_ "smart_laundry/docs"
	"smart_laundry/internal/adapter/http/routes"
	"smart_laundry/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Smart Laundry API
// @version         1.0
// @description     Laundry shop orders, expenses, financial summary and WhatsApp notifications backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	config.ConfigureLogger(cfg)

	routes.Run(cfg)
}
