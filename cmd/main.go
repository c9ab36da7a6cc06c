// cmd/main.go
package main

import (
	"card-wallet-api/app"

	_ "card-wallet-api/docs"
)

// @title           Card Wallet API
// @version         1.0
// @description     REST API for managing user accounts, virtual payment cards and per-card transaction ledgers.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
