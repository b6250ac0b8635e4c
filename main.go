package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/portfolio/internal/app"
)

// @title           Portfolio API
// @version         1.0
// @description     Portfolio site: home page, health check and contact form relay.
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8000
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
