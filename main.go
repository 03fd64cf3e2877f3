package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glitchmart/config"
	"glitchmart/core"
	"glitchmart/database"
	"glitchmart/handlers"
	"glitchmart/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables and parse CLI flags
	config.ParseFlags()

	logFile, err := setupLogging(config.Settings.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Glitchmart starting up...")

	// Initialize database (migrates tables, seeds faults and catalog)
	if err := database.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize services
	service.InitServices(database.DB)

	// Wire the log emitter and incident builder into the handlers
	emitter := core.NewEmitter(
		config.Settings.LogSinkURL,
		config.Settings.LogSinkAPIKey,
		config.Settings.LogSinkIndex,
		time.Duration(config.Settings.LogSinkTimeoutMS)*time.Millisecond,
	)
	if !emitter.Configured() {
		log.Println("Log sink not configured; incident logs will be skipped")
	}
	handlers.Configure(emitter, core.NewIncidentBuilder())

	// Set Gin mode
	if config.Settings.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Direct Gin logs to the configured log file
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()
	gin.DisableConsoleColor()

	// Create router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	handlers.RegisterRoutes(r)

	// Find an available port
	port := findAvailablePort(config.Settings.Port)
	if port != config.Settings.Port {
		log.Printf("Default port %d is busy. Switched to %d", config.Settings.Port, port)
	}

	// Create HTTP server
	addr := fmt.Sprintf("0.0.0.0:%d", port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on http://127.0.0.1:%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for OS interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Received interrupt signal")

	log.Println("Glitchmart shutting down...")

	// Close database connection
	if err := database.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	// Gracefully shut down HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// findAvailablePort searches for an available port
func findAvailablePort(startPort int) int {
	for port := startPort; port < startPort+100; port++ {
		addr := fmt.Sprintf("0.0.0.0:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port
		}
	}
	log.Fatal("No available ports found")
	return startPort
}
