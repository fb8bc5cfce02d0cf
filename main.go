package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/web-calc-demo/modules/analytics"
	"github.com/example/web-calc-demo/modules/calculator"
	"github.com/example/web-calc-demo/modules/httpserver"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Configuration from environment
	port := getEnv("PORT", "8080")
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://%s:%s/", outboundIP(), port)
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	logger := app.Logger()

	calcModule := calculator.NewModule(logger)
	analyticsModule := analytics.NewModule(logger)
	httpModule := httpserver.NewModule(":"+port, baseURL, calcModule, analyticsModule, logger)

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	app.Register(analyticsModule) // Event consumer
	app.Register(calcModule)      // Core domain + event emitter
	app.Register(httpModule)      // Driving adapter (Fiber HTTP server)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(baseURL, port)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(baseURL, port string) {
	log.Println("")
	log.Printf("Web calc started on %s", baseURL)
	log.Println("")
	log.Printf("Endpoints (http://localhost:%s):", port)
	log.Println("  GET /<op>/<value1>/<value2> - Compute, op in {add, subtract, multiply, divide}")
	log.Println("  GET /                       - Usage page")
	log.Println("  GET /health                 - Health check")
	log.Println("  GET /api/v1/analytics       - Calculation tally")
	log.Println("")
	log.Printf("Example: %smultiply/3/5 returns 15", baseURL)
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// outboundIP discovers the address this host uses for outbound traffic.
// The UDP dial never sends a packet; it only asks the kernel to pick the
// source address for the default route.
func outboundIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "localhost"
	}
	defer conn.Close()

	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "localhost"
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
