package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"fullsco_api/config"
	mediasvc "fullsco_api/internal/api/media/service"
	"fullsco_api/internal/global"
	"fullsco_api/internal/logger"
	"fullsco_api/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// initLogger sets up logging from the LOG_* variables, which the env file has loaded by now
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// serve runs the Fiber app until ctx is cancelled, over TLS when configured
func serve(ctx context.Context, app *fiber.App, cfg *config.Configuration) error {
	log := logger.GetAppLogger()
	address := ":" + cfg.Address
	listenConfig := fiber.ListenConfig{
		GracefulContext:       ctx,
		ShutdownTimeout:       shutdownTimeout,
		DisableStartupMessage: cfg.Environment == "production",
	}

	if !cfg.EnableTLS {
		log.WithFields(map[string]any{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")
		return app.Listen(address, listenConfig)
	}

	certPath := config.ResolvePath(cfg.TLSCertFile)
	keyPath := config.ResolvePath(cfg.TLSKeyFile)
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return fmt.Errorf("load TLS certificate %s: %w", certPath, err)
	}

	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", address, err)
	}
	tlsListener := tls.NewListener(ln, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	})

	log.WithFields(map[string]any{
		"address": address,
		"cert":    certPath,
	}).Info("Starting server with HTTPS/TLS")
	return app.Listener(tlsListener, listenConfig)
}

func main() {
	cfg := initConfig()
	initLogger()
	defer logger.Close()
	log := logger.GetAppLogger()

	InitGlobal(cfg)

	stores, closeStores, err := InitRegistry(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	defer closeStores()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := InitDefaultData(ctx, stores, cfg); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	if cfg.MediaCleanup_Interval > 0 {
		mediaService, err := mediasvc.NewMediaService(stores, config.ResolvePath(cfg.UploadDir))
		if err != nil {
			log.Fatalf("Failed to initialize media service: %v", err)
		}
		go worker.NewMediaCleanupWorker(mediaService, cfg.MediaCleanup_Interval, cfg.MediaCleanup_Grace).Start(ctx)
	}

	app, err := InitFiberApp(cfg, stores)
	if err != nil {
		log.Fatalf("Failed to initialize HTTP server: %v", err)
	}
	log.WithField("collections", stores.Collections()).Debug("Routes registered")

	if err := serve(ctx, app, cfg); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	log.WithField("environment", global.ServerConfig.Environment).Info("Server stopped")
}
