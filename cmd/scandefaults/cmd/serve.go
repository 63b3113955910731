package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/scandefaults/internal/catalog"
	"github.com/MeKo-Tech/scandefaults/internal/server"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for the defaults API",
	Long: `Start an HTTP server that publishes the defaults registry and barcode
identities.

The server provides the following endpoints:
  GET  /health                               - Health check endpoint
  GET  /defaults                             - Defaults document (?format, ?locale, ?section)
  GET  /defaults/settings                    - Setting list (?group)
  GET  /defaults/settings/{name}             - Single setting
  GET  /defaults/presets/{family}/{preset}   - Preset-parameterized default
  POST /barcodes/hash                        - Barcode identity
  GET  /metrics                              - Prometheus metrics
  GET  /ws/session                           - WebSocket tracking session

Examples:
  scandefaults serve
  scandefaults serve --port 8080
  scandefaults serve --host 0.0.0.0 --port 3000 --deletion-delay-ms 500`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		host := cfg.Server.Host
		if cmd.Flags().Changed("host") {
			host, _ = cmd.Flags().GetString("host")
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		corsOrigin := cfg.Server.CORSOrigin
		if cmd.Flags().Changed("cors-origin") {
			corsOrigin, _ = cmd.Flags().GetString("cors-origin")
		}

		timeout := cfg.Server.TimeoutSec
		if cmd.Flags().Changed("timeout") {
			timeout, _ = cmd.Flags().GetInt("timeout")
		}

		shutdownTimeout := cfg.Server.ShutdownTimeout
		if cmd.Flags().Changed("shutdown-timeout") {
			shutdownTimeout, _ = cmd.Flags().GetInt("shutdown-timeout")
		}

		wsEnabled := cfg.Server.WebSocketEnabled
		if cmd.Flags().Changed("websocket") {
			wsEnabled, _ = cmd.Flags().GetBool("websocket")
		}

		deletionDelay := cfg.Tracking.DeletionDelay()
		if cmd.Flags().Changed("deletion-delay-ms") {
			ms, _ := cmd.Flags().GetInt("deletion-delay-ms")
			deletionDelay = time.Duration(ms) * time.Millisecond
		}

		capacity := cfg.Tracking.Capacity
		if cmd.Flags().Changed("capacity") {
			capacity, _ = cmd.Flags().GetInt("capacity")
		}

		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid port number: %d (must be between 1 and 65535)", port)
		}
		if timeout <= 0 {
			return fmt.Errorf("invalid timeout: %d (must be positive)", timeout)
		}

		serverConfig := server.Config{
			Host:             host,
			Port:             port,
			CORSOrigin:       corsOrigin,
			WebSocketEnabled: wsEnabled,
			DeletionDelay:    deletionDelay,
			CacheCapacity:    capacity,
			Registry:         catalog.Default(),
		}

		srv, err := server.NewServer(serverConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}
		defer func() { _ = srv.Close() }()

		mux := http.NewServeMux()
		srv.SetupRoutes(mux)

		httpServer := &http.Server{
			Addr:              serverConfig.Addr(),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       time.Duration(timeout) * time.Second,
			WriteTimeout:      time.Duration(timeout) * time.Second,
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go func() {
			slog.Info("Starting defaults server", "host", host, "port", port, "websocket", wsEnabled)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Server error", "error", err)
				cancel()
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			slog.Info("Received shutdown signal", "signal", sig.String())
		case <-ctx.Done():
			slog.Info("Context cancelled, initiating shutdown")
		}

		slog.Info("Starting graceful shutdown", "timeout", fmt.Sprintf("%ds", shutdownTimeout))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		} else {
			slog.Info("HTTP server shutdown completed")
		}

		if err := srv.Close(); err != nil {
			slog.Error("Server cleanup error", "error", err)
		}

		slog.Info("Graceful shutdown completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("host", "H", "localhost", "server host")
	serveCmd.Flags().IntP("port", "p", 8080, "server port")
	serveCmd.Flags().String("cors-origin", "*", "CORS allowed origins")
	serveCmd.Flags().Int("timeout", 30, "request timeout in seconds")
	serveCmd.Flags().Int("shutdown-timeout", 10, "shutdown timeout in seconds")
	serveCmd.Flags().Bool("websocket", true, "serve the /ws/session tracking endpoint")
	serveCmd.Flags().Int("deletion-delay-ms", 2000, "how long augmentations outlive their barcode (ms)")
	serveCmd.Flags().Int("capacity", 1024, "maximum identities held per tracking session")
}
