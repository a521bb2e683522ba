package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for link classification",
	Long: `Start an HTTP server that classifies links for other programs.

Examples:
  vlink serve              # Start server on port 8080
  vlink serve -p 9000      # Start server on port 9000

API Endpoints:
  GET  /api/health          # Health check
  POST /api/classify        # Classify one URL
  POST /api/extract         # Extract links from text
  POST /api/format          # Format size/duration/bitrate
  POST /api/login-required  # Check a downloader error message
  GET  /api/i18n            # Translations for the server language
  GET  /metrics             # Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (default: 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg := config.LoadOrDefault()

	// flag > config > default
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.NewServer(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Stop(ctx)
	}()

	return srv.Start()
}
