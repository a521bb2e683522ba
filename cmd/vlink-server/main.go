package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/version"
	"github.com/guiyumin/vlink/internal/server"
)

func main() {
	port := flag.Int("port", 0, "HTTP listen port (default: 8080)")
	apiKey := flag.String("api-key", "", "require this X-API-Key on API requests")
	showVersion := flag.Bool("version", false, "show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("vlink-server %s\n", version.Version)
		return
	}

	cfg := config.LoadOrDefault()

	// flag > config > default
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *apiKey != "" {
		cfg.Server.APIKey = *apiKey
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

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
