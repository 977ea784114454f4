// Command animal-factd runs the animal fact HTTP service.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cecil-the-coder/animal-fact-kit/internal/httpclient"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/backend"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/config"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/facts"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/registry"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Cannot read config: %v", err)
	}

	client := httpclient.New(httpclient.Config{
		Timeout: cfg.Facts.UpstreamTimeout,
	})

	reg := registry.New()
	if err := registry.RegisterDefaultProviders(reg, client, cfg.Facts.UpstreamOverrides()); err != nil {
		log.Fatalf("Failed to register providers: %v", err)
	}

	service := facts.NewService(reg)
	server := backend.NewServer(cfg, service, reg)

	shutdown := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		close(shutdown)
	}()

	if err := server.ListenAndServeWithGracefulShutdown(shutdown); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}
