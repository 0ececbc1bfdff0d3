package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digestlab/ai-digest/app/api"
	"github.com/digestlab/ai-digest/app/cfg"
	"github.com/digestlab/ai-digest/app/digest"
	"github.com/digestlab/ai-digest/app/feed"
	"github.com/digestlab/ai-digest/app/github"
	"github.com/digestlab/ai-digest/app/mcp"
	"github.com/digestlab/ai-digest/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help or version was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	registry := sources.Default()
	if appCfg.SourcesFile != "" {
		registry, err = sources.Load(appCfg.SourcesFile)
		if err != nil {
			slog.Error("Failed to load sources file", "path", appCfg.SourcesFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Source registry loaded from file", "path", appCfg.SourcesFile, "sources", registry.Len())
	} else {
		slog.Info("Using built-in source registry", "sources", registry.Len())
	}

	httpClient := &http.Client{}
	feedClient := feed.NewClient(httpClient, appCfg.UserAgent, appCfg.FeedTimeout)
	repoClient := github.NewClient(httpClient, appCfg.GitHubAPIURL, appCfg.GitHubToken, appCfg.SearchTimeout)

	service := digest.NewService(registry, feedClient, repoClient, appCfg.Workers)
	extractor := feed.NewContentExtractor(feedClient)

	server := mcp.NewServer(service, extractor, registry, appCfg.Version)

	switch appCfg.Transport {
	case "http":
		runHTTP(server, appCfg)
	default:
		runStdio(server)
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	// Logs must stay off stdout: the stdio transport owns it
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func runStdio(server *mcp.Server) {
	slog.Info("Serving MCP on stdio", "version", cfg.GetVersion())

	if err := server.ServeStdio(context.Background(), os.Stdin, os.Stdout); err != nil {
		slog.Error("Stdio transport error", "error", err)
		os.Exit(1)
	}
}

func runHTTP(server *mcp.Server, appCfg *cfg.Cfg) {
	handler := api.NewHandler(server, appCfg.Version)
	engine := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Serving MCP over HTTP", "port", appCfg.Port, "version", cfg.GetVersion())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
