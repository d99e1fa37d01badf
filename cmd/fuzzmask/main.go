package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazyhaar/fuzzmask/pkg/api"
	"github.com/hazyhaar/fuzzmask/pkg/policy"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

const version = "0.1.0"

type config struct {
	Addr       string `yaml:"addr"`
	LogLevel   string `yaml:"log_level"`
	PolicyFile string `yaml:"policy_file"`
	ContactsDB string `yaml:"contacts_db"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	case "contacts":
		cmdContacts(os.Args[2:])
	case "check":
		cmdCheck(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: fuzzmask <command>

Commands:
  serve      Start the HTTP server
  mcp        Serve MCP tools over stdio
  contacts   Manage the contact store (add, list, dupes)
  check      Transliterate, compare and censor from the command line
`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	cfg := loadConfig(*cfgPath, bootLogger())
	logger := newLogger(cfg.LogLevel)

	store := loadPolicies(cfg, logger)

	mcpSrv := server.NewMCPServer("fuzzmask", version, server.WithToolCapabilities(false))
	api.RegisterMCPTools(mcpSrv, store, logger)

	mux := http.NewServeMux()
	mux.Handle("/v1/", api.NewRouter(store, logger))
	mux.Handle("/mcp", server.NewStreamableHTTPServer(mcpSrv))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	// SIGHUP: hot reload policies.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading policies")
			if err := store.Reload(); err != nil {
				logger.Error("reload failed, keeping previous policies", "error", err)
			} else {
				logger.Info("policies reloaded", "path", store.Path())
			}
		}
	}()

	go func() {
		logger.Info("fuzzmask listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	cfg := loadConfig(*cfgPath, bootLogger())
	// stdout carries the protocol; logs go to stderr only.
	logger := newLogger(cfg.LogLevel)
	store := loadPolicies(cfg, logger)

	mcpSrv := server.NewMCPServer("fuzzmask", version, server.WithToolCapabilities(false))
	api.RegisterMCPTools(mcpSrv, store, logger)

	if err := server.ServeStdio(mcpSrv); err != nil {
		logger.Error("mcp stdio", "error", err)
		os.Exit(1)
	}
}

func loadPolicies(cfg config, logger *slog.Logger) *policy.Store {
	store := policy.NewStore(cfg.PolicyFile)
	if err := store.Load(); err != nil {
		logger.Error("failed to load policies", "error", err)
		os.Exit(1)
	}
	if cfg.PolicyFile == "" {
		logger.Info("using default policies")
	} else {
		logger.Info("policies loaded", "path", cfg.PolicyFile)
	}
	return store
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// bootLogger logs until the configured level is known.
func bootLogger() *slog.Logger {
	return newLogger("info")
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:       ":8421",
		LogLevel:   "info",
		ContactsDB: "contacts.db",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
