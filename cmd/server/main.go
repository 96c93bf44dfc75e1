package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/akolanti/pdfreader/internal/config"
	"github.com/akolanti/pdfreader/internal/data/artifactStore"
	"github.com/akolanti/pdfreader/internal/data/store"
	"github.com/akolanti/pdfreader/internal/data/sweeper"
	"github.com/akolanti/pdfreader/internal/domain/docModel"
	"github.com/akolanti/pdfreader/internal/extract"
	"github.com/akolanti/pdfreader/internal/handlers"
	"github.com/akolanti/pdfreader/internal/parser"
	"github.com/akolanti/pdfreader/internal/server"
	"github.com/akolanti/pdfreader/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	listenAddr   string
	artifactDir  string
	responseMode string
	retention    time.Duration
	sweeperGroup sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.AdminListenAddr, "admin server listen address")
	flag.StringVar(&artifactDir, "artifact-dir", artifactStore.DefaultDirectory(), "artifact staging directory")
	flag.StringVar(&responseMode, "response-mode", string(docModel.ModeStaged), "response shape: inline or staged")
	flag.DurationVar(&retention, "retention", config.RetentionWindow, "maximum artifact age before the sweeper reclaims it")
	flag.Parse()

	mode := docModel.ResponseMode(responseMode)
	if mode != docModel.ModeInline && mode != docModel.ModeStaged {
		logger.Error("Invalid response mode", "mode", responseMode)
		return
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	artifacts, err := artifactStore.New(artifactDir)
	if err != nil {
		logger.Error("Could not create artifact store", "error", err)
		return
	}

	//reclaim artifacts left behind by earlier runs
	removed := sweeper.Sweep(artifacts.Directory(), retention)
	logger.Info("Startup sweep complete", "removed", removed)

	sweeperGroup.Add(1)
	go sweeper.RunPeriodic(serviceContext, artifacts.Directory(), retention, config.SweepInterval, &sweeperGroup)

	//session registry: redis with in-memory fallback
	var sessions docModel.SessionStore
	if redisSessions := store.GetRedisSessionStore(serviceContext); redisSessions != nil {
		sessions = redisSessions
	} else {
		logger.Error("Redis session store is offline, using in-memory registry")
		sessions = store.InitInMemorySessionStore()
	}

	service := extract.NewService(artifacts, sessions, parser.Open, mode)
	handlers.InitToolHandler(service)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		Group:            &sweeperGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateAdminServer(listenAddr)

	mcpServer := mcp.NewServer(
		&mcp.Implementation{Name: config.ServerName, Version: config.ServerVersion},
		&mcp.ServerOptions{Instructions: config.Instructions},
	)
	handlers.RegisterTools(mcpServer)

	logger.Info("Starting PDF Reader MCP server", "mode", mode, "artifactDir", artifacts.Directory())
	if err := mcpServer.Run(serviceContext, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("MCP server stopped", "error", err)
	}

	//transport closed or signal received - drive the shutdown path either way
	select {
	case gracefulShutdown <- syscall.SIGTERM:
	default:
	}
	<-stopExecution
	logger.Info("Server stopped")
}
