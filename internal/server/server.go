package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/akolanti/pdfreader/internal/adapter/utils"
	"github.com/akolanti/pdfreader/internal/config"
	"github.com/akolanti/pdfreader/pkg/logger_i"
)

var (
	server *http.Server

	// package-level so the shutdown goroutine never races the admin
	// server goroutine on logger initialization
	_logger = logger_i.NewLogger("Admin Server")
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	Group            *sync.WaitGroup
	CloseServices    context.CancelFunc
}

// CreateAdminServer serves health and metrics beside the stdio transport.
func CreateAdminServer(listenAddr string) {
	r := utils.GetRouter()

	r.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Admin server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Admin server crashed", "error :", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		if server != nil {
			server.SetKeepAlivesEnabled(false)

			if err := server.Shutdown(ctx); err != nil {
				_logger.Error("Could not shutdown gracefully: %s", err)
			}
		}

		//stop the periodic sweeper and close redis
		shutdownParams.CloseServices()
		shutdownParams.Group.Wait()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully shut down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
