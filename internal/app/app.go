package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/config"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/network/router"
)

func Run(config config.Config) {
	// таймаута нет: зависший запрос оставляет заказ занятым
	backend := client.NewClient(config.Backend.BaseURL, &http.Client{}, client.NewRateLimiter(config.Backend.RequestRate))
	router := router.NewRouter(config, backend)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server", "address", config.Server.ListenAddr, "backend", config.Backend.BaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", "error", err)
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	router.Sessions.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", "error", err)
	}
	logger.Info("Server stopped")
}
