package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler()
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open serves the API on addr until an interrupt arrives.
func Open(addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, idleConnsClosed)
	<-idleConnsClosed
}

func idle(interval time.Duration) {
	idleError("agent idle complete:", agentIdle(interval))
	idleError("game idle complete:", gameIdle())
}

func runIdle(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			idle(interval)
		}
	}
}

// Close releases the game store.
func Close() error {
	if store == nil {
		return nil
	}
	return store.close()
}

func main() {
	log.SetHandler(cli.New(os.Stderr))

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.WithError(err).Fatal("failed to parse configuration")
	}
	log.SetLevel(cfg.logLevel)
	opponent = newAgent(cfg.percentile)

	if cfg.selfplay {
		selfplay(os.Stdout, opponent, cfg.selfplayMoves, cfg.difficulty)
		return
	}

	store, err = openStore(cfg)
	if err != nil {
		log.WithError(err).WithField("store", cfg.store).Fatal("failed to open game store")
	}
	defer func() {
		idleError("close server:", Close())
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runIdle(ctx, cfg.idle)

	log.WithField("addr", cfg.addr).WithField("store", cfg.store).Info("serving")
	Open(cfg.addr)
}
