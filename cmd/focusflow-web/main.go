package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"focusflow/internal/core/timer"
	"focusflow/internal/platform"
	"focusflow/internal/storage"
	"focusflow/internal/ui/web"
)

const frontendName = "focusflow-web"

func main() {
	guard, err := platform.AcquireSingleInstance(frontendName)
	if err != nil {
		log.Fatal("another web instance is running", "err", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings()
	if err != nil {
		log.Warn("settings unavailable, using defaults", "err", err)
	}
	options, err := storage.LoadAppOptions()
	if err != nil {
		log.Warn("runtime options unavailable, using defaults", "err", err)
	}

	engine := timer.NewEngine(settings.TimerConfig(), timer.Options{TickInterval: options.TickInterval})
	engine.Run()
	defer engine.Stop()

	server := web.NewServer(engine, settings, storage.SaveSettings)
	server.Run()

	httpServer := &http.Server{
		Addr:    options.ListenAddr,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", "err", err)
		}
	}()

	log.Info("web front-end listening", "addr", options.ListenAddr,
		"work_minutes", settings.WorkMinutes, "break_minutes", settings.BreakMinutes)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("serve", "err", err)
	}
}
