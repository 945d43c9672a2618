package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/engine"
	"github.com/brightpath/tutor/internal/httpapi"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the engine's HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Logging.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if err := store.EnsureDir(cfg.Database.Path); err != nil {
		return fmt.Errorf("prepare database dir: %w", err)
	}
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	content, err := engine.NewContentSource(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("content source: %w", err)
	}

	eng := engine.New(cfg, engine.Stores{
		Mastery:   st.MasteryRepo(),
		Responses: st.ResponseRepo(),
		Sessions:  st.SessionRepo(),
		Plans:     st.PlanRepo(),
	}, curriculum.Default(), content, nil, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpapi.NewRouter(eng, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Server.Addr, "db", cfg.Database.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	case <-ctx.Done():
		log.Info("shutting down", "reason", "context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
