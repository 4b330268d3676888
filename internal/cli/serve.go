package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	HTTPAdapter "github.com/anicla/anicla/internal/adapter/http"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().IntP("port", "p", 0, "Listen port (default: $ANICLA_PORT or 7891)")
	cmd.Flags().Int("max-upload-mb", 0, "Largest accepted upload in MB (default: $ANICLA_MAX_UPLOAD_MB or 200)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.healthCheck()

	server := HTTPAdapter.NewServer(ctx, HTTPAdapter.Deps{
		Pipeline:   a.pipeline,
		Settings:   a.settings,
		SettingsUI: a.settingsSvc,
		Console:    a.console,
		History:    a.entries,
		Thumbnails: a.library,
	}, a.bus, a.settings, a.cfg.MaxUploadSizeMB)

	addr := fmt.Sprintf("127.0.0.1:%d", a.cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute,
		IdleTimeout:       120 * time.Second,
		// Request contexts end with ctx, which closes open SSE streams.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info.Printf("anicla listening on http://%s (data=%s, store=%s)", addr, a.cfg.DataDir, a.cfg.Store)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn.Printf("http shutdown: %v", err)
		_ = httpServer.Close()
	}
	logger.Info.Printf("shutdown complete")
	return nil
}
