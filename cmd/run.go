package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/whereql/internal/config"
	"github.com/kubev2v/whereql/internal/handlers"
	"github.com/kubev2v/whereql/internal/server"
	"github.com/kubev2v/whereql/internal/services"
	"github.com/kubev2v/whereql/pkg/scheduler"
)

const shutdownTimeout = 10 * time.Second

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Serve the document query API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "Port of the HTTP server")
	flags.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode: dev serves HTTP, prod serves HTTPS with a self-signed certificate")
	flags.IntVar(&cfg.Query.NumWorkers, "num-workers", cfg.Query.NumWorkers, "Number of queries of one WHERE clause executed concurrently")

	return cmd
}

func run(ctx context.Context, cfg *config.Configuration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	sched := scheduler.NewScheduler(cfg.Query.NumWorkers)
	defer sched.Close()

	h := handlers.New(services.NewQueryService(st, sched), services.NewDocumentService(st))

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		handlers.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		zap.S().Named("run").Infow("server started", "port", cfg.Server.HTTPPort, "mode", cfg.Server.ServerMode, "store", cfg.Store.Path)
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zap.S().Named("run").Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	srv.Stop(shutdownCtx)

	return nil
}
