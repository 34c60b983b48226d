package cli

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridfit/pkg/api"
	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/observability"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the placement HTTP API",
		Long: `Run the placement HTTP API.

Endpoints:
  GET  /healthz             liveness and version
  POST /v1/placements       find the best position for a widget
  GET  /v1/catalog          list widget types
  GET  /v1/catalog/{type}   show one widget type`,
		Example: `  gridfit serve
  gridfit serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			return c.serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config)")

	return cmd
}

// serve listens on addr until ctx is cancelled, then drains connections.
func (c *CLI) serve(ctx context.Context, addr string) error {
	readTimeout, err := c.cfg.ReadTimeout()
	if err != nil {
		return err
	}

	observability.SetPlacementHooks(logHooks{logger: c.Logger})
	defer observability.Reset()

	srv := &http.Server{
		Addr:        addr,
		Handler:     api.NewServer(c.cfg.Placer(), c.cfg.Catalog(), c.Logger).Handler(),
		ReadTimeout: readTimeout,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr, "columns", c.cfg.Grid.Columns)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	return nil
}

// logHooks reports placement events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnPlacement(_ context.Context, ev observability.PlacementEvent) {
	h.logger.Debug("placement",
		"source", ev.Source,
		"w", ev.Width, "h", ev.Height,
		"widgets", ev.Widgets,
		"at", [2]int{ev.X, ev.Y},
		"fallback", ev.Fallback,
		"took", ev.Duration)
}
