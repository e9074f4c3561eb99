package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/drodenkirchen/rio/pkg/snapshot"
	"github.com/drodenkirchen/rio/pkg/source"
)

// maxReportBytes caps the accepted report body. Even very large component
// trees stay well below this.
const maxReportBytes = 16 << 20

// listenCommand creates the listen command: an HTTP endpoint clients can
// push layout reports to. Each report is stored in the snapshot store and
// can then be validated offline with check --snapshot or --replay.
func (c *CLI) listenCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Receive layout reports pushed by clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			defer store.Close()
			return serveReports(cmd.Context(), addr, store)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8556", "address to listen on")

	return cmd
}

func serveReports(ctx context.Context, addr string, store snapshot.Store) error {
	logger := log.FromContext(ctx)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Post(source.DebugLayoutPath, handleReport(store))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		// Hand the logger-carrying context down to request handlers.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleReport decodes a pushed snapshot and stores it. The scene query
// parameter selects the store key so a later check --replay finds it.
func handleReport(store snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logger := log.FromContext(req.Context())

		body, err := io.ReadAll(io.LimitReader(req.Body, maxReportBytes))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}

		snap, err := source.DecodeSnapshot(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		key := "push:" + req.RemoteAddr
		if scene := req.URL.Query().Get("scene"); scene != "" {
			key = "scene:" + scene
		}

		if err := store.Save(req.Context(), key, snap); err != nil {
			http.Error(w, "store report: "+err.Error(), http.StatusInternalServerError)
			return
		}

		logger.Info("Stored client report",
			"key", key,
			"records", len(snap.Records),
			"request_id", middleware.GetReqID(req.Context()))
		w.WriteHeader(http.StatusAccepted)
	}
}
