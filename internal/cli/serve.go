package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/db"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/handlers"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the BV API over HTTP.",
		Long: `Serve BV computation, equipment lookup and stored validation runs as a
JSON API. Run endpoints are enabled when a store backend is configured.

Examples:
  mekbv serve --addr :8080
  mekbv serve --store-backend sqlite --cors-origin http://localhost:5173`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}

			var runs *handlers.RunsHandler
			if a.cfg.StoreBackend != config.NoneBackend {
				store, err := db.NewRunStore(a.cfg.StoreBackend, a.cfg.StoreConnect)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				runs = &handlers.RunsHandler{Store: store}
			}

			mux := handlers.NewMux(
				&handlers.BVHandler{Normalizer: e.normalizer, Calc: e.calc},
				&handlers.EquipmentHandler{Catalog: e.catalog, Normalizer: e.normalizer},
				runs,
			)
			srv := &http.Server{
				Addr:              a.v.GetString("addr"),
				Handler:           handlers.CORS(a.v.GetStringSlice("cors-origin"), handlers.Logging(a.logger, mux)),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("mekbv server listening", "addr", srv.Addr)
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().StringSlice("cors-origin", []string{"http://localhost:5173", "http://localhost:8080"}, "Origins allowed to call the API")
	mustBind(a.v.BindPFlags(cmd.Flags()))
	return cmd
}
