package presentation

import (
	"context"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	syncsvc "github.com/metadata-gateway/federation-sync/internal/pkg/application/services/sync"
	"github.com/metadata-gateway/federation-sync/internal/pkg/presentation/handlers"
)

type API interface {
	Start(port string) error
}

type syncAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, syncer syncsvc.SyncService) API {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	r.Use(otelchi.Middleware("federation-sync", otelchi.WithChiRoutes(r)))

	a := &syncAPI{
		router: r,
		log:    log,
	}

	r.Post("/api/sync", handlers.NewTriggerSyncHandler(log, syncer))

	a.addProbeHandlers(r)

	return a
}

func (a *syncAPI) Start(port string) error {
	a.log.Info().Msgf("Starting federation-sync on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *syncAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
