package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	syncsvc "github.com/metadata-gateway/federation-sync/internal/pkg/application/services/sync"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("federation-sync/api")

// NewTriggerSyncHandler accepts a scheduler trigger and starts a sync pass
// for the addressed publisher. The pass runs in the background; the
// trigger is acknowledged as soon as the publisher id has been decoded.
func NewTriggerSyncHandler(logger zerolog.Logger, syncer syncsvc.SyncService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var err error
		ctx, span := tracer.Start(r.Context(), "trigger-sync")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		trigger := struct {
			Data string `json:"data"`
		}{}

		err = json.NewDecoder(r.Body).Decode(&trigger)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode trigger body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		publisherID, decodeErr := base64.StdEncoding.DecodeString(trigger.Data)
		if decodeErr != nil || len(publisherID) == 0 {
			err = fmt.Errorf("trigger carries no valid publisher id")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// the pass outlives the request, so it gets its own context
		passCtx := logging.NewContextWithLogger(context.Background(), log)

		go func() {
			syncErr := syncer.Sync(passCtx, string(publisherID))
			if syncErr != nil {
				log.Error().Err(syncErr).Msgf("sync failed for publisher %s", string(publisherID))
			}
		}()

		w.WriteHeader(http.StatusOK)
	})
}
