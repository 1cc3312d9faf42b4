package main

import (
	"context"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"

	"github.com/metadata-gateway/federation-sync/internal/pkg/application/services/custodian"
	syncsvc "github.com/metadata-gateway/federation-sync/internal/pkg/application/services/sync"
	"github.com/metadata-gateway/federation-sync/internal/pkg/application/transform"
	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"github.com/metadata-gateway/federation-sync/internal/pkg/infrastructure/notifications"
	"github.com/metadata-gateway/federation-sync/internal/pkg/infrastructure/repositories/database"
	"github.com/metadata-gateway/federation-sync/internal/pkg/infrastructure/secrets"
	"github.com/metadata-gateway/federation-sync/internal/pkg/presentation"
)

func main() {
	serviceName := "federation-sync"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")
	schemaVersions := env.GetVariableOrDefault(log, "SUPPORTED_SCHEMA_VERSIONS", "2.0.0,2.0.2,2.1.0")
	sendgridAPIKey := env.GetVariableOrDie(log, "SENDGRID_API_KEY", "API key used when sending notification mails")
	emailSender := env.GetVariableOrDefault(log, "EMAIL_SENDER", "noreply@healthdatagateway.org")

	db, err := database.NewDatabaseConnection(database.NewPostgreSQLConnector())
	if err != nil {
		log.Fatal().Msgf("failed to connect to database, shutting down... %s", err.Error())
	}

	credentials, err := secrets.NewSecretManagerProvider(ctx)
	if err != nil {
		log.Fatal().Msgf("failed to create a secret manager client: %s", err.Error())
	}

	notifier := notifications.NewSendGridNotifier(sendgridAPIKey, emailSender)

	weights, err := transform.DefaultWeights()
	if err != nil {
		log.Fatal().Msgf("failed to load metadata quality weights: %s", err.Error())
	}

	syncer := syncsvc.NewSyncService(
		db, notifier,
		strings.Split(schemaVersions, ","),
		weights,
		func(ctx context.Context, publisher domain.Publisher) (custodian.Catalogue, error) {
			return custodian.NewCatalogue(ctx, publisher, credentials)
		},
	)

	r := chi.NewRouter()
	app := presentation.NewAPI(ctx, r, syncer)

	err = app.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
