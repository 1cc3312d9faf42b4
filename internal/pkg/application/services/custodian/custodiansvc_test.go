package custodian

import (
	"context"
	"errors"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"github.com/metadata-gateway/federation-sync/internal/pkg/infrastructure/secrets"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

func TestListDatasetsDecodesItems(t *testing.T) {
	is, ms := testSetup(t, 200, listingJson)
	ctx := context.Background()

	catalogue, err := NewCatalogue(ctx, publisherFor(ms), noCredentials())
	is.NoErr(err)

	summaries, err := catalogue.ListDatasets(ctx)
	is.NoErr(err)

	is.Equal(len(summaries), 2)
	is.Equal(summaries[0].Identifier, "pid-a")
	is.Equal(summaries[0].Version, "1.0.0")
	is.Equal(summaries[1].Identifier, "pid-b")
}

func TestGetDatasetRetainsRawDocument(t *testing.T) {
	is, ms := testSetup(t, 200, datasetJson)
	ctx := context.Background()

	catalogue, err := NewCatalogue(ctx, publisherFor(ms), noCredentials())
	is.NoErr(err)

	ds, err := catalogue.GetDataset(ctx, "pid-a")
	is.NoErr(err)

	is.Equal(ds.Identifier, "pid-a")
	is.Equal(ds.Summary.Title, "A study")
	is.Equal(string(ds.Raw), datasetJson)
}

func TestUnauthorizedResponseIsAnAuthError(t *testing.T) {
	is, ms := testSetup(t, 401, `{}`)
	ctx := context.Background()

	catalogue, err := NewCatalogue(ctx, publisherFor(ms), noCredentials())
	is.NoErr(err)

	_, err = catalogue.ListDatasets(ctx)
	is.True(err != nil)

	authErr := &AuthError{}
	is.True(errors.As(err, &authErr))
	is.Equal(authErr.Status, 401)
}

func TestServerErrorIsARequestError(t *testing.T) {
	is, ms := testSetup(t, 500, `{}`)
	ctx := context.Background()

	catalogue, err := NewCatalogue(ctx, publisherFor(ms), noCredentials())
	is.NoErr(err)

	_, err = catalogue.ListDatasets(ctx)
	is.True(err != nil)

	reqErr := &RequestError{}
	is.True(errors.As(err, &reqErr))
	is.Equal(reqErr.Status, 500)
}

func TestApiKeyPublisherResolvesItsSecret(t *testing.T) {
	is, ms := testSetup(t, 200, listingJson)
	ctx := context.Background()

	provider := &secrets.CredentialProviderMock{
		GetClientSecretFunc: func(ctx context.Context, secretName string) (secrets.Credentials, error) {
			return secrets.Credentials{APIKey: "abc123"}, nil
		},
	}

	publisher := publisherFor(ms)
	publisher.AuthType = "api_key"
	publisher.SecretName = "projects/p/secrets/pub/versions/latest"

	_, err := NewCatalogue(ctx, publisher, provider)
	is.NoErr(err)

	is.Equal(len(provider.GetClientSecretCalls()), 1)
	is.Equal(provider.GetClientSecretCalls()[0].SecretName, "projects/p/secrets/pub/versions/latest")
}

func TestOAuthTokenRejectionIsAnAuthError(t *testing.T) {
	is, ms := testSetup(t, 401, `{}`)
	ctx := context.Background()

	provider := &secrets.CredentialProviderMock{
		GetClientSecretFunc: func(ctx context.Context, secretName string) (secrets.Credentials, error) {
			return secrets.Credentials{ClientID: "id", ClientSecret: "secret"}, nil
		},
	}

	publisher := publisherFor(ms)
	publisher.AuthType = "oauth"
	publisher.SecretName = "projects/p/secrets/pub/versions/latest"

	_, err := NewCatalogue(ctx, publisher, provider)
	is.True(err != nil)

	authErr := &AuthError{}
	is.True(errors.As(err, &authErr))
}

func testSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(statusCode),
			response.ContentType("application/json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

func publisherFor(ms testutils.MockService) domain.Publisher {
	return domain.Publisher{
		ID:           "pub-1",
		Name:         "Testshire NHS Trust",
		BaseURL:      ms.URL(),
		DatasetsPath: "/datasets",
	}
}

func noCredentials() secrets.CredentialProvider {
	return &secrets.CredentialProviderMock{
		GetClientSecretFunc: func(ctx context.Context, secretName string) (secrets.Credentials, error) {
			return secrets.Credentials{}, nil
		},
	}
}

const listingJson string = `{
	"items": [
		{"identifier": "pid-a", "name": "Dataset A", "version": "1.0.0"},
		{"identifier": "pid-b", "name": "Dataset B", "version": "2.1.0"}
	]
}`

const datasetJson string = `{
	"identifier": "pid-a",
	"version": "1.0.0",
	"summary": {
		"title": "A study",
		"abstract": "An abstract.",
		"publisher": {"name": "Testshire NHS Trust"}
	}
}`
