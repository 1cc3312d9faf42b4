package custodian

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"github.com/metadata-gateway/federation-sync/internal/pkg/infrastructure/secrets"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//go:generate moq -rm -out custodiansvc_mock.go . Catalogue

// Catalogue is a publisher's remote dataset catalogue.
type Catalogue interface {
	ListDatasets(ctx context.Context) ([]domain.DatasetSummary, error)
	GetDataset(ctx context.Context, id string) (*domain.Dataset, error)
}

// AuthError is returned when a custodian rejects our credentials.
type AuthError struct {
	URL    string
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authorisation error: %d was received from %s", e.Status, e.URL)
}

// RequestError is returned for any other failed request to a custodian.
type RequestError struct {
	URL    string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err.Error())
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewCatalogue creates a catalogue client for the given publisher,
// resolving credentials and performing any token exchange up front so that
// authorisation failures surface before a sync pass starts mutating state.
func NewCatalogue(ctx context.Context, publisher domain.Publisher, credentials secrets.CredentialProvider) (Catalogue, error) {
	svc := &catalogueClient{
		baseURL:      strings.TrimSuffix(publisher.BaseURL, "/"),
		datasetsPath: publisher.DatasetsPath,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	if svc.datasetsPath == "" {
		svc.datasetsPath = "/datasets"
	}

	switch publisher.AuthType {
	case "oauth":
		creds, err := credentials.GetClientSecret(ctx, publisher.SecretName)
		if err != nil {
			return nil, err
		}

		token, err := svc.getAccessToken(ctx, creds.ClientID, creds.ClientSecret)
		if err != nil {
			return nil, err
		}

		svc.authHeader = "Bearer " + token

	case "api_key":
		creds, err := credentials.GetClientSecret(ctx, publisher.SecretName)
		if err != nil {
			return nil, err
		}

		svc.authHeader = "Basic " + creds.APIKey
	}

	return svc, nil
}

type catalogueClient struct {
	baseURL      string
	datasetsPath string
	authHeader   string
	httpClient   http.Client
}

func (c *catalogueClient) ListDatasets(ctx context.Context) ([]domain.DatasetSummary, error) {
	body, err := c.get(ctx, c.baseURL+c.datasetsPath)
	if err != nil {
		return nil, err
	}

	listing := struct {
		Items []domain.DatasetSummary `json:"items"`
	}{}

	err = json.Unmarshal(body, &listing)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset listing: %s", err.Error())
	}

	return listing.Items, nil
}

func (c *catalogueClient) GetDataset(ctx context.Context, id string) (*domain.Dataset, error) {
	body, err := c.get(ctx, c.baseURL+c.datasetsPath+"/"+id)
	if err != nil {
		return nil, err
	}

	ds := &domain.Dataset{}
	err = json.Unmarshal(body, ds)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset %s: %s", id, err.Error())
	}

	ds.Raw = body

	return ds, nil
}

func (c *catalogueClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %s", err.Error())
	}

	req.Header.Add("Accept", "application/json")
	if c.authHeader != "" {
		req.Header.Add("Authorization", c.authHeader)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: requestURL, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		return nil, &AuthError{URL: requestURL, Status: response.StatusCode}
	}

	if response.StatusCode != http.StatusOK {
		return nil, &RequestError{URL: requestURL, Status: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &RequestError{URL: requestURL, Err: err}
	}

	return body, nil
}

func (c *catalogueClient) getAccessToken(ctx context.Context, clientID, clientSecret string) (string, error) {
	tokenURL := c.baseURL + "/oauth/token"

	params := url.Values{}
	params.Add("grant_type", "client_credentials")
	params.Add("client_id", clientID)
	params.Add("client_secret", clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %s", err.Error())
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return "", &RequestError{URL: tokenURL, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusBadRequest ||
		response.StatusCode == http.StatusUnauthorized ||
		response.StatusCode == http.StatusForbidden {
		return "", &AuthError{URL: tokenURL, Status: response.StatusCode}
	}

	if response.StatusCode != http.StatusOK {
		return "", &RequestError{URL: tokenURL, Status: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response body: %s", err.Error())
	}

	token := tokenResponse{}
	err = json.Unmarshal(body, &token)
	if err != nil {
		return "", fmt.Errorf("failed to unmarshal access token json: %s", err.Error())
	}

	return token.AccessToken, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
