package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

//go:generate moq -rm -out secrets_mock.go . CredentialProvider

// Credentials holds whatever a publisher's secret contains. OAuth
// publishers carry a client id and secret, api key publishers a single
// static key.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	APIKey       string `json:"api_key"`
}

type CredentialProvider interface {
	GetClientSecret(ctx context.Context, secretName string) (Credentials, error)
}

// NewSecretManagerProvider returns a provider backed by Google Secret
// Manager. secretName arguments are full resource paths, i.e.
// projects/<p>/secrets/<name>/versions/latest.
func NewSecretManagerProvider(ctx context.Context) (CredentialProvider, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret manager client: %s", err.Error())
	}

	return &gsmProvider{client: client}, nil
}

type gsmProvider struct {
	client *secretmanager.Client
}

func (p *gsmProvider) GetClientSecret(ctx context.Context, secretName string) (Credentials, error) {
	response, err := p.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: secretName,
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to access secret %s: %s", secretName, err.Error())
	}

	// some publishers store their secret with single quoted keys
	payload := strings.ReplaceAll(string(response.Payload.Data), "'", "\"")

	credentials := Credentials{}
	err = json.Unmarshal([]byte(payload), &credentials)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to parse secret %s: %s", secretName, err.Error())
	}

	return credentials, nil
}
