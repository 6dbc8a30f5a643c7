package app

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	gax "github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"
)

type SecretManagerClient interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

var newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
	return secretmanager.NewClient(ctx)
}

func accessSecretVersion(client SecretManagerClient, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectId, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

func readSecret(client SecretManagerClient, label string, secretName string, target *string) {
	if *target != "" {
		return
	}
	if secretName == "" {
		log.Debugf("[GSM] No secret name for %s", label)
		return
	}

	log.Debugf("[GSM] Reading %s", label)
	value, err := accessSecretVersion(client, secretName)
	if err != nil {
		log.Fatalf("[GSM] Failed to access %s: %v", label, err)
	}
	*target = value
	log.Infof("[GSM] Successfully read %s", label)
}

func readKeysFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.GoogleSecretManager.ProjectId == "" {
		log.Fatalf("[GSM] ProjectId is empty")
	}

	client, err := newSecretManagerClient(context.Background())
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	readSecret(client, "mongodb uri", Config.GoogleSecretManager.MongoSecretName, &Config.MongoDB.URI)
	if Config.Ethereum.Mnemonic == "" && Config.Ethereum.GcpKmsKeyName == "" {
		readSecret(client, "ethereum private key", Config.GoogleSecretManager.EthSecretName, &Config.Ethereum.PrivateKey)
	}
	readSecret(client, "webhook secret", Config.GoogleSecretManager.WebhookSecretName, &Config.HTTP.WebhookSecret)
}
