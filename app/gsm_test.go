package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/dan13ram/mint-queue/models"
	gax "github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSecretManagerClient struct {
	mock.Mock
}

func (m *MockSecretManagerClient) AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error) {
	args := m.Called(req.Name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretmanagerpb.AccessSecretVersionResponse), args.Error(1)
}

func (m *MockSecretManagerClient) Close() error {
	return m.Called().Error(0)
}

func secretResponse(value string) *secretmanagerpb.AccessSecretVersionResponse {
	return &secretmanagerpb.AccessSecretVersionResponse{
		Payload: &secretmanagerpb.SecretPayload{Data: []byte(value)},
	}
}

func TestReadKeysFromGSM(t *testing.T) {
	defer func() {
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			return nil, errors.New("not configured")
		}
	}()

	t.Run("Disabled", func(t *testing.T) {
		Config = models.Config{}
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			t.Fatal("client should not be created")
			return nil, nil
		}

		readKeysFromGSM()
	})

	t.Run("Reads Missing Secrets", func(t *testing.T) {
		client := new(MockSecretManagerClient)
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			return client, nil
		}

		Config = models.Config{}
		Config.GoogleSecretManager = models.GoogleSecretManagerConfig{
			Enabled:           true,
			ProjectId:         "project",
			MongoSecretName:   "mongo",
			EthSecretName:     "eth",
			WebhookSecretName: "webhook",
		}
		Config.HTTP.WebhookSecret = "already-set"

		client.On("AccessSecretVersion", "projects/project/secrets/mongo/versions/latest").Return(secretResponse("mongodb://secret"), nil)
		client.On("AccessSecretVersion", "projects/project/secrets/eth/versions/latest").Return(secretResponse("0xkey"), nil)
		client.On("Close").Return(nil)

		readKeysFromGSM()

		assert.Equal(t, "mongodb://secret", Config.MongoDB.URI)
		assert.Equal(t, "0xkey", Config.Ethereum.PrivateKey)
		assert.Equal(t, "already-set", Config.HTTP.WebhookSecret)
		client.AssertExpectations(t)
	})

	t.Run("Skips Private Key With Mnemonic", func(t *testing.T) {
		client := new(MockSecretManagerClient)
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			return client, nil
		}

		Config = models.Config{}
		Config.GoogleSecretManager = models.GoogleSecretManagerConfig{
			Enabled:       true,
			ProjectId:     "project",
			EthSecretName: "eth",
		}
		Config.Ethereum.Mnemonic = "test test test test test test test test test test test junk"

		client.On("Close").Return(nil)

		readKeysFromGSM()

		assert.Equal(t, "", Config.Ethereum.PrivateKey)
		client.AssertExpectations(t)
	})

	t.Run("Access Error", func(t *testing.T) {
		client := new(MockSecretManagerClient)
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			return client, nil
		}

		Config = models.Config{}
		Config.GoogleSecretManager = models.GoogleSecretManagerConfig{
			Enabled:         true,
			ProjectId:       "project",
			MongoSecretName: "mongo",
		}

		client.On("AccessSecretVersion", mock.Anything).Return(nil, errors.New("denied"))
		client.On("Close").Return(nil)

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readKeysFromGSM() })
	})

	t.Run("Missing Project", func(t *testing.T) {
		Config = models.Config{}
		Config.GoogleSecretManager.Enabled = true

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readKeysFromGSM() })
	})
}
