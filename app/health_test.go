package app

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dan13ram/mint-queue/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/mint-queue/app/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

func NewTestHealthCheck() *HealthCheckRunner {
	x := &HealthCheckRunner{
		instanceId:    "instanceId",
		hostname:      "hostname",
		signerAddress: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		chainId:       "31337",
		queueBackend:  models.QueueBackendSQLite,
	}
	return x
}

func TestHealthStatus(t *testing.T) {
	x := NewTestHealthCheck()

	status := x.Status()
	assert.Equal(t, status.EthBlockNumber, "")
	assert.Equal(t, status.Processed, int64(0))
}

func TestFindLastHealth(t *testing.T) {

	t.Run("No Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		x := NewTestHealthCheck()
		filter := bson.M{
			"instance_id": x.instanceId,
			"hostname":    x.hostname,
		}
		var health models.Health
		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, filter, &health).Return(nil)

		_, err := x.FindLastHealth()

		assert.Nil(t, err)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		x := NewTestHealthCheck()
		filter := bson.M{
			"instance_id": x.instanceId,
			"hostname":    x.hostname,
		}
		var health models.Health
		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, filter, &health).Return(errors.New("error"))

		_, err := x.FindLastHealth()

		assert.NotNil(t, err)
		assert.Equal(t, err.Error(), "error")
	})

}

type MockService struct {
}

func (e *MockService) Start() {}

func (e *MockService) Stop() {
}

const MockServiceName = "mock"

func (e *MockService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:           MockServiceName,
		LastSyncTime:   time.Now(),
		NextSyncTime:   time.Now(),
		EthBlockNumber: "",
		Healthy:        true,
	}
}

func NewMockService() Service {
	return &MockService{}
}

func TestServices(t *testing.T) {
	x := NewTestHealthCheck()
	wg := &sync.WaitGroup{}
	x.SetServices([]Service{
		NewEmptyService(wg),
		NewEmptyService(wg),
		NewMockService(),
	})

	assert.Equal(t, len(x.services), 3)

	assert.Equal(t, x.services[0].Health().Name, EmptyServiceName)
	assert.Equal(t, x.services[1].Health().Name, EmptyServiceName)
	assert.Equal(t, x.services[2].Health().Name, MockServiceName)
}

func TestServiceHealths(t *testing.T) {
	x := NewTestHealthCheck()
	wg := &sync.WaitGroup{}
	x.SetServices([]Service{
		NewEmptyService(wg),
		NewEmptyService(wg),
		NewMockService(),
	})

	healths := x.ServiceHealths()

	assert.Equal(t, len(healths), 1)

	assert.Equal(t, healths[0].Name, MockServiceName)

}

func TestUpdateQueueDepth(t *testing.T) {
	Config.Queue.TimeoutMillis = 1000

	t.Run("No Queue", func(t *testing.T) {
		x := NewTestHealthCheck()
		x.UpdateQueueDepth()
		assert.Nil(t, x.queueDepth)
	})

	t.Run("No Error", func(t *testing.T) {
		queue := mocks.NewMockQueueDepthReader(t)
		x := NewTestHealthCheck()
		x.queue = queue

		depth := map[models.MintStatus]int64{
			models.StatusPending:   3,
			models.StatusCompleted: 7,
		}
		queue.EXPECT().CountByStatus(mock.Anything).Return(depth, nil)

		x.UpdateQueueDepth()

		assert.Equal(t, depth, x.queueDepth)
	})

	t.Run("With Error", func(t *testing.T) {
		queue := mocks.NewMockQueueDepthReader(t)
		x := NewTestHealthCheck()
		x.queue = queue
		x.queueDepth = map[models.MintStatus]int64{models.StatusPending: 1}

		queue.EXPECT().CountByStatus(mock.Anything).
			Run(func(ctx context.Context) {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
			}).
			Return(nil, errors.New("error"))

		x.UpdateQueueDepth()

		assert.Equal(t, int64(1), x.queueDepth[models.StatusPending])
	})
}

func TestPostHealth(t *testing.T) {
	t.Run("No Error", func(t *testing.T) {
		x := NewTestHealthCheck()
		x.queueDepth = map[models.MintStatus]int64{models.StatusPending: 2}
		wg := &sync.WaitGroup{}
		x.SetServices([]Service{
			NewEmptyService(wg),
			NewEmptyService(wg),
			NewMockService(),
		})

		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		filter := bson.M{
			"instance_id": x.instanceId,
			"hostname":    x.hostname,
		}

		onInsert := bson.M{
			"instance_id":    x.instanceId,
			"hostname":       x.hostname,
			"signer_address": x.signerAddress,
			"chain_id":       x.chainId,
			"queue_backend":  x.queueBackend,
			"created_at":     nil,
		}

		onUpdate := bson.M{
			"healthy":         true,
			"queue_depth":     x.queueDepth,
			"service_healths": []models.ServiceHealth{},
			"updated_at":      nil,
		}

		update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

		call := mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, filter, mock.Anything)
		call.Run(func(_ string, _ interface{}, arg interface{}) {

			updateArg := arg.(bson.M)

			assert.Len(t, updateArg["$set"].(bson.M)["service_healths"], 1)

			updateArg["$setOnInsert"].(bson.M)["created_at"] = nil
			updateArg["$set"].(bson.M)["updated_at"] = nil
			updateArg["$set"].(bson.M)["service_healths"] = []models.ServiceHealth{}

			assert.Equal(t, updateArg, update)
		})
		call.Return(primitive.NewObjectID(), nil)

		success := x.PostHealth()
		assert.True(t, success)
	})

	t.Run("With Error", func(t *testing.T) {
		x := NewTestHealthCheck()
		wg := &sync.WaitGroup{}
		x.SetServices([]Service{
			NewEmptyService(wg),
			NewEmptyService(wg),
			NewMockService(),
		})

		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		call := mockDB.EXPECT().UpsertOne(mock.Anything, mock.Anything, mock.Anything)
		call.Return(primitive.NewObjectID(), errors.New("error"))

		success := x.PostHealth()
		assert.False(t, success)
	})

	t.Run("Via Run", func(t *testing.T) {
		x := NewTestHealthCheck()
		wg := &sync.WaitGroup{}
		x.SetServices([]Service{
			NewEmptyService(wg),
			NewEmptyService(wg),
			NewMockService(),
		})

		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		call := mockDB.EXPECT().UpsertOne(mock.Anything, mock.Anything, mock.Anything)
		call.Return(primitive.NewObjectID(), errors.New("error"))

		x.Run()
	})

}

func TestNewHealthCheck(t *testing.T) {
	t.Run("With Valid Config", func(t *testing.T) {
		Config.Ethereum.ChainID = "31337"
		Config.Queue.Backend = models.QueueBackendMongo

		x := NewHealthCheck("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", nil)

		hostname, _ := os.Hostname()

		assert.NotNil(t, x)
		assert.Equal(t, InstanceId(), x.instanceId)
		assert.Equal(t, hostname, x.hostname)
		assert.Equal(t, "31337", x.chainId)
		assert.Equal(t, models.QueueBackendMongo, x.queueBackend)
		assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", x.signerAddress)
	})

	t.Run("Instance Id Is Stable", func(t *testing.T) {
		a := NewHealthCheck("", nil)
		b := NewHealthCheck("", nil)
		assert.Equal(t, a.instanceId, b.instanceId)
		assert.NotEmpty(t, a.instanceId)
	})
}
