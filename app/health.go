package app

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/dan13ram/mint-queue/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	HealthServiceName = "health"
)

// QueueDepthReader reports how many mint requests sit in each status.
type QueueDepthReader interface {
	CountByStatus(ctx context.Context) (map[models.MintStatus]int64, error)
}

type HealthCheckRunner struct {
	instanceId    string
	hostname      string
	signerAddress string
	chainId       string
	queueBackend  string
	queue         QueueDepthReader
	queueDepth    map[models.MintStatus]int64

	servicesMu sync.RWMutex
	services   []Service
}

func (x *HealthCheckRunner) Run() {
	x.UpdateQueueDepth()
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	filter := bson.M{
		"instance_id": x.instanceId,
		"hostname":    x.hostname,
	}
	err := DB.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.servicesMu.Lock()
	defer x.servicesMu.Unlock()

	x.services = services
}

func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.servicesMu.RLock()
	defer x.servicesMu.RUnlock()

	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) UpdateQueueDepth() {
	if x.queue == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.Queue.TimeoutMillis)*time.Millisecond)
	defer cancel()

	depth, err := x.queue.CountByStatus(ctx)
	if err != nil {
		log.Error("[HEALTH] Error reading queue depth: ", err)
		return
	}
	x.queueDepth = depth
	Metrics.SetQueueDepth(depth)
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

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
		"created_at":     time.Now(),
	}

	onUpdate := bson.M{
		"healthy":         true,
		"queue_depth":     x.queueDepth,
		"service_healths": x.ServiceHealths(),
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	_, err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)

	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func NewHealthCheck(signerAddress string, queue QueueDepthReader) *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthCheckRunner{
		instanceId:    InstanceId(),
		hostname:      hostname,
		signerAddress: signerAddress,
		chainId:       Config.Ethereum.ChainID,
		queueBackend:  Config.Queue.Backend,
		queue:         queue,
	}

	log.Info("[HEALTH] Initialized health")

	return x
}
