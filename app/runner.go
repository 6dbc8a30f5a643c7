package app

import (
	"strings"
	"sync"
	"time"

	"github.com/dan13ram/mint-queue/models"
	log "github.com/sirupsen/logrus"
)

type Runner interface {
	Run()
	Status() models.RunnerStatus
}

// RunnerService runs a Runner on a fixed interval until stopped.
// Trigger wakes the loop early; triggers arriving while a run is in
// progress collapse into a single extra run.
type RunnerService struct {
	name     string
	logName  string
	runner   Runner
	wg       *sync.WaitGroup
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	wake     chan struct{}

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

var _ Service = &RunnerService{}
var _ Triggerable = &RunnerService{}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.logName)
	stop := false
	for !stop {
		log.Infof("[%s] Starting run", x.logName)
		x.runner.Run()

		x.UpdateHealth()

		log.Infof("[%s] Finished run, Sleeping for %s", x.logName, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.logName)
		case <-x.wake:
			log.Debugf("[%s] Woken up by trigger", x.logName)
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Trigger() {
	select {
	case x.wake <- struct{}{}:
	default:
	}
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) UpdateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastSyncTime := time.Now()
	status := x.runner.Status()

	x.health = models.ServiceHealth{
		Name:           x.name,
		LastSyncTime:   lastSyncTime,
		NextSyncTime:   lastSyncTime.Add(x.interval),
		EthBlockNumber: status.EthBlockNumber,
		Processed:      status.Processed,
		Failed:         status.Failed,
		Healthy:        true,
	}
}

func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.logName)
	x.stopOnce.Do(func() { close(x.stop) })
}

func NewRunnerService(
	name string,
	runner Runner,
	wg *sync.WaitGroup,
	interval time.Duration,
) *RunnerService {
	if name == "" || runner == nil || wg == nil || interval <= 0 {
		log.Debug("[RUNNER] Invalid parameters")
		return nil
	}

	return &RunnerService{
		name:     name,
		logName:  strings.ToUpper(name),
		runner:   runner,
		wg:       wg,
		interval: interval,
		stop:     make(chan struct{}),
		wake:     make(chan struct{}, 1),
		health: models.ServiceHealth{
			Name:    name,
			Healthy: true,
		},
	}
}
