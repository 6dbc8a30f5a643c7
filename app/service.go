package app

import (
	"sync"
	"time"

	"github.com/dan13ram/mint-queue/models"
)

type Service interface {
	Start()
	Health() models.ServiceHealth
	Stop()
}

// Triggerable services can be woken up before their interval elapses.
type Triggerable interface {
	Trigger()
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:           EmptyServiceName,
		LastSyncTime:   time.Now(),
		NextSyncTime:   time.Now(),
		EthBlockNumber: "",
		Healthy:        true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}
