package cli

import (
	"sync"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/eth"
	"github.com/dan13ram/mint-queue/eth/client"
	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/queue"
)

func CreateService(
	wg *sync.WaitGroup,
	serviceName string,
	serviceHealthMap map[string]models.ServiceHealth,
	factory ServiceFactory,
) app.Service {
	serviceHealth, ok := serviceHealthMap[serviceName]
	if ok {
		return factory.CreateServiceWithLastHealth(wg, serviceHealth)
	}
	return factory.CreateService(wg)
}

type ServiceFactory struct {
	CreateService               func(*sync.WaitGroup) app.Service
	CreateServiceWithLastHealth func(*sync.WaitGroup, models.ServiceHealth) app.Service
}

// ServiceNames fixes the start order of the runner services.
var ServiceNames = []string{
	eth.MintDispatcherName,
	eth.MintConfirmerName,
}

func GetServiceFactories(store queue.Store, minter client.Minter) map[string]ServiceFactory {
	return map[string]ServiceFactory{
		eth.MintDispatcherName: {
			CreateService: func(wg *sync.WaitGroup) app.Service {
				return eth.NewMintDispatcherService(wg, store, minter)
			},
			CreateServiceWithLastHealth: func(wg *sync.WaitGroup, _ models.ServiceHealth) app.Service {
				return eth.NewMintDispatcherService(wg, store, minter)
			},
		},
		eth.MintConfirmerName: {
			CreateService: func(wg *sync.WaitGroup) app.Service {
				return eth.NewMintConfirmerService(wg, store, minter, models.ServiceHealth{})
			},
			CreateServiceWithLastHealth: func(wg *sync.WaitGroup, lastHealth models.ServiceHealth) app.Service {
				return eth.NewMintConfirmerService(wg, store, minter, lastHealth)
			},
		},
	}
}

// LastServiceHealths indexes the previous run's service healths by name.
func LastServiceHealths(health models.Health) map[string]models.ServiceHealth {
	serviceHealthMap := make(map[string]models.ServiceHealth)
	for _, serviceHealth := range health.ServiceHealths {
		serviceHealthMap[serviceHealth.Name] = serviceHealth
	}
	return serviceHealthMap
}
