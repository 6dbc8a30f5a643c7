package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dan13ram/mint-queue/api"
	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/eth"
	"github.com/dan13ram/mint-queue/eth/client"
	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/payment"
	"github.com/dan13ram/mint-queue/queue"
	"github.com/dan13ram/mint-queue/trigger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dispatcher, confirmer, health check and http api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func runServe() {
	app.InitDB()

	signer, err := app.CreateEthereumSigner()
	if err != nil {
		log.Fatal("[MAIN] Error creating signer: ", err)
	}

	ethClient, err := client.NewClient()
	if err != nil {
		log.Fatal("[MAIN] Error connecting to ethereum: ", err)
	}
	ethClient.ValidateNetwork()

	minter, err := client.NewMinter(ethClient, signer, app.InitSignerLocker())
	if err != nil {
		log.Fatal("[MAIN] Error creating minter: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queue.Timeout())
	store, err := queue.NewStore(ctx)
	cancel()
	if err != nil {
		log.Fatal("[MAIN] Error opening queue store: ", err)
	}

	healthcheck := app.NewHealthCheck(minter.Address(), store)

	serviceHealthMap := LastServiceHealths(lastHealth(healthcheck))

	var wg sync.WaitGroup
	factories := GetServiceFactories(store, minter)

	var services []app.Service
	for _, name := range ServiceNames {
		services = append(services, CreateService(&wg, name, serviceHealthMap, factories[name]))
	}
	dispatcherService := services[0]

	triggers := trigger.Fanout{trigger.NewLocal(dispatcherService)}
	var publisher trigger.Publisher
	if app.Config.PubSub.Enabled {
		publisher, err = trigger.NewTopicPublisher(context.Background())
		if err != nil {
			log.Fatal("[MAIN] Error creating pubsub publisher: ", err)
		}
		triggers = append(triggers, trigger.NewPubSub(publisher))
	}

	services = append(services, api.NewServer(
		&wg,
		store,
		payment.NewEnqueueHandler(store, triggers),
		eth.NewMintDispatcher(store, minter),
		eth.NewMintConfirmer(store, minter, serviceHealthMap[eth.MintConfirmerName]),
		healthcheck,
	))

	healthcheck.SetServices(services)
	services = append(services, app.NewRunnerService(
		app.HealthServiceName,
		healthcheck,
		&wg,
		time.Duration(app.Config.HealthCheck.IntervalMillis)*time.Millisecond,
	))

	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}

	log.Info("[MAIN] Started services: ", len(services))

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Stopping services")
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()

	if publisher != nil {
		publisher.Stop()
	}
	if err := store.Close(); err != nil {
		log.Error("[MAIN] Error closing queue store: ", err)
	}
	if err := app.DB.Disconnect(); err != nil {
		log.Error("[MAIN] Error disconnecting from database: ", err)
	}
	log.Info("[MAIN] Stopped")
}

func lastHealth(healthcheck *app.HealthCheckRunner) (health models.Health) {
	if !app.Config.HealthCheck.ReadLastHealth {
		return health
	}
	health, err := healthcheck.FindLastHealth()
	if err != nil {
		log.Warn("[MAIN] Error reading last health: ", err)
		return models.Health{}
	}
	log.Debug("[MAIN] Read last health from ", health.UpdatedAt)
	return health
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}
