package app

import (
	"os"
	"strings"

	"github.com/dan13ram/mint-queue/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	Config     models.Config
	instanceId = uuid.NewString()
)

// InstanceId identifies this process in health checks and lock ownership.
func InstanceId() string {
	return instanceId
}

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()
	setConfigDefaults()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file")
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}
	log.Debug("[CONFIG] Config loaded from config file")
	return true
}

func setConfigDefaults() {
	if Config.Queue.Backend == "" {
		Config.Queue.Backend = models.QueueBackendMongo
	}
	if Config.Queue.LeaseMillis == 0 {
		Config.Queue.LeaseMillis = 5 * 60 * 1000
	}
	if Config.Queue.TimeoutMillis == 0 {
		Config.Queue.TimeoutMillis = Config.MongoDB.TimeoutMillis
	}
	if Config.SignerLock.Backend == "" {
		Config.SignerLock.Backend = models.SignerLockMongo
	}
	if Config.SignerLock.TTLMillis == 0 {
		Config.SignerLock.TTLMillis = 2 * 60 * 1000
	}
	if Config.Ethereum.GasLimitMultiplierBps == 0 {
		Config.Ethereum.GasLimitMultiplierBps = 12000
	}
	if Config.MintDispatcher.BatchSize == 0 {
		Config.MintDispatcher.BatchSize = 10
	}
	if Config.MintConfirmer.BatchSize == 0 {
		Config.MintConfirmer.BatchSize = 25
	}
	if Config.MintConfirmer.MinRecheckMillis == 0 {
		Config.MintConfirmer.MinRecheckMillis = 30 * 1000
	}
	if Config.HTTP.Port == 0 {
		Config.HTTP.Port = 8080
	}
	if Config.HTTP.WebhookMaxSkewMillis == 0 {
		Config.HTTP.WebhookMaxSkewMillis = 5 * 60 * 1000
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	// mongodb
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}

	// queue
	switch Config.Queue.Backend {
	case models.QueueBackendMongo:
	case models.QueueBackendSQLite:
		if Config.Queue.SQLitePath == "" {
			log.Fatal("[CONFIG] Queue.SQLitePath is required for the sqlite backend")
		}
	case models.QueueBackendPostgres:
		if Config.Queue.PostgresDSN == "" {
			log.Fatal("[CONFIG] Queue.PostgresDSN is required for the postgres backend")
		}
	default:
		log.Fatal("[CONFIG] Queue.Backend is invalid: ", Config.Queue.Backend)
	}
	if Config.Queue.LeaseMillis < 0 {
		log.Fatal("[CONFIG] Queue.LeaseMillis must not be negative")
	}

	// ethereum
	if Config.Ethereum.RPCURL == "" {
		log.Fatal("[CONFIG] Ethereum.RPCURL is required")
	}
	if Config.Ethereum.RPCTimeoutMillis == 0 {
		log.Fatal("[CONFIG] Ethereum.RPCTimeoutMillis is required")
	}
	if Config.Ethereum.ChainID == "" {
		log.Fatal("[CONFIG] Ethereum.ChainID is required")
	}
	if Config.Ethereum.PrivateKey == "" && Config.Ethereum.Mnemonic == "" && Config.Ethereum.GcpKmsKeyName == "" {
		log.Fatal("[CONFIG] One of Ethereum.PrivateKey, Ethereum.Mnemonic or Ethereum.GcpKmsKeyName is required")
	}
	if !common.IsHexAddress(Config.Ethereum.MintContractAddress) {
		log.Fatal("[CONFIG] Ethereum.MintContractAddress is invalid")
	}
	for _, address := range Config.Ethereum.AllowedContracts {
		if !common.IsHexAddress(address) {
			log.Fatal("[CONFIG] Ethereum.AllowedContracts has an invalid address: ", address)
		}
	}

	// signer lock
	switch Config.SignerLock.Backend {
	case models.SignerLockMongo:
	case models.SignerLockRedis:
		if Config.Redis.Address == "" {
			log.Fatal("[CONFIG] Redis.Address is required for the redis signer lock")
		}
	default:
		log.Fatal("[CONFIG] SignerLock.Backend is invalid: ", Config.SignerLock.Backend)
	}

	// services
	if Config.MintDispatcher.Enabled && Config.MintDispatcher.IntervalMillis == 0 {
		log.Fatal("[CONFIG] MintDispatcher.IntervalMillis is required")
	}
	if Config.MintConfirmer.Enabled && Config.MintConfirmer.IntervalMillis == 0 {
		log.Fatal("[CONFIG] MintConfirmer.IntervalMillis is required")
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis is required")
	}

	// http
	if Config.HTTP.Enabled && strings.TrimSpace(Config.HTTP.WebhookSecret) == "" {
		log.Fatal("[CONFIG] HTTP.WebhookSecret is required when the http server is enabled")
	}

	// pubsub
	if Config.PubSub.Enabled {
		if Config.PubSub.ProjectId == "" {
			log.Fatal("[CONFIG] PubSub.ProjectId is required")
		}
		if Config.PubSub.Topic == "" {
			log.Fatal("[CONFIG] PubSub.Topic is required")
		}
	}

	log.Debug("[CONFIG] Config validated")
}
