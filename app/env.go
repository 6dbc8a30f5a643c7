package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func readInt64FromENV(key string, target *int64) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
		return
	}
	*target = parsed
}

func readBoolFromENV(key string, target *bool) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
		return
	}
	*target = parsed
}

func readStringFromENV(key string, target *string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func readListFromENV(key string, target *[]string) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}
	*target = list
}

func readConfigFromENV(envFile string) bool {
	if envFile == "" {
		log.Debug("[ENV] No env file provided")
	} else {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading env file: ", err.Error())
		}
	}

	log.Debug("[ENV] Reading config from env")

	// mongodb
	readStringFromENV("MONGODB_URI", &Config.MongoDB.URI)
	readStringFromENV("MONGODB_DATABASE", &Config.MongoDB.Database)
	readInt64FromENV("MONGODB_TIMEOUT_MS", &Config.MongoDB.TimeoutMillis)

	// queue
	readStringFromENV("QUEUE_BACKEND", &Config.Queue.Backend)
	readStringFromENV("QUEUE_SQLITE_PATH", &Config.Queue.SQLitePath)
	readStringFromENV("QUEUE_POSTGRES_DSN", &Config.Queue.PostgresDSN)
	readInt64FromENV("QUEUE_LEASE_MS", &Config.Queue.LeaseMillis)
	readInt64FromENV("QUEUE_TIMEOUT_MS", &Config.Queue.TimeoutMillis)

	// ethereum
	readStringFromENV("ETH_RPC_URL", &Config.Ethereum.RPCURL)
	readInt64FromENV("ETH_RPC_TIMEOUT_MS", &Config.Ethereum.RPCTimeoutMillis)
	readStringFromENV("ETH_CHAIN_ID", &Config.Ethereum.ChainID)
	readStringFromENV("ETH_PRIVATE_KEY", &Config.Ethereum.PrivateKey)
	readStringFromENV("ETH_MNEMONIC", &Config.Ethereum.Mnemonic)
	readStringFromENV("ETH_GCP_KMS_KEY_NAME", &Config.Ethereum.GcpKmsKeyName)
	readStringFromENV("ETH_MINT_CONTRACT_ADDRESS", &Config.Ethereum.MintContractAddress)
	readListFromENV("ETH_ALLOWED_CONTRACTS", &Config.Ethereum.AllowedContracts)
	readInt64FromENV("ETH_GAS_LIMIT_MULTIPLIER_BPS", &Config.Ethereum.GasLimitMultiplierBps)
	readInt64FromENV("ETH_MAX_FEE_PER_GAS_GWEI", &Config.Ethereum.MaxFeePerGasGwei)

	// signer lock
	readStringFromENV("SIGNER_LOCK_BACKEND", &Config.SignerLock.Backend)
	readInt64FromENV("SIGNER_LOCK_TTL_MS", &Config.SignerLock.TTLMillis)

	// redis
	readStringFromENV("REDIS_ADDRESS", &Config.Redis.Address)
	readStringFromENV("REDIS_PASSWORD", &Config.Redis.Password)
	if os.Getenv("REDIS_DB") != "" {
		db, err := strconv.Atoi(os.Getenv("REDIS_DB"))
		if err != nil {
			log.Warn("[ENV] Error parsing REDIS_DB: ", err.Error())
		} else {
			Config.Redis.DB = db
		}
	}

	// http
	readBoolFromENV("HTTP_ENABLED", &Config.HTTP.Enabled)
	readInt64FromENV("HTTP_PORT", &Config.HTTP.Port)
	readStringFromENV("HTTP_WEBHOOK_SECRET", &Config.HTTP.WebhookSecret)
	readInt64FromENV("HTTP_WEBHOOK_MAX_SKEW_MS", &Config.HTTP.WebhookMaxSkewMillis)
	readStringFromENV("HTTP_ADMIN_TOKEN", &Config.HTTP.AdminToken)
	readListFromENV("HTTP_ALLOWED_ORIGINS", &Config.HTTP.AllowedOrigins)

	// pubsub
	readBoolFromENV("PUBSUB_ENABLED", &Config.PubSub.Enabled)
	readStringFromENV("PUBSUB_PROJECT_ID", &Config.PubSub.ProjectId)
	readStringFromENV("PUBSUB_TOPIC", &Config.PubSub.Topic)
	readStringFromENV("PUBSUB_CREDENTIALS_JSON", &Config.PubSub.CredentialsJSON)

	// mint dispatcher
	readBoolFromENV("MINT_DISPATCHER_ENABLED", &Config.MintDispatcher.Enabled)
	readInt64FromENV("MINT_DISPATCHER_INTERVAL_MS", &Config.MintDispatcher.IntervalMillis)
	readInt64FromENV("MINT_DISPATCHER_BATCH_SIZE", &Config.MintDispatcher.BatchSize)

	// mint confirmer
	readBoolFromENV("MINT_CONFIRMER_ENABLED", &Config.MintConfirmer.Enabled)
	readInt64FromENV("MINT_CONFIRMER_INTERVAL_MS", &Config.MintConfirmer.IntervalMillis)
	readInt64FromENV("MINT_CONFIRMER_BATCH_SIZE", &Config.MintConfirmer.BatchSize)
	readInt64FromENV("MINT_CONFIRMER_MIN_RECHECK_INTERVAL_MS", &Config.MintConfirmer.MinRecheckMillis)
	readInt64FromENV("MINT_CONFIRMER_MAX_PENDING_AGE_MS", &Config.MintConfirmer.MaxPendingAgeMillis)

	// health check
	readInt64FromENV("HEALTH_CHECK_INTERVAL_MS", &Config.HealthCheck.IntervalMillis)
	readBoolFromENV("HEALTH_CHECK_READ_LAST_HEALTH", &Config.HealthCheck.ReadLastHealth)

	// logger
	readStringFromENV("LOG_LEVEL", &Config.Logger.Level)

	// google secret manager
	readBoolFromENV("GOOGLE_SECRET_MANAGER_ENABLED", &Config.GoogleSecretManager.Enabled)
	readStringFromENV("GOOGLE_PROJECT_ID", &Config.GoogleSecretManager.ProjectId)
	readStringFromENV("GOOGLE_MONGO_SECRET_NAME", &Config.GoogleSecretManager.MongoSecretName)
	readStringFromENV("GOOGLE_ETH_SECRET_NAME", &Config.GoogleSecretManager.EthSecretName)
	readStringFromENV("GOOGLE_WEBHOOK_SECRET_NAME", &Config.GoogleSecretManager.WebhookSecretName)

	log.Debug("[ENV] Config read from env")

	return true
}
