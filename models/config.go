package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Queue               QueueConfig               `yaml:"queue" json:"queue"`
	Ethereum            EthereumConfig            `yaml:"ethereum" json:"ethereum"`
	SignerLock          SignerLockConfig          `yaml:"signer_lock" json:"signer_lock"`
	Redis               RedisConfig               `yaml:"redis" json:"redis"`
	HTTP                HTTPConfig                `yaml:"http" json:"http"`
	PubSub              PubSubConfig              `yaml:"pubsub" json:"pubsub"`
	MintDispatcher      ServiceConfig             `yaml:"mint_dispatcher" json:"mint_dispatcher"`
	MintConfirmer       ConfirmerConfig           `yaml:"mint_confirmer" json:"mint_confirmer"`
}

type GoogleSecretManagerConfig struct {
	Enabled           bool   `yaml:"enabled" json:"enabled"`
	ProjectId         string `yaml:"project_id" json:"project_id"`
	MongoSecretName   string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	EthSecretName     string `yaml:"eth_secret_name" json:"eth_secret_name"`
	WebhookSecretName string `yaml:"webhook_secret_name" json:"webhook_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	ReadLastHealth bool  `yaml:"read_last_health" json:"read_last_health"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

const (
	QueueBackendMongo    = "mongodb"
	QueueBackendSQLite   = "sqlite"
	QueueBackendPostgres = "postgres"
)

type QueueConfig struct {
	Backend       string `yaml:"backend" json:"backend"`
	SQLitePath    string `yaml:"sqlite_path" json:"sqlite_path"`
	PostgresDSN   string `yaml:"postgres_dsn" json:"postgres_dsn"`
	LeaseMillis   int64  `yaml:"lease_ms" json:"lease_ms"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type EthereumConfig struct {
	RPCURL                string   `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis      int64    `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ChainID               string   `yaml:"chain_id" json:"chain_id"`
	PrivateKey            string   `yaml:"private_key" json:"private_key"`
	Mnemonic              string   `yaml:"mnemonic" json:"mnemonic"`
	GcpKmsKeyName         string   `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
	MintContractAddress   string   `yaml:"mint_contract_address" json:"mint_contract_address"`
	AllowedContracts      []string `yaml:"allowed_contracts" json:"allowed_contracts"`
	GasLimitMultiplierBps int64    `yaml:"gas_limit_multiplier_bps" json:"gas_limit_multiplier_bps"`
	MaxFeePerGasGwei      int64    `yaml:"max_fee_per_gas_gwei" json:"max_fee_per_gas_gwei"`
}

const (
	SignerLockMongo = "mongodb"
	SignerLockRedis = "redis"
)

type SignerLockConfig struct {
	Backend   string `yaml:"backend" json:"backend"`
	TTLMillis int64  `yaml:"ttl_ms" json:"ttl_ms"`
}

type RedisConfig struct {
	Address  string `yaml:"address" json:"address"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
}

type HTTPConfig struct {
	Enabled              bool     `yaml:"enabled" json:"enabled"`
	Port                 int64    `yaml:"port" json:"port"`
	WebhookSecret        string   `yaml:"webhook_secret" json:"webhook_secret"`
	WebhookMaxSkewMillis int64    `yaml:"webhook_max_skew_ms" json:"webhook_max_skew_ms"`
	AdminToken           string   `yaml:"admin_token" json:"admin_token"`
	AllowedOrigins       []string `yaml:"allowed_origins" json:"allowed_origins"`
}

type PubSubConfig struct {
	Enabled         bool   `yaml:"enabled" json:"enabled"`
	ProjectId       string `yaml:"project_id" json:"project_id"`
	Topic           string `yaml:"topic" json:"topic"`
	CredentialsJSON string `yaml:"credentials_json" json:"credentials_json"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	BatchSize      int64 `yaml:"batch_size" json:"batch_size"`
}

type ConfirmerConfig struct {
	Enabled             bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis      int64 `yaml:"interval_ms" json:"interval_ms"`
	BatchSize           int64 `yaml:"batch_size" json:"batch_size"`
	MinRecheckMillis    int64 `yaml:"min_recheck_interval_ms" json:"min_recheck_interval_ms"`
	MaxPendingAgeMillis int64 `yaml:"max_pending_age_ms" json:"max_pending_age_ms"`
}
