package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPort               = 3000
	defaultWorkerPort         = 3001
	defaultBcryptCost         = 10
	defaultAccessTokenTTL     = time.Hour
	defaultRefreshTokenTTL    = 7 * 24 * time.Hour
	defaultGatewayBaseURL     = "https://api.flutterwave.com"
	defaultGatewayTimeout     = 30 * time.Second
	defaultSettlementTimeout  = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// WorkerPort is the listen port of the settlement worker.
		WorkerPort         int    `json:"workerPort" yaml:"workerPort"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrate controls schema migrations applied by the API process at start.
	Migrate struct {
		OnStart bool `json:"onStart" yaml:"onStart"`
	} `json:"migrate" yaml:"migrate"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Gateway configuration for the bank-transfer payment provider
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	// PubSub configuration for charge event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Settlement configuration for webhook event processing
	Settlement *SettlementConfig `json:"settlement" yaml:"settlement"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GatewayConfig defines the payment gateway adapter configuration
type GatewayConfig struct {
	// Provider type: "flutterwave" for the live API or "stub" for a canned success response.
	// Empty selects flutterwave in production and stub everywhere else.
	Provider string `json:"provider" yaml:"provider"`

	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	PublicKey string        `json:"publicKey" yaml:"publicKey"`
	SecretKey string        `json:"secretKey" yaml:"secretKey"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`

	// WebhookHash is the shared secret the gateway sends in the verif-hash header
	WebhookHash string `json:"webhookHash" yaml:"webhookHash"`
}

// PubSubConfig defines Pub/Sub configuration for charge event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub.
	// Empty keeps settlement in-process.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push OIDC tokens (for google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// SettlementConfig defines how accepted webhook events are processed
type SettlementConfig struct {
	// Timeout bounds one in-process settlement of a charge event
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// envAliases maps flat deployment variables onto config paths.
var envAliases = []struct {
	name  string
	apply func(cfg *Config, value string)
}{
	{"NODE_ENV", func(cfg *Config, v string) { cfg.Env.Env = v }},
	{"PORT", func(cfg *Config, v string) {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = port
		}
	}},
	{"JWT_SECRET", func(cfg *Config, v string) {
		if cfg.SecretKey.Access == "" {
			cfg.SecretKey.Access = v
		}
		if cfg.SecretKey.Refresh == "" {
			cfg.SecretKey.Refresh = v
		}
	}},
	{"FLUTTERWAVE_PUBLIC_KEY", func(cfg *Config, v string) { cfg.Gateway.PublicKey = v }},
	{"FLUTTERWAVE_SECRET_KEY", func(cfg *Config, v string) { cfg.Gateway.SecretKey = v }},
	{"FLUTTERWAVE_VERIF_HASH", func(cfg *Config, v string) { cfg.Gateway.WebhookHash = v }},
}

// LoadWithEnv loads .yaml files through koanf.
// A missing file is tolerated so that environment-only deployments work.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile != "" {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	applyEnvAliases(cfg, os.LookupEnv)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if cfg.HTTP.WorkerPort == 0 {
		cfg.HTTP.WorkerPort = defaultWorkerPort
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}

	if cfg.Gateway == nil {
		cfg.Gateway = &GatewayConfig{}
	}
	if cfg.Gateway.BaseURL == "" {
		cfg.Gateway.BaseURL = defaultGatewayBaseURL
	}
	if cfg.Gateway.Timeout == 0 {
		cfg.Gateway.Timeout = defaultGatewayTimeout
	}

	if cfg.Settlement == nil {
		cfg.Settlement = &SettlementConfig{}
	}
	if cfg.Settlement.Timeout == 0 {
		cfg.Settlement.Timeout = defaultSettlementTimeout
	}
}

func applyEnvAliases(cfg *Config, lookup func(string) (string, bool)) {
	for _, alias := range envAliases {
		if value, ok := lookup(alias.name); ok && value != "" {
			alias.apply(cfg, value)
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
