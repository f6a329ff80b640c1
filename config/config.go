package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"circlecheck/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
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
	defaultExpoPushEndpoint   = "https://exp.host/--/api/v2/push/send"
	defaultPushTimeout        = 10 * time.Second
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Storage selects the persistence backend for entry states
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Hook configuration for the inbound location webhook
	Hook *HookConfig `json:"hook" yaml:"hook"`

	// Geofence configuration for transition detection
	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Push configuration for the outbound push gateway
	Push *PushConfig `json:"push" yaml:"push"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines which entry state store is used
type StorageConfig struct {
	// Driver is "postgres" (default) or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate applies pending schema migrations on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold marks queries logged as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// SeedFile is a YAML fixture loaded into the memory driver on startup
	SeedFile string `json:"seedFile" yaml:"seedFile"`
}

// HookConfig defines how inbound location webhooks are authenticated and processed
type HookConfig struct {
	// Secret must match the x-hook-secret header when set
	Secret string `json:"secret" yaml:"secret"`

	// JWTSecret enables HS256 bearer token verification when set
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// Mode is "sync" (process inline) or "pubsub" (forward to the geo worker)
	Mode string `json:"mode" yaml:"mode"`
}

// GeofenceConfig defines transition detection behaviour
type GeofenceConfig struct {
	// NotifyOnExit sends a push on INSIDE -> OUTSIDE transitions as well
	NotifyOnExit bool `json:"notifyOnExit" yaml:"notifyOnExit"`

	// StateStrategy is "atomic" (conditional upsert) or "readWrite" (read, decide, write)
	StateStrategy string `json:"stateStrategy" yaml:"stateStrategy"`
}

// PushConfig defines the outbound push gateway
type PushConfig struct {
	// Provider is "expo" or "firebase"
	Provider string `json:"provider" yaml:"provider"`

	// Endpoint of the Expo push API
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// AccessToken is sent as a bearer token when Expo enhanced security is enabled
	AccessToken string `json:"accessToken" yaml:"accessToken"`

	// Timeout bounds a single outbound gateway call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// RatePerSecond limits outbound gateway requests (0 disables limiting)
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`

	// CleanupInvalidTokens removes tokens the gateway reports as unregistered
	CleanupInvalidTokens bool `json:"cleanupInvalidTokens" yaml:"cleanupInvalidTokens"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the metrics endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
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

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = constants.StorageDriverPostgres
	}

	if cfg.Hook == nil {
		cfg.Hook = &HookConfig{}
	}
	if cfg.Hook.Mode == "" {
		cfg.Hook.Mode = constants.HookModeSync
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{}
	}
	if cfg.Geofence.StateStrategy == "" {
		cfg.Geofence.StateStrategy = constants.StateStrategyAtomic
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.Provider == "" {
		cfg.Push.Provider = constants.PushProviderExpo
	}
	if cfg.Push.Provider == constants.PushProviderExpo && cfg.Push.Endpoint == "" {
		cfg.Push.Endpoint = defaultExpoPushEndpoint
	}
	if cfg.Push.Timeout <= 0 {
		cfg.Push.Timeout = defaultPushTimeout
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

// ValidateHook reports missing configuration that the location webhook cannot run without.
func (cfg *Config) ValidateHook() error {
	if cfg == nil {
		return errors.New("config is not loaded")
	}

	if cfg.Storage == nil || cfg.Storage.Driver != constants.StorageDriverMemory {
		if cfg.Postgres == nil {
			return errors.New("postgres connection is not configured")
		}
	}

	if cfg.Push == nil {
		return errors.New("push gateway is not configured")
	}

	switch cfg.Push.Provider {
	case constants.PushProviderExpo:
		if strings.TrimSpace(cfg.Push.Endpoint) == "" {
			return errors.New("expo push endpoint is not configured")
		}
	case constants.PushProviderFirebase:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return errors.New("firebase credentials are not configured")
		}
	default:
		return errors.Errorf("unknown push provider: %s", cfg.Push.Provider)
	}

	if cfg.Hook != nil && cfg.Hook.Mode == constants.HookModePubSub {
		if cfg.PubSub == nil || cfg.PubSub.Provider == "" {
			return errors.New("pubsub must be configured when hook mode is pubsub")
		}
	}

	return nil
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
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
