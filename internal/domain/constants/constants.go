// Package constants holds string identifiers shared across configuration and wiring.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push gateway providers
const (
	PushProviderExpo     = "expo"
	PushProviderFirebase = "firebase"
)

// Entry state storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Location hook processing modes
const (
	HookModeSync   = "sync"
	HookModePubSub = "pubsub"
)

// Entry state transition strategies
const (
	StateStrategyAtomic    = "atomic"
	StateStrategyReadWrite = "readWrite"
)
