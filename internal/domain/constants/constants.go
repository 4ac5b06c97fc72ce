// Package constants holds values shared across layers.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	// PubSubProviderInline hands events to the in-process fan-out instead of a broker.
	PubSubProviderInline = "inline"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Email providers
const (
	EmailProviderBrevo = "brevo"
	EmailProviderLog   = "log"
)

// Change feed providers
const (
	ChangeFeedProviderMemory   = "memory"
	ChangeFeedProviderPostgres = "postgres"
	ChangeFeedProviderRedis    = "redis"
)

const (
	// MatchRadiusKm is the fixed proximity radius for matching.
	MatchRadiusKm = 15.0

	// MulticastBatchSize is the FCM multicast token limit.
	MulticastBatchSize = 500

	// DefaultRestaurantName is used when a restaurant profile has no name.
	DefaultRestaurantName = "Unnamed Restaurant"

	// RouteLogin is where unrecoverable sessions are sent.
	RouteLogin = "/login"
)
