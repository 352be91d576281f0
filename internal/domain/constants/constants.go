// Package constants holds identifiers shared by configuration and wiring.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for charge event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment gateway providers.
const (
	GatewayProviderFlutterwave = "flutterwave"
	GatewayProviderStub        = "stub"
)
