// Package constants holds cross-layer constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)
