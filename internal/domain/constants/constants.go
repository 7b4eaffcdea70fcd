// Package constants defines shared domain constants.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Device platforms
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformWeb     = "web"

	// PlatformAll is a targeting filter value, never a device platform.
	PlatformAll = "all"
)

// Notification lifecycle statuses. Transitions are monotonic:
// draft -> sending -> sent | failed. Sent and failed are terminal.
const (
	StatusDraft   = "draft"
	StatusSending = "sending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Delivery log statuses
const (
	DeliverySuccess = "success"
	DeliveryFailed  = "failed"
)

// ValidPlatform reports whether p names a real device platform.
func ValidPlatform(p string) bool {
	switch p {
	case PlatformAndroid, PlatformIOS, PlatformWeb:
		return true
	}

	return false
}
