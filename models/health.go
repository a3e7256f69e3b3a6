package models

// Component states reported by [HealthReport].
const (
	HealthUp   = "up"
	HealthDown = "down"

	CryptoActivating = "activating"
	CryptoActive     = "active"
	CryptoDegraded   = "degraded"
)

// HealthReport is the payload of the health endpoint.
type HealthReport struct {
	// Status is HealthUp when every required dependency is reachable.
	Status string `json:"status"`

	// Database is the result of pinging the record store.
	Database string `json:"database"`

	// Crypto is the activation state of the crypto gateway.
	Crypto string `json:"crypto"`

	// Version is the running build version.
	Version string `json:"version,omitempty"`
}
