package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaultConfig holds values used for every field left empty by env, flags
// and JSON.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "debug",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				QueryTimeout: 10 * time.Second,
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Vault: Vault{
			Mount:            "transit",
			EncryptionKey:    "encryption-key",
			SignatureKey:     "signature-key",
			SignatureKeyType: "rsa-2048",
			Timeout:          5 * time.Second,
		},
		Messaging: Messaging{
			Channel:   "deliveries",
			QueueSize: 128,
		},
		Workers: Workers{
			NotifierConcurrency: 1,
		},
	}
}
