package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are accepted as strings ("5s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string   `json:"dsn"`
			Driver       string   `json:"driver"`
			QueryTimeout Duration `json:"query_timeout"`
			MaxOpenConns int      `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Vault struct {
		Address          string   `json:"address"`
		Token            string   `json:"token"`
		Mount            string   `json:"mount"`
		EncryptionKey    string   `json:"encryption_key"`
		SignatureKey     string   `json:"signature_key"`
		SignatureKeyType string   `json:"signature_key_type"`
		Timeout          Duration `json:"timeout"`
	} `json:"vault,omitempty"`

	Messaging struct {
		RedisAddress  string `json:"redis_address"`
		RedisPassword string `json:"redis_password"`
		RedisDB       int    `json:"redis_db"`
		Channel       string `json:"channel"`
		QueueSize     int    `json:"queue_size"`
	} `json:"messaging,omitempty"`

	Workers struct {
		NotifierConcurrency int `json:"notifier_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				Driver:       jsonCfg.Storage.DB.Driver,
				QueryTimeout: time.Duration(jsonCfg.Storage.DB.QueryTimeout),
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Vault: Vault{
			Address:          jsonCfg.Vault.Address,
			Token:            jsonCfg.Vault.Token,
			Mount:            jsonCfg.Vault.Mount,
			EncryptionKey:    jsonCfg.Vault.EncryptionKey,
			SignatureKey:     jsonCfg.Vault.SignatureKey,
			SignatureKeyType: jsonCfg.Vault.SignatureKeyType,
			Timeout:          time.Duration(jsonCfg.Vault.Timeout),
		},
		Messaging: Messaging{
			RedisAddress:  jsonCfg.Messaging.RedisAddress,
			RedisPassword: jsonCfg.Messaging.RedisPassword,
			RedisDB:       jsonCfg.Messaging.RedisDB,
			Channel:       jsonCfg.Messaging.Channel,
			QueueSize:     jsonCfg.Messaging.QueueSize,
		},
		Workers: Workers{
			NotifierConcurrency: jsonCfg.Workers.NotifierConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
