package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		NoteEncryptionKey   string   `json:"note_encryption_key"`
		KMSKeyID            string   `json:"kms_key_id"`
		KMSEncryptedDataKey string   `json:"kms_encrypted_data_key"`
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		TimeZone            string   `json:"time_zone"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Avatars struct {
			Bucket       string   `json:"bucket"`
			Region       string   `json:"region"`
			Endpoint     string   `json:"endpoint"`
			AccessKey    string   `json:"access_key"`
			SecretKey    string   `json:"secret_key"`
			SignedURLTTL Duration `json:"signed_url_ttl"`
		} `json:"avatars,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PagesDir       string   `json:"pages_dir"`
		SecureCookies  bool     `json:"secure_cookies"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
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
			NoteEncryptionKey:   jsonCfg.App.NoteEncryptionKey,
			KMSKeyID:            jsonCfg.App.KMSKeyID,
			KMSEncryptedDataKey: jsonCfg.App.KMSEncryptedDataKey,
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			TimeZone:            jsonCfg.App.TimeZone,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Avatars: Avatars{
				Bucket:       jsonCfg.Storage.Avatars.Bucket,
				Region:       jsonCfg.Storage.Avatars.Region,
				Endpoint:     jsonCfg.Storage.Avatars.Endpoint,
				AccessKey:    jsonCfg.Storage.Avatars.AccessKey,
				SecretKey:    jsonCfg.Storage.Avatars.SecretKey,
				SignedURLTTL: time.Duration(jsonCfg.Storage.Avatars.SignedURLTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			PagesDir:       jsonCfg.Server.PagesDir,
			SecureCookies:  jsonCfg.Server.SecureCookies,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
