package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid ip", input: "0.0.0.0:80", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 80}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Host: "", Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "localhost:9000",
		"-d", "sqlite:local.db",
		"-config", "/etc/greenwall.json",
		"-note-key", "note_secret",
		"-kms-key-id", "alias/notes",
		"-kms-data-key", "d3JhcHBlZA==",
		"-token-sign-key", "jwt",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-time-zone", "UTC",
		"-request-timeout", "15s",
		"-pages-dir", "./web",
		"-avatars-bucket", "avatars",
		"-avatars-endpoint", "http://minio:9000",
		"-server", "http://example.test",
	}

	cfg, err := parseFlags(newTestFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite:local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/greenwall.json", cfg.JSONFilePath)
	assert.Equal(t, "note_secret", cfg.App.NoteEncryptionKey)
	assert.Equal(t, "alias/notes", cfg.App.KMSKeyID)
	assert.Equal(t, "d3JhcHBlZA==", cfg.App.KMSEncryptedDataKey)
	assert.Equal(t, "jwt", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "UTC", cfg.App.TimeZone)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "./web", cfg.Server.PagesDir)
	assert.Equal(t, "avatars", cfg.Storage.Avatars.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.Storage.Avatars.Endpoint)
	assert.Equal(t, "http://example.test", cfg.Adapter.HTTPAddress)
}

func TestParseFlags_StopsAtSubcommand(t *testing.T) {
	fs := newTestFlagSet()

	cfg, err := parseFlags(fs, []string{"-server", "http://h", "list", "-from", "2026-01-01"})
	require.NoError(t, err)

	assert.Equal(t, "http://h", cfg.Adapter.HTTPAddress)
	assert.Equal(t, []string{"list", "-from", "2026-01-01"}, fs.Args())
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-a", "nohost"})
	assert.Error(t, err)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
