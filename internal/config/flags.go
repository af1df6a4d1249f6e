package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
// Parsing stops at the first non-flag argument, so the client's subcommand
// and its own flags stay in flag.Args().
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-note-key note encryption passphrase
//	-kms-key-id KMS key id, ARN or alias
//	-kms-data-key base64 KMS-encrypted data key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-time-zone IANA time zone for "today"
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-pages-dir directory with pre-built pages
//	-avatars-bucket avatar bucket name
//	-avatars-endpoint S3-compatible endpoint
//	-server API client target address
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlags(flag.CommandLine, os.Args[1:])
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var noteKey, kmsKeyID, kmsDataKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var timeZone string
	var requestTimeout time.Duration
	var pagesDir string
	var avatarsBucket, avatarsEndpoint string
	var adapterAddress string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&noteKey, "note-key", "", "Note encryption passphrase")
	fs.StringVar(&kmsKeyID, "kms-key-id", "", "KMS key id, ARN or alias")
	fs.StringVar(&kmsDataKey, "kms-data-key", "", "Base64 KMS-encrypted data key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&timeZone, "time-zone", "", "IANA time zone for note dates")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&pagesDir, "pages-dir", "", "Directory with pre-built pages")
	fs.StringVar(&avatarsBucket, "avatars-bucket", "", "Avatar bucket name")
	fs.StringVar(&avatarsEndpoint, "avatars-endpoint", "", "S3-compatible endpoint for avatars")
	fs.StringVar(&adapterAddress, "server", "", "Server address used by the API client")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		App: App{
			NoteEncryptionKey:   noteKey,
			KMSKeyID:            kmsKeyID,
			KMSEncryptedDataKey: kmsDataKey,
			TokenSignKey:        tokenSignKey,
			TokenIssuer:         tokenIssuer,
			TokenDuration:       tokenDuration,
			TimeZone:            timeZone,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Avatars: Avatars{
				Bucket:   avatarsBucket,
				Endpoint: avatarsEndpoint,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			PagesDir:       pagesDir,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
