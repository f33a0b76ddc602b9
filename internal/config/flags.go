package config

import (
	"errors"
	"flag"
	"net"
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

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d PostgreSQL DSN
//	-mongo-uri MongoDB connection string
//	-mongo-db MongoDB database name
//	-storage storage driver ("postgres" or "mongo")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-enforce-admin restrict course management to admins
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	flagSet := flag.NewFlagSet("course-hub", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, mongoURI, mongoDatabase, storageDriver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var enforceAdmin bool
	var logLevel string

	flagSet.Var(&serverAddress, "a", "Net address host:port")
	flagSet.StringVar(&databaseDSN, "d", "", "PostgreSQL DSN")
	flagSet.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	flagSet.StringVar(&mongoDatabase, "mongo-db", "", "MongoDB database name")
	flagSet.StringVar(&storageDriver, "storage", "", "Storage driver: postgres or mongo")
	flagSet.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flagSet.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flagSet.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flagSet.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flagSet.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flagSet.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flagSet.BoolVar(&enforceAdmin, "enforce-admin", false, "Restrict course creation and deletion to admins")
	flagSet.StringVar(&logLevel, "log-level", "", "Log level")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			EnforceAdmin:  enforceAdmin,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			Driver: storageDriver,
			DB: DB{
				DSN: databaseDSN,
			},
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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

// Set parses the input string of form [host]:port and populates the NetAddress.
// An empty host listens on all interfaces; otherwise the host must be
// "localhost" or a valid IP address.
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
