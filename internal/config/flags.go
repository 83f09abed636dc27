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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-api-url management API base URL
//	-token management API session token
//	-history-db path to the sqlite provisioning-history database
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-api-timeout outbound API request timeout (e.g., "30s")
//	-prune-interval history pruning interval (e.g., "24h")
//	-retention history retention window (e.g., "2160h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var apiURL string
	var apiToken string
	var historyDBPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var apiTimeout time.Duration
	var pruneInterval time.Duration
	var retention time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&apiURL, "api-url", "", "Management API base URL")
	flag.StringVar(&apiToken, "token", "", "Management API session token")
	flag.StringVar(&historyDBPath, "history-db", "", "Provisioning history database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&apiTimeout, "api-timeout", 0, "Outbound API request timeout (e.g., 30s)")
	flag.DurationVar(&pruneInterval, "prune-interval", 0, "History pruning interval (e.g., 24h)")
	flag.DurationVar(&retention, "retention", 0, "History retention window (e.g., 2160h)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        apiURL,
			Token:          apiToken,
			RequestTimeout: apiTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			HistoryDBPath: historyDBPath,
		},
		Workers: Workers{
			PruneInterval: pruneInterval,
			Retention:     retention,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
