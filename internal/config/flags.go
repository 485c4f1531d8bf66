package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Unknown flags are reported as an error.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s bundle server URL used by the client
//	-f bundle directory
//	-c/-config json or yaml file path with configs
//	-salt PBKDF2 salt
//	-iterations PBKDF2 iteration count
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-fetch-timeout client fetch timeout (e.g., "10s")
//	-retry client fetch retry count
//	-version application version
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var bundleDir string
	var jsonConfigPath string
	var kdfSalt string
	var kdfIterations int
	var requestTimeout time.Duration
	var fetchTimeout time.Duration
	var retryCount int
	var version string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Bundle server URL")
	fs.StringVar(&bundleDir, "f", "", "Bundle directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&kdfSalt, "salt", "", "PBKDF2 salt")
	fs.IntVar(&kdfIterations, "iterations", 0, "PBKDF2 iteration count")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Bundle fetch timeout (e.g., 10s)")
	fs.IntVar(&retryCount, "retry", 0, "Bundle fetch retry count")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			KDFSalt:       kdfSalt,
			KDFIterations: kdfIterations,
			Version:       version,
		},
		Storage: Storage{
			BundleDir: bundleDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: fetchTimeout,
			RetryCount:     retryCount,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "secret-decoder"
	}
	return os.Args[0]
}

// String returns host:port, bracketing IPv6 hosts. An unset address is
// the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port and implements flag.Value.
//
// Accepted forms:
//   - ":8080"            any interface
//   - "localhost:8080"
//   - "127.0.0.1:8080"
//   - "[::1]:8080"       IPv6 literals in brackets
//
// Parameters:
//
//	s - the raw flag value
//
// Returns:
//
//	error - non-nil when s is not host:port, the host is neither empty,
//	        "localhost" nor an IP literal, or the port is outside 1-65535
//
// Example usage:
//
//	addr := new(NetAddress)
//	fs.Var(addr, "a", "Net address host:port")
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d is outside 1-65535", port)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
