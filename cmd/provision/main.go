// Command provision generates a device configuration record from the
// command line and prints it to stdout as JSON.
//
// Usage:
//
//	provision [flags] application <name>
//	provision [flags] device <uuid>
//
// Connection settings (-api-url, -token) are shared with the server binary
// and can also come from the environment or a JSON config file. All log
// output goes to stderr so stdout stays a clean config.json payload.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/device-provision/internal/adapter"
	"github.com/MKhiriev/device-provision/internal/config"
	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/internal/service"
	"github.com/MKhiriev/device-provision/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var (
		network      string
		wifiSSID     string
		wifiKey      string
		pollInterval int64
	)

	// registered before GetStructuredConfig so that its flag.Parse call
	// picks them up together with the shared connection flags
	flag.StringVar(&network, "network", "", "Network mode: ethernet or wifi")
	flag.StringVar(&wifiSSID, "wifi-ssid", "", "Wireless network name (wifi mode only)")
	flag.StringVar(&wifiKey, "wifi-key", "", "Wireless passphrase (wifi mode only)")
	flag.Int64Var(&pollInterval, "poll-interval", 0, "App update poll interval in milliseconds")

	log := logger.NewCLILogger("provision-cli")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	mode, target, err := parseTarget(flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	api := adapter.NewManagementAPI(adapter.HTTPClientConfig{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.RequestTimeout,
	})

	// no history store in the CLI: provisioning stays a pure remote call
	provisioner := service.NewProvisionService(api, nil, nil, log)

	params := models.NetworkParams{
		Network:               network,
		WifiSSID:              wifiSSID,
		WifiKey:               wifiKey,
		AppUpdatePollInterval: pollInterval,
	}

	ctx := context.Background()

	var record models.DeviceConfig
	switch mode {
	case "application":
		record, err = provisioner.GetByApplication(ctx, target, params)
	case "device":
		record, err = provisioner.GetByDevice(ctx, target, params)
	}
	if err != nil {
		log.Fatal().Err(err).Str(mode, target).Msg("error generating device configuration")
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding device configuration")
	}

	fmt.Println(string(out))
}

func parseTarget(args []string) (mode, target string, err error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("expected `application <name>` or `device <uuid>`, got %d arguments", len(args))
	}

	mode, target = args[0], args[1]
	if mode != "application" && mode != "device" {
		return "", "", fmt.Errorf("unknown target kind %q: expected application or device", mode)
	}
	if target == "" {
		return "", "", fmt.Errorf("empty %s target", mode)
	}

	return mode, target, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
