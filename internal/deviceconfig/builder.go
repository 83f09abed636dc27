package deviceconfig

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/device-provision/internal/netfiles"
	"github.com/MKhiriev/device-provision/models"
)

const (
	// ListenPort is the fixed local port the device agent listens on.
	// Every generated record carries this value regardless of input.
	ListenPort int64 = 48484

	// DefaultVPNPort is applied when BuildOptions.VPNPort is zero.
	DefaultVPNPort int64 = 1723

	// DefaultAppUpdatePollInterval is the update poll interval in
	// milliseconds applied when the caller supplies none (or zero).
	DefaultAppUpdatePollInterval int64 = 60000
)

// FilesFunc produces the `files` sub-mapping of the record: logical file
// names mapped to opaque serialized content.
type FilesFunc func(models.NetworkParams) (map[string]any, error)

// Builder generates device configuration records. The schema and the
// network-files collaborator are injected so that tests can substitute both.
type Builder struct {
	schema *Schema
	files  FilesFunc
}

// New returns a Builder wired with [DefaultSchema] and the netfiles package
// as the files collaborator.
func New() *Builder {
	return NewBuilder(DefaultSchema(), netfiles.Files)
}

// NewBuilder returns a Builder using the given schema and files collaborator.
// Nil arguments fall back to the defaults used by [New].
func NewBuilder(schema *Schema, files FilesFunc) *Builder {
	if schema == nil {
		schema = DefaultSchema()
	}
	if files == nil {
		files = netfiles.Files
	}
	return &Builder{schema: schema, files: files}
}

// Generate projects opts and params into a fresh, validated configuration
// record. A record that fails validation is never returned: the first
// violation (or unknown key) aborts generation.
//
// opts is taken by value and defaulted on the local copy, so callers can
// safely reuse one BuildOptions across calls. A params.AppUpdatePollInterval
// of zero is treated as "not supplied" and replaced with the default.
func (b *Builder) Generate(opts models.BuildOptions, params models.NetworkParams) (models.DeviceConfig, error) {
	if err := mergo.Merge(&opts, defaultBuildOptions()); err != nil {
		return nil, fmt.Errorf("error applying build option defaults: %w", err)
	}

	files, err := b.files(params)
	if err != nil {
		return nil, fmt.Errorf("error building network files: %w", err)
	}

	pollInterval := params.AppUpdatePollInterval
	if pollInterval == 0 {
		pollInterval = DefaultAppUpdatePollInterval
	}

	cfg := models.DeviceConfig{
		FieldApplicationName:       opts.Application.AppName,
		FieldApplicationID:         opts.Application.ID,
		FieldDeviceType:            opts.Application.DeviceType,
		FieldUserID:                opts.User.ID,
		FieldUsername:              opts.User.Username,
		FieldFiles:                 files,
		FieldAppUpdatePollInterval: pollInterval,
		FieldListenPort:            ListenPort,
		FieldVPNPort:               opts.VPNPort,
		FieldAPIEndpoint:           opts.Endpoints.API,
		FieldVPNEndpoint:           opts.Endpoints.VPN,
		FieldRegistryEndpoint:      opts.Endpoints.Registry,
		FieldDeltaEndpoint:         opts.Endpoints.Delta,
		FieldPubNubSubscribeKey:    opts.PubNub.SubscribeKey,
		FieldPubNubPublishKey:      opts.PubNub.PublishKey,
		FieldMixpanelToken:         opts.Mixpanel.Token,
		FieldAPIKey:                opts.APIKey,
	}

	// Copied verbatim: presence is enforced by the schema, not here.
	if params.Network == models.NetworkWifi {
		cfg[FieldWifiSSID] = params.WifiSSID
		cfg[FieldWifiKey] = params.WifiKey
	}

	if err := b.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultBuildOptions() models.BuildOptions {
	return models.BuildOptions{VPNPort: DefaultVPNPort}
}
