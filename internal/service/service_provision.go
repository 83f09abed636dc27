package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/device-provision/internal/adapter"
	"github.com/MKhiriev/device-provision/internal/deviceconfig"
	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/internal/store"
	"github.com/MKhiriev/device-provision/models"
)

type provisionService struct {
	api     adapter.ManagementAPI
	builder *deviceconfig.Builder
	history store.HistoryRepository

	logger *logger.Logger
}

// NewProvisionService wires a ProvisionService around the management API
// client and the deviceconfig builder. history may be nil, in which case no
// provisioning history is kept.
func NewProvisionService(api adapter.ManagementAPI, builder *deviceconfig.Builder, history store.HistoryRepository, logger *logger.Logger) ProvisionService {
	if builder == nil {
		builder = deviceconfig.New()
	}

	return &provisionService{
		api:     api,
		builder: builder,
		history: history,
		logger:  logger,
	}
}

func (s *provisionService) GetByApplication(ctx context.Context, appName string, params models.NetworkParams) (models.DeviceConfig, error) {
	cfg, err := s.resolveByApplication(ctx, appName, params)
	if err != nil {
		return nil, err
	}

	s.recordHistory(ctx, models.TargetApplication, appName, cfg)

	return cfg, nil
}

func (s *provisionService) GetByDevice(ctx context.Context, uuid string, params models.NetworkParams) (models.DeviceConfig, error) {
	if uuid == "" {
		return nil, ErrNoDeviceUUID
	}

	device, err := s.api.GetDevice(ctx, uuid)
	if err != nil {
		return nil, fmt.Errorf("error resolving device %s: %w", uuid, err)
	}

	cfg, err := s.resolveByApplication(ctx, device.Application.AppName, params)
	if err != nil {
		return nil, err
	}

	cfg[deviceconfig.FieldRegisteredAt] = time.Now().Unix()
	cfg[deviceconfig.FieldDeviceID] = device.ID
	cfg[deviceconfig.FieldUUID] = device.UUID

	// the stamped record must satisfy the schema as well
	if err = s.builder.Validate(cfg); err != nil {
		return nil, err
	}

	s.recordHistory(ctx, models.TargetDevice, uuid, cfg)

	return cfg, nil
}

// resolveByApplication performs the remote resolution and record generation
// shared by both provisioning entry points. The three independent API
// lookups are issued concurrently and joined fail-fast: any failure aborts
// the whole resolution and no partial record is ever produced.
func (s *provisionService) resolveByApplication(ctx context.Context, appName string, params models.NetworkParams) (models.DeviceConfig, error) {
	if appName == "" {
		return nil, ErrNoApplicationName
	}

	userID, err := s.api.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	username, err := s.api.Username(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	var (
		app    models.Application
		apiKey string
		remote models.RemoteConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		app, err = s.api.GetApplication(gctx, appName)
		return err
	})
	g.Go(func() error {
		var err error
		apiKey, err = s.api.GetAPIKey(gctx, appName)
		return err
	})
	g.Go(func() error {
		var err error
		remote, err = s.api.GetRemoteConfig(gctx)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("error resolving provisioning data for %s: %w", appName, err)
	}

	opts := models.BuildOptions{
		Application: app,
		User:        models.User{ID: userID, Username: username},
		PubNub:      remote.PubNub,
		Mixpanel:    remote.Mixpanel,
		APIKey:      apiKey,
		Endpoints:   remote.Endpoints,
	}

	return s.builder.Generate(opts, params)
}

// recordHistory appends the generated record to the local provisioning
// history. Failures are logged and never surface to the caller: history is
// an audit convenience, not part of the provisioning contract.
func (s *provisionService) recordHistory(ctx context.Context, kind, target string, cfg models.DeviceConfig) {
	if s.history == nil {
		return
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		s.logger.Warn().Err(err).Str("target", target).Msg("error encoding history payload")
		return
	}

	entry := models.HistoryEntry{
		TargetKind: kind,
		Target:     target,
		Payload:    payload,
		CreatedAt:  time.Now(),
	}
	if err = s.history.Append(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("target", target).Msg("error appending provisioning history")
	}
}
