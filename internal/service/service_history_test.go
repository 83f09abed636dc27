// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/internal/mock"
	"github.com/MKhiriev/device-provision/models"
)

// ── HistoryService ──────────────────────────────────────────────────────────

func TestHistoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := []models.HistoryEntry{
		{ID: 2, TargetKind: models.TargetDevice, Target: "9f0c8ba4"},
		{ID: 1, TargetKind: models.TargetApplication, Target: "HelloWorldApp"},
	}

	history := mock.NewMockHistoryRepository(ctrl)
	history.EXPECT().List(gomock.Any(), 10).Return(entries, nil)

	svc := NewHistoryService(history)
	got, err := svc.List(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

// A non-positive limit falls back to the default page size.
func TestHistoryService_List_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	history := mock.NewMockHistoryRepository(ctrl)
	history.EXPECT().List(gomock.Any(), defaultHistoryLimit).Return(nil, nil)

	svc := NewHistoryService(history)
	_, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
}

func TestHistoryService_List_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	errStorage := errors.New("storage error")
	history := mock.NewMockHistoryRepository(ctrl)
	history.EXPECT().List(gomock.Any(), 5).Return(nil, errStorage)

	svc := NewHistoryService(history)
	got, err := svc.List(context.Background(), 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, errStorage)
	assert.Nil(t, got)
}

// ── HistoryJob ──────────────────────────────────────────────────────────────

// TestHistoryJob_PrunesOnTicker runs the job with a very short interval and
// waits for the first prune pass.
func TestHistoryJob_PrunesOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	retention := time.Hour
	cutoffs := make(chan time.Time, 1)

	history := mock.NewMockHistoryRepository(ctrl)
	history.EXPECT().PruneBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			select {
			case cutoffs <- cutoff:
			default:
			}
			return 1, nil
		}).AnyTimes()

	job := NewHistoryJob(history, RetentionPolicy{
		Interval:  5 * time.Millisecond,
		Retention: retention,
	}, logger.Nop())

	job.Run(context.Background())
	defer job.Stop()

	select {
	case cutoff := <-cutoffs:
		assert.WithinDuration(t, time.Now().Add(-retention), cutoff, 2*time.Second)
	case <-time.After(3 * time.Second):
		t.Fatal("prune pass never ran")
	}
}

// Prune errors are logged and the loop keeps running.
func TestHistoryJob_KeepsRunningAfterPruneError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := make(chan struct{}, 2)
	history := mock.NewMockHistoryRepository(ctrl)
	history.EXPECT().PruneBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
			return 0, errors.New("locked")
		}).AnyTimes()

	job := NewHistoryJob(history, RetentionPolicy{
		Interval:  5 * time.Millisecond,
		Retention: time.Hour,
	}, logger.Nop())

	job.Run(context.Background())
	defer job.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(3 * time.Second):
			t.Fatal("prune loop stopped after an error")
		}
	}
}

func TestHistoryJob_StopWithoutRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := NewHistoryJob(mock.NewMockHistoryRepository(ctrl), RetentionPolicy{}, logger.Nop())

	// must not panic or block
	job.Stop()
}

func TestHistoryJob_StopCancelsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	history := mock.NewMockHistoryRepository(ctrl)
	history.EXPECT().PruneBefore(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	job := NewHistoryJob(history, RetentionPolicy{
		Interval:  5 * time.Millisecond,
		Retention: time.Hour,
	}, logger.Nop())

	job.Run(context.Background())
	job.Stop()

	// a second Stop is a no-op
	job.Stop()
}
