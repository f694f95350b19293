package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/system"
	"orderdesk/pkg/log"
)

type fakeERP struct {
	inflight, peak atomic.Int32
	release        chan struct{}
	perfErr        error
}

func (f *fakeERP) enter(ctx context.Context) error {
	n := f.inflight.Add(1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	defer f.inflight.Add(-1)
	if f.release == nil {
		return nil
	}
	select {
	case <-f.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeERP) Health(ctx context.Context) (system.Health, error) {
	return system.Health{Status: "healthy", Services: map[string]string{"erp": "healthy"}}, f.enter(ctx)
}

func (f *fakeERP) ERPStatus(ctx context.Context) (system.ERPStatus, error) {
	return system.ERPStatus{Stats: []system.EndpointStat{{Endpoint: "/api/orders/search"}}}, f.enter(ctx)
}

func (f *fakeERP) Performance(ctx context.Context) (system.Performance, error) {
	if f.perfErr != nil {
		return system.Performance{}, f.perfErr
	}
	return system.Performance{Hourly: []system.PerfStat{{Label: "10:00"}}}, f.enter(ctx)
}

func TestStatusRunsConcurrently(t *testing.T) {
	erp := &fakeERP{release: make(chan struct{})}
	uc := New(erp, log.NewNopLogger())

	done := make(chan struct{})
	var (
		snap system.Snapshot
		err  error
	)
	go func() {
		defer close(done)
		snap, err = uc.Status(context.Background())
	}()

	require.Eventually(t, func() bool { return erp.inflight.Load() == 3 }, time.Second, time.Millisecond)
	close(erp.release)
	<-done

	require.NoError(t, err)
	assert.EqualValues(t, 3, erp.peak.Load())
	assert.True(t, snap.Health.Healthy())
	assert.Len(t, snap.ERP.Stats, 1)
	assert.Len(t, snap.Performance.Hourly, 1)
	assert.False(t, snap.CheckedAt.IsZero())
}

func TestStatusFailsAsAWhole(t *testing.T) {
	boom := errors.New("metrics down")
	erp := &fakeERP{release: make(chan struct{}), perfErr: boom}
	uc := New(erp, log.NewNopLogger())

	_, err := uc.Status(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestHealthy(t *testing.T) {
	assert.False(t, system.Health{Status: "unhealthy"}.Healthy())
	assert.False(t, system.Health{Status: "healthy", Services: map[string]string{"erp": "unhealthy"}}.Healthy())
	assert.True(t, system.Health{Status: "healthy"}.Healthy())
}
