package sessions

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sweepSpy struct {
	Service
	sweeps atomic.Int32
}

func (s *sweepSpy) ExpireIdle(ctx context.Context) (int, int) {
	s.sweeps.Add(1)
	return s.Service.ExpireIdle(ctx)
}

func TestJobProcessor_ExpiresIdleSessions(t *testing.T) {
	svc, clock := newTestService(threeForOne)
	ctx := context.Background()
	id := svc.Create(ctx).ID
	clock.Advance(time.Hour)
	spy := &sweepSpy{Service: svc}

	jp := NewJobProcessor(spy, &JobConfig{SweepInterval: 10 * time.Millisecond}, nil)
	jp.Start(ctx)

	assert.Eventually(t, func() bool {
		return spy.sweeps.Load() > 0
	}, time.Second, 5*time.Millisecond)
	jp.Stop()

	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestJobProcessor_StopIsIdempotent(t *testing.T) {
	svc, _ := newTestService(threeForOne)
	jp := NewJobProcessor(svc, nil, nil)
	jp.Start(context.Background())

	jp.Stop()
	jp.Stop()

	assert.Equal(t, time.Minute, jp.config.SweepInterval)
}
