package sessions

import (
	"context"
	"sync"
	"time"

	"parkpass/pkg/logger"
)

// JobProcessor runs background upkeep for booking sessions
type JobProcessor struct {
	service  Service
	config   *JobConfig
	logger   *logger.Logger
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// JobConfig contains configuration for background jobs
type JobConfig struct {
	SweepInterval time.Duration
}

// DefaultJobConfig returns default job configuration
func DefaultJobConfig() *JobConfig {
	return &JobConfig{
		SweepInterval: time.Minute,
	}
}

// NewJobProcessor creates a new job processor
func NewJobProcessor(service Service, config *JobConfig, log *logger.Logger) *JobProcessor {
	if config == nil || config.SweepInterval <= 0 {
		config = DefaultJobConfig()
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &JobProcessor{
		service: service,
		config:  config,
		logger:  log,
		done:    make(chan struct{}),
	}
}

// Start starts the idle session sweeper
func (jp *JobProcessor) Start(ctx context.Context) {
	jp.wg.Add(1)
	go jp.startExpirySweeper(ctx)
	jp.logger.Info("Session expiry job started", "interval", jp.config.SweepInterval)
}

// Stop stops the sweeper and waits for it to exit
func (jp *JobProcessor) Stop() {
	jp.stopOnce.Do(func() {
		close(jp.done)
	})
	jp.wg.Wait()
}

func (jp *JobProcessor) startExpirySweeper(ctx context.Context) {
	defer jp.wg.Done()

	ticker := time.NewTicker(jp.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			jp.expireIdleSessions(ctx)
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (jp *JobProcessor) expireIdleSessions(ctx context.Context) {
	removed, remaining := jp.service.ExpireIdle(ctx)
	if removed > 0 {
		jp.logger.LogSessionsExpired(ctx, removed, remaining)
	}
}
