package alert

import (
	"context"
	"sync"
	"time"

	"fxalerts/internal/metrics"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultInterval = 60 * time.Second

type Scheduler struct {
	evaluator *Evaluator
	interval  time.Duration
	metrics   *metrics.Metrics
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

// Start registers the evaluation job and returns immediately. The first tick
// runs right away; ticks never overlap.
func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.tick),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	scheduler.Start()
	logrus.Infof("Alert scheduler started, interval %s", s.interval)

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) tick(jobCtx context.Context) {
	execID := uuid.NewString()
	started := time.Now()

	err := s.evaluator.Run(jobCtx, execID)
	s.metrics.TickDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		s.metrics.TicksTotal.WithLabelValues("store_error").Inc()
		logrus.Errorf("Evaluate subscriptions job %s failed: %v", execID, err)
		return
	}
	s.metrics.TicksTotal.WithLabelValues("ok").Inc()
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(evaluator *Evaluator, interval time.Duration, m *metrics.Metrics) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &Scheduler{evaluator: evaluator, interval: interval, metrics: m}
}
