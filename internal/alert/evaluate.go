package alert

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"

	"fxalerts/internal/adapters"
	"fxalerts/internal/domain"
	"fxalerts/internal/metrics"
	"fxalerts/internal/rate"

	"github.com/sirupsen/logrus"
)

const defaultWorkers = 1

type pairValue struct {
	Pair  domain.Pair
	Value float64
}

// Evaluator runs one pass over all subscriptions. The scheduler calls Run on every tick.
type Evaluator struct {
	repo     adapters.SubscriptionRepository
	resolver rate.RateResolver
	notifier adapters.Notifier
	workers  int
	fired    *firedSet // nil means notify on every tick
	metrics  *metrics.Metrics
}

// Run evaluates the current snapshot. Only a store failure is returned;
// problems with single subscriptions are logged and skipped.
func (e *Evaluator) Run(ctx context.Context, execID string) error {
	// STEP 1: snapshot
	subs, err := e.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to get subscriptions: %w", err)
	}
	e.metrics.SubscriptionsTotal.Set(float64(len(subs)))

	if len(subs) == 0 {
		e.prune(subs)
		logrus.Debugf("Nothing to evaluate this time; execID: %s", execID)
		return nil
	}

	// STEP 2: every distinct pair is resolved once, in snapshot order of first appearance
	pairs := getUniquePairs(subs)
	values := resolveInParallel(ctx, e.resolver, pairs, e.workers)

	// STEP 3: compare and deliver sequentially so delivery order follows the snapshot
	sent := 0
	for _, sub := range subs {
		if e.evaluateOne(ctx, execID, sub, values) {
			sent++
		}
	}
	e.prune(subs)

	logrus.Infof("%d subscriptions evaluated, %d of %d pairs resolved, %d alerts sent; execID: %s",
		len(subs), len(values), len(pairs), sent, execID)
	return nil
}

// evaluateOne never lets a failure escape into the rest of the tick.
func (e *Evaluator) evaluateOne(ctx context.Context, execID string, sub domain.Subscription, values map[domain.Pair]float64) (sent bool) {
	log := logrus.WithFields(logrus.Fields{
		"exec_id":         execID,
		"subscription_id": sub.ID,
		"user_id":         sub.UserID,
	})
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Subscription evaluation panicked: %v", r)
			sent = false
		}
	}()

	pair := sub.Pair()
	v, ok := values[pair]
	if !ok {
		log.Debugf("No rate for %s this tick, skipping", pair)
		return false
	}

	if !Compare(v, sub.Operator, sub.Threshold) {
		if e.fired != nil {
			e.fired.reset(sub.ID)
		}
		return false
	}

	if e.fired != nil && !e.fired.mark(sub.ID) {
		return false
	}
	e.metrics.AlertsTriggered.Inc()

	if err := e.notifier.Send(ctx, sub.UserID, FormatAlert(sub, v)); err != nil {
		e.metrics.DeliveriesTotal.WithLabelValues("failed").Inc()
		log.WithError(err).Warn("Alert delivery failed")
		if e.fired != nil {
			// not delivered, so it may fire again next tick
			e.fired.reset(sub.ID)
		}
		return false
	}
	e.metrics.DeliveriesTotal.WithLabelValues("sent").Inc()
	return true
}

func (e *Evaluator) prune(subs []domain.Subscription) {
	if e.fired == nil {
		return
	}
	keep := make(map[int64]struct{}, len(subs))
	for _, s := range subs {
		keep[s.ID] = struct{}{}
	}
	e.fired.retain(keep)
}

// FormatAlert renders the notification text, e.g.
// "Alert triggered: BTC/USD > 50000 (current: 51000)".
func FormatAlert(sub domain.Subscription, current float64) string {
	return fmt.Sprintf("Alert triggered: %s %s %s (current: %s)",
		sub.Pair(), sub.Operator, strconv.FormatFloat(sub.Threshold, 'f', -1, 64), formatValue(current))
}

func formatValue(v float64) string {
	if math.Abs(v) >= 1e6 {
		return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func getUniquePairs(subs []domain.Subscription) []domain.Pair {
	seen := make(map[domain.Pair]struct{}, len(subs))
	pairs := make([]domain.Pair, 0, len(subs))
	for _, s := range subs {
		p := s.Pair()
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	return pairs
}

// resolveInParallel runs a worker pool over pairs; unavailable pairs are absent from the result.
func resolveInParallel(ctx context.Context, resolver rate.RateResolver, pairs []domain.Pair, workers int) map[domain.Pair]float64 {
	if workers < 1 {
		workers = defaultWorkers
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	workQueue := make(chan domain.Pair, len(pairs))
	for _, p := range pairs {
		workQueue <- p
	}
	close(workQueue)

	resultsCh := make(chan pairValue, len(pairs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(ctx, workerID, workQueue, resolver, resultsCh)
		}(i)
	}

	wg.Wait()
	close(resultsCh)

	values := make(map[domain.Pair]float64, len(pairs))
	for pv := range resultsCh {
		values[pv.Pair] = pv.Value
	}
	return values
}

func runWorker(ctx context.Context, workerID int, workQueue <-chan domain.Pair, resolver rate.RateResolver, resultsCh chan<- pairValue) {
	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-workQueue:
			if !ok {
				return
			}
			if v, ok := resolvePair(ctx, workerID, p, resolver); ok {
				resultsCh <- pairValue{Pair: p, Value: v}
			}
		}
	}
}

func resolvePair(ctx context.Context, workerID int, p domain.Pair, resolver rate.RateResolver) (v float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Pair '%s' wasn't resolved by Worker %d: panic: %v", p, workerID, r)
			v, ok = 0, false
		}
	}()
	return resolver.Resolve(ctx, p.Base, p.Quote)
}

type EvaluatorOption func(*Evaluator)

func WithWorkers(n int) EvaluatorOption {
	return func(e *Evaluator) { e.workers = n }
}

func WithRepeatPolicy(p RepeatPolicy) EvaluatorOption {
	return func(e *Evaluator) {
		if p == RepeatOnceUntilReset {
			e.fired = newFiredSet()
		} else {
			e.fired = nil
		}
	}
}

func WithMetrics(m *metrics.Metrics) EvaluatorOption {
	return func(e *Evaluator) {
		if m != nil {
			e.metrics = m
		}
	}
}

func NewEvaluator(repo adapters.SubscriptionRepository, resolver rate.RateResolver, notifier adapters.Notifier, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		repo:     repo,
		resolver: resolver,
		notifier: notifier,
		workers:  defaultWorkers,
		metrics:  metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
