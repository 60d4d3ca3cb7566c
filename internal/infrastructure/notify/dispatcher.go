package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker-api/internal/api/metrics"
	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Broker delivers a notification to the transport (Redis pub/sub in
// production, a recording stub in tests).
type Broker interface {
	Send(ctx context.Context, n domain.Notification) error
}

// Dispatcher decouples notification publishing from request handling. Publish
// enqueues without blocking; a fixed set of workers drains the queue and hands
// each notification to the broker. Delivery is best-effort: a full queue drops
// the notification and a broker failure is logged, never propagated.
type Dispatcher struct {
	queue  chan domain.Notification
	broker Broker
	log    zerolog.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDispatcher creates a Dispatcher in front of broker.
func NewDispatcher(broker Broker, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		queue:  make(chan domain.Notification, channelBuffer),
		broker: broker,
		log:    log,
	}
}

// Start launches the worker goroutines. ctx bounds broker deliveries;
// workers run until Stop closes the queue.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(defaultWorkers)
	for i := 0; i < defaultWorkers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Stop closes the queue and blocks until the workers have drained it, so
// already-accepted notifications are delivered before shutdown completes.
// Publish must not be called after Stop.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// Publish enqueues a notification. Never blocks: when the queue is full the
// notification is dropped and counted, and the caller proceeds regardless.
func (d *Dispatcher) Publish(_ context.Context, n domain.Notification) {
	select {
	case d.queue <- n:
	default:
		metrics.NotificationsDroppedTotal.WithLabelValues(n.Event).Inc()
		d.log.Warn().Str("event", n.Event).Msg("notification queue full, dropping")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	defer d.wg.Done()
	for n := range d.queue {
		if err := d.broker.Send(ctx, n); err != nil {
			metrics.NotificationsDroppedTotal.WithLabelValues(n.Event).Inc()
			d.log.Warn().Err(err).
				Str("event", n.Event).
				Int("worker_id", id).
				Msg("notification delivery failed")
			continue
		}
		metrics.NotificationsPublishedTotal.WithLabelValues(n.Event).Inc()
	}
}
