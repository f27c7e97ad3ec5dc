// Package queue moves activity recording off the request path.
package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// ErrQueueFull is returned by Record when the worker for a user is saturated.
var ErrQueueFull = errors.New("activity queue full")

var (
	queueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "travel",
		Subsystem: "activity",
		Name:      "queue_depth",
		Help:      "Activities waiting in each dispatcher worker channel.",
	}, []string{"worker_id"})

	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "travel",
		Subsystem: "activity",
		Name:      "dropped_total",
		Help:      "Activities dropped because their worker channel was full.",
	})
)

// Dispatcher routes activities to a fixed set of workers using consistent
// hashing on the user id, so each user's trail is written in order.
type Dispatcher struct {
	workers []chan domain.Activity
	sink    ports.ActivityRecorder
	log     zerolog.Logger

	wg        sync.WaitGroup
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

var _ ports.ActivityRecorder = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers writing
// to sink. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.ActivityRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Activity, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Activity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers exit once Close has drained
// their channel.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Record enqueues a without blocking. It fails with ErrQueueFull when the
// user's worker is saturated and after Close.
func (d *Dispatcher) Record(_ context.Context, a domain.Activity) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrQueueFull
	}

	idx := d.shardIndex(a.UserID)
	select {
	case d.workers[idx] <- a:
		queueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		droppedTotal.Inc()
		return ErrQueueFull
	}
}

// Close stops intake and waits for queued activities to be written, or for
// ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
		d.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID domain.ID) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(id int, ch <-chan domain.Activity) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for a := range ch {
		queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := d.sink.Record(ctx, a)
		cancel()
		if err != nil {
			d.log.Error().Err(err).
				Str("kind", string(a.Kind)).
				Str("user_id", a.UserID.String()).
				Int("worker_id", id).
				Msg("activity write failed")
		}
	}
}
