// Package audit buffers console audit entries and writes them to the
// repository off the request path.
package audit

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/api/metrics"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	writeTimeout   = 5 * time.Second
)

// Dispatcher routes audit entries to a fixed set of workers sharded by
// actor, keeping each operator's trail in emission order. Emit never blocks:
// when a worker's buffer is full the entry is counted as dropped.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Emit hands an entry to the worker responsible for its actor.
func (d *Dispatcher) Emit(e domain.AuditEntry) {
	select {
	case d.workers[d.shardIndex(e.Actor)] <- e:
	default:
		metrics.AuditEntriesTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("actor", e.Actor).Str("action", e.Action).Msg("audit buffer full, entry dropped")
	}
}

// shardIndex maps an actor deterministically to a worker index.
func (d *Dispatcher) shardIndex(actor string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actor))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := d.repo.Insert(writeCtx, entry)
			cancel()
			if err != nil {
				metrics.AuditEntriesTotal.WithLabelValues("dropped").Inc()
				d.log.Error().Err(err).Int("worker", id).Str("action", entry.Action).Msg("audit write failed")
				continue
			}
			metrics.AuditEntriesTotal.WithLabelValues("written").Inc()
		}
	}
}
