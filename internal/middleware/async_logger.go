package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/logger"
	"github.com/guttosm/deal-service/internal/service"
)

// AsyncLoggerConfig sizes the AsyncLogger worker pool.
type AsyncLoggerConfig struct {
	BufferSize   int
	NumWorkers   int
	BatchSize    int
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the configuration used by the server.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		BatchSize:    50,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger persists log entries from a bounded queue with a fixed pool of
// workers. Entries are dropped, not blocked on, when the queue is full.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
	batchSize      int
	writeTimeout   time.Duration

	enqueued int64
	dropped  int64
	written  int64
	failed   int64
}

// NewAsyncLogger starts the workers. It returns nil when loggingService is nil;
// a nil *AsyncLogger accepts and discards entries.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		batchSize:      cfg.BatchSize,
		writeTimeout:   cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}
	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry := <-al.entryCh:
			al.write(al.collect(entry))
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entryCh:
					al.write(al.collect(entry))
				default:
					return
				}
			}
		}
	}
}

// collect takes whatever else is already queued, up to batchSize entries.
func (al *AsyncLogger) collect(first *model.LogEntry) []*model.LogEntry {
	batch := make([]*model.LogEntry, 1, al.batchSize)
	batch[0] = first
	for len(batch) < al.batchSize {
		select {
		case entry := <-al.entryCh:
			batch = append(batch, entry)
		default:
			return batch
		}
	}
	return batch
}

func (al *AsyncLogger) write(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	var err error
	if len(batch) == 1 {
		err = al.loggingService.CreateLog(ctx, batch[0])
	} else {
		err = al.loggingService.CreateLogs(ctx, batch)
	}
	if err != nil {
		atomic.AddInt64(&al.failed, int64(len(batch)))
		log := logger.Logger()
		log.Warn().
			Err(err).
			Str("request_id", batch[0].RequestID).
			Int("entries", len(batch)).
			Msg("Failed to persist log entries")
		return
	}
	atomic.AddInt64(&al.written, int64(len(batch)))
}

// Log enqueues entry and reports whether it was accepted.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil {
		return false
	}
	select {
	case <-al.stopCh:
		atomic.AddInt64(&al.dropped, 1)
		return false
	default:
	}

	select {
	case al.entryCh <- entry:
		atomic.AddInt64(&al.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&al.dropped, 1)
		return false
	}
}

// Stop drains the queue and waits for the workers. Safe to call more than once.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() {
		close(al.stopCh)
		al.wg.Wait()
	})
}

// AsyncLoggerStats are the queue counters.
type AsyncLoggerStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Failed   int64 `json:"failed"`
}

// Stats returns the current counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	if al == nil {
		return AsyncLoggerStats{}
	}
	return AsyncLoggerStats{
		Enqueued: atomic.LoadInt64(&al.enqueued),
		Dropped:  atomic.LoadInt64(&al.dropped),
		Written:  atomic.LoadInt64(&al.written),
		Failed:   atomic.LoadInt64(&al.failed),
	}
}
