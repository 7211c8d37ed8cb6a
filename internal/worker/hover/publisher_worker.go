// Package hover delivers hover transitions to a Redis stream in the background.
package hover

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/domain/repository"
	"github.com/globe-engine/internal/metrics"
	"github.com/globe-engine/internal/worker"
)

const (
	publishTimeout = 2 * time.Second
	drainTimeout   = 5 * time.Second
)

// PublisherConfig - параметры публикации событий подсветки
type PublisherConfig struct {
	Stream string
	MaxLen int64
	// Rate is events per second; <= 0 disables limiting.
	Rate   float64
	Buffer int
}

// PublisherWorker читает события из буфера и пишет их в Redis Stream
type PublisherWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	cfg        PublisherConfig
	limiter    *rate.Limiter
	queue      chan domain.HoverEventMessage
}

// NewPublisherWorker создает новый PublisherWorker
func NewPublisherWorker(streamRepo repository.StreamRepository, cfg PublisherConfig, logger *zap.Logger) *PublisherWorker {
	if cfg.Stream == "" {
		cfg.Stream = domain.StreamHoverEvents
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.Rate > 0 {
		burst := int(cfg.Rate)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), burst)
	}

	return &PublisherWorker{
		BaseWorker: worker.NewBaseWorker("hover-publisher", logger),
		streamRepo: streamRepo,
		cfg:        cfg,
		limiter:    limiter,
		queue:      make(chan domain.HoverEventMessage, cfg.Buffer),
	}
}

// Publish enqueues msg without blocking. It returns false when the buffer is
// full or the worker has stopped.
func (w *PublisherWorker) Publish(msg domain.HoverEventMessage) bool {
	if w.IsStopped() {
		metrics.HoverDroppedTotal.WithLabelValues("stopped").Inc()
		return false
	}
	select {
	case w.queue <- msg:
		return true
	default:
		metrics.HoverDroppedTotal.WithLabelValues("buffer_full").Inc()
		return false
	}
}

// Start публикует события до остановки или отмены ctx, затем дописывает остаток буфера
func (w *PublisherWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting hover publisher",
		zap.String("stream", w.cfg.Stream),
		zap.Int64("max_len", w.cfg.MaxLen),
		zap.Float64("rate", w.cfg.Rate),
		zap.Int("buffer", w.cfg.Buffer))

	// limiter waits are interrupted by Stop as well as by ctx
	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-waitCtx.Done():
		}
	}()

	for {
		// stop wins over pending messages
		select {
		case <-w.StopChan():
			w.drain()
			logger.Info("Worker stopped")
			return nil
		default:
		}

		select {
		case <-w.StopChan():
			w.drain()
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			w.drain()
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg := <-w.queue:
			if err := w.limiter.Wait(waitCtx); err != nil {
				w.drain(msg)
				if ctx.Err() != nil {
					logger.Info("Context cancelled")
					return ctx.Err()
				}
				logger.Info("Worker stopped")
				return nil
			}
			w.publish(ctx, msg)
		}
	}
}

func (w *PublisherWorker) publish(ctx context.Context, msg domain.HoverEventMessage) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if _, err := w.streamRepo.PublishToStream(ctx, w.cfg.Stream, w.cfg.MaxLen, msg); err != nil {
		metrics.HoverDroppedTotal.WithLabelValues("publish_error").Inc()
		w.Logger().Error("Failed to publish hover event",
			zap.String("event_id", msg.ID.String()),
			zap.String("code", msg.Code),
			zap.Error(err))
		return
	}
	metrics.HoverPublishedTotal.Inc()
}

// drain flushes pending and whatever is still buffered, ignoring the rate limit.
func (w *PublisherWorker) drain(pending ...domain.HoverEventMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for _, msg := range pending {
		w.publish(ctx, msg)
	}
	for {
		select {
		case msg := <-w.queue:
			w.publish(ctx, msg)
		default:
			return
		}
	}
}
