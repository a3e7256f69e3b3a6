package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/crypto"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/messaging"
	"github.com/MKhiriev/go-deliveries/models"
)

type notifyJob struct {
	delivery models.Delivery

	// log is the logger of the request that enqueued the job, so notices
	// keep its trace id.
	log *logger.Logger
}

// NotifierWorker encrypts newly created deliveries and publishes them as
// [models.DeliveryNotice]. It implements [Worker] and [Notifier].
//
// The queue is bounded: Enqueue never blocks the caller, a full queue drops
// the notice. Failures to encrypt or publish are logged and the notice is
// discarded.
type NotifierWorker struct {
	gateway   crypto.Gateway
	publisher messaging.Publisher

	queue       chan notifyJob
	concurrency int

	logger *logger.Logger
}

// NewNotifierWorker builds a notifier with a queue of messagingCfg.QueueSize
// drained by workersCfg.NotifierConcurrency goroutines.
func NewNotifierWorker(gateway crypto.Gateway, publisher messaging.Publisher, messagingCfg config.Messaging, workersCfg config.Workers, logger *logger.Logger) *NotifierWorker {
	concurrency := workersCfg.NotifierConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &NotifierWorker{
		gateway:     gateway,
		publisher:   publisher,
		queue:       make(chan notifyJob, max(messagingCfg.QueueSize, 0)),
		concurrency: concurrency,
		logger:      logger,
	}
}

// Enqueue implements [Notifier].
func (w *NotifierWorker) Enqueue(ctx context.Context, delivery models.Delivery) bool {
	job := notifyJob{delivery: delivery, log: logger.FromContext(ctx)}

	select {
	case w.queue <- job:
		return true
	default:
		job.log.Warn().
			Str("func", "NotifierWorker.Enqueue").
			Str("delivery_id", delivery.ID).
			Int("queue_size", cap(w.queue)).
			Msg("notice queue is full, notice dropped")
		return false
	}
}

// Run implements [Worker]. Jobs still queued when ctx ends are dropped.
func (w *NotifierWorker) Run(ctx context.Context) {
	w.logger.Info().
		Str("func", "NotifierWorker.Run").
		Int("concurrency", w.concurrency).
		Msg("notifier started")

	var wg sync.WaitGroup
	for range w.concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.drain(ctx)
		}()
	}
	wg.Wait()

	w.logger.Info().
		Str("func", "NotifierWorker.Run").
		Int("dropped", len(w.queue)).
		Msg("notifier stopped")
}

func (w *NotifierWorker) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-w.queue:
			w.notify(job.log.WithContext(ctx), job)
		}
	}
}

func (w *NotifierWorker) notify(ctx context.Context, job notifyJob) {
	cipher, err := w.gateway.Encrypt(ctx, job.delivery.String())
	if err != nil {
		job.log.Warn().Err(err).
			Str("func", "NotifierWorker.notify").
			Str("delivery_id", job.delivery.ID).
			Str("kind", app.KindOf(err)).
			Msg("failed to encrypt delivery notice")
		return
	}

	notice := models.DeliveryNotice{DeliveryID: job.delivery.ID, Payload: cipher}
	if err = w.publisher.Publish(ctx, notice); err != nil {
		job.log.Warn().Err(err).
			Str("func", "NotifierWorker.notify").
			Str("delivery_id", job.delivery.ID).
			Str("kind", app.KindOf(err)).
			Msg("failed to publish delivery notice")
		return
	}

	job.log.Debug().
		Str("func", "NotifierWorker.notify").
		Str("delivery_id", job.delivery.ID).
		Msg("delivery notice published")
}
