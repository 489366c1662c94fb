package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// QueueRecibos holds receipt generation jobs (one per venta).
	QueueRecibos = "floristeria:queue:recibos"
	// QueueEmail holds outgoing email jobs produced after a receipt
	// PDF exists.
	QueueEmail = "floristeria:queue:email"
)

const brpopTimeout = 5 * time.Second

// Job is the envelope pushed onto Redis lists. Payload is interpreted
// by the worker that owns the queue.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues background jobs. It satisfies
// service.ReciboEncolador.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue string, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("dispatcher: marshal job: %w", err)
	}
	return d.rdb.LPush(ctx, queue, data).Err()
}

// EnqueueRecibo schedules receipt generation for a confirmed venta.
func (d *Dispatcher) EnqueueRecibo(ctx context.Context, ventaID uuid.UUID) error {
	payload, err := json.Marshal(ReciboJobPayload{VentaID: ventaID})
	if err != nil {
		return err
	}
	return d.enqueue(ctx, QueueRecibos, Job{Type: "recibo", Payload: payload})
}

// EnqueueEmail schedules delivery of an already-generated receipt.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload EmailJobPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return d.enqueue(ctx, QueueEmail, Job{Type: "email", Payload: data})
}

// WorkerHandlers groups the per-queue consumers wired in main.
type WorkerHandlers struct {
	Recibo *ReciboWorker
	Email  *EmailWorker
}

// StartWorkerPool launches numWorkers goroutines that drain both
// queues with blocking pops. Workers stop when ctx is cancelled.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, i, rdb, handlers)
	}
	log.Info().Int("workers", numWorkers).Msg("pool de workers iniciado")
}

func runWorker(ctx context.Context, id int, rdb *redis.Client, handlers *WorkerHandlers) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("worker", id).Msg("worker detenido")
			return
		default:
		}

		res, err := rdb.BRPop(ctx, brpopTimeout, QueueRecibos, QueueEmail).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			log.Error().Err(err).Int("worker", id).Msg("error leyendo cola")
			continue
		}
		// res[0] is the queue name, res[1] the raw job
		queue, raw := res[0], res[1]

		var job Job
		if err := json.Unmarshal([]byte(raw), &job); err != nil {
			log.Error().Err(err).Str("cola", queue).Msg("job malformado, descartado")
			continue
		}

		switch queue {
		case QueueRecibos:
			err = handlers.Recibo.Handle(ctx, job)
		case QueueEmail:
			err = handlers.Email.Handle(ctx, job)
		default:
			err = fmt.Errorf("cola desconocida: %s", queue)
		}
		if err != nil {
			log.Error().Err(err).Str("cola", queue).Str("tipo", job.Type).Msg("job fallido")
		}
	}
}
