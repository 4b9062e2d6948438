package events

//go:generate go run go.uber.org/mock/mockgen -source=./consumer.go -destination=./mocks/consumer_mock.go -package=mocks

import (
	"context"
	"sync"

	"stayops/config"
	"stayops/infras/kafka"
	"stayops/infras/metrics"
	"stayops/infras/otel"
	bookingModel "stayops/internal/domains/booking/model"
	"stayops/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/semaphore"
)

const (
	ResultScheduled = "scheduled"
	ResultSkipped   = "skipped"
	ResultFailed    = "failed"
	ResultMalformed = "malformed"

	unknownEventType = "unknown"
)

// TurnoverScheduler books follow-up work for a booking event. It reports whether anything was created.
type TurnoverScheduler interface {
	ScheduleTurnover(ctx context.Context, event bookingModel.Event) (bool, error)
}

// Consumer reads booking events and hands them to the scheduler, at most Kafka.Concurrency at a time.
// Offsets are committed once a message is dispatched, so a crash can drop in-flight events.
type Consumer struct {
	kafka     kafka.Client
	scheduler TurnoverScheduler
	cfg       *config.Config
	otel      otel.Otel
	sem       *semaphore.Weighted
	wg        sync.WaitGroup
}

func NewConsumer(kafka kafka.Client, scheduler TurnoverScheduler, cfg *config.Config, otel otel.Otel) *Consumer {
	concurrency := cfg.Kafka.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &Consumer{
		kafka:     kafka,
		scheduler: scheduler,
		cfg:       cfg,
		otel:      otel,
		sem:       semaphore.NewWeighted(concurrency),
	}
}

// Run blocks until ctx is cancelled, then waits for in-flight events.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().
		Str("topic", c.cfg.Kafka.BookingTopic).
		Str("group", c.cfg.Kafka.ConsumerGroup).
		Int64("concurrency", c.cfg.Kafka.Concurrency).
		Msg("Booking event consumer starting.")

	err := c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.BookingTopic, c.Handle)

	c.Wait()

	log.Info().Msg("Booking event consumer stopped.")

	return err // nolint:wrapcheck
}

// Handle blocks while every slot is busy and then processes msg in the background.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) {
	err := ctx.Err()
	if err == nil {
		err = c.sem.Acquire(ctx, 1)
	}

	if err != nil {
		log.Warn().Err(err).Int64("offset", msg.Offset).Msg("dropping booking event on shutdown")

		return
	}

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		defer c.sem.Release(1)

		c.process(context.WithoutCancel(ctx), msg)
	}()
}

// Wait returns once every dispatched event has been processed.
func (c *Consumer) Wait() {
	c.wg.Wait()
}

func (c *Consumer) process(ctx context.Context, msg kafkaGo.Message) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Process")
	defer scope.End()

	key, event, err := kafka.DecodeKafkaMessage[bookingModel.Event](msg)
	if err != nil {
		scope.TraceError(err)
		metrics.EventsConsumed.WithLabelValues(unknownEventType, ResultMalformed).Inc()

		return
	}

	scope.SetAttributes(map[string]any{
		"event.type":       event.Type,
		"event.key":        key,
		"event.booking_id": event.BookingID,
		"event.status":     string(event.Status),
	})

	created, err := c.scheduler.ScheduleTurnover(ctx, event)

	result := ResultSkipped

	switch {
	case err != nil:
		result = ResultFailed

		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to schedule turnover")
	case created:
		result = ResultScheduled

		log.Info().Str("booking_id", event.BookingID).Str("property_id", event.PropertyID).Msg("turnover cleaning scheduled")
	}

	metrics.EventsConsumed.WithLabelValues(event.Type, result).Inc()
}
